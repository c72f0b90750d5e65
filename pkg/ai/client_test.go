package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Citrus Breeze", Brand: "Riva", Description: "Fresh oceanic notes", Category: []string{"fresh", "summer"}},
		{ID: "p2", Name: "Noir Absolu", Brand: "Maison", Description: "Deep amber", Category: []string{"oriental"}},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(&config.AIConfig{
		APIKey:   "test-key",
		Model:    "test-model",
		Endpoint: srv.URL,
		Timeout:  5 * time.Second,
	})
	return client, srv
}

func modelReply(text string) []byte {
	reply := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	data, _ := json.Marshal(reply)
	return data
}

func TestMatchProductsParsesIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "test-model")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		prompt := req.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "Citrus Breeze")
		assert.Contains(t, prompt, "p2")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		w.Write(modelReply(`{"productIds": ["p1"]}`))
	})

	ids, err := client.MatchProducts(context.Background(), "a scent for summer", testProducts())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)
}

func TestMatchProductsEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(`{"productIds": []}`))
	})

	ids, err := client.MatchProducts(context.Background(), "nothing like this", testProducts())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMatchProductsRejectsMalformedShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply(`not json at all`))
	})

	_, err := client.MatchProducts(context.Background(), "query", testProducts())
	assert.Error(t, err)
}

func TestMatchProductsServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.MatchProducts(context.Background(), "query", testProducts())
	assert.Error(t, err)
}
