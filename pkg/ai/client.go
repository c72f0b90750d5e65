// Package ai calls the hosted generative-language API used for semantic
// product matching. The model receives the query and the full candidate
// list, and returns only the IDs of strong matches.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
)

type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewClient(cfg *config.AIConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// The model is told to answer with this JSON shape only.
var responseSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"productIds": {
			"type": "array",
			"items": {"type": "string"}
		}
	},
	"required": ["productIds"]
}`)

type matchResult struct {
	ProductIDs []string `json:"productIds"`
}

// MatchProducts asks the model which products are a strong semantic match
// for the query. Weak matches are excluded by the prompt; an empty slice
// means nothing qualified.
func (c *Client) MatchProducts(ctx context.Context, query string, products []models.Product) ([]string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(query, products)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("model returned no candidates")
	}

	var result matchResult
	if err := json.Unmarshal([]byte(out.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, fmt.Errorf("model response did not match expected shape: %w", err)
	}
	return result.ProductIDs, nil
}

func buildPrompt(query string, products []models.Product) string {
	var b strings.Builder
	b.WriteString("You are an expert product recommender for a perfume store. ")
	b.WriteString("Your task is to find products that are a good semantic match for a user's search query.\n\n")
	fmt.Fprintf(&b, "Analyze the user's query: %q\n\n", query)
	b.WriteString("Consider the following list of available products:\n")
	for i := range products {
		p := &products[i]
		fmt.Fprintf(&b, "- Product ID: %s\n  Name: %s\n  Brand: %s\n  Description: %s\n  Categories: %s\n",
			p.ID, p.Name, p.Brand, p.Description, strings.Join(p.Category, ", "))
	}
	b.WriteString("\nBased on the query, return the product IDs of the items that are the best semantic fit. ")
	b.WriteString("For example, if the query is \"a scent for summer\", you should look for products with descriptions ")
	b.WriteString("that mention \"fresh\", \"citrus\", \"oceanic\", or \"light floral\" notes, even if the word \"summer\" isn't there.\n\n")
	b.WriteString("Return ONLY the matching product IDs in the specified output format. ")
	b.WriteString("Do not include products that are only a weak match. If no products are a good match, return an empty array.")
	return b.String()
}
