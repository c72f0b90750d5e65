package service

import (
	"context"
	"strings"

	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

// ProductLister supplies the full candidate set for a search.
type ProductLister interface {
	List(ctx context.Context) ([]models.Product, error)
}

// Matcher is the remote semantic-match pass.
type Matcher interface {
	MatchProducts(ctx context.Context, query string, products []models.Product) ([]string, error)
}

// SearchService merges a local substring pass with the remote semantic pass.
// Local matches come first in catalog order; remote-only matches follow;
// duplicates and unknown IDs are dropped. A remote failure degrades to
// local-only results.
type SearchService struct {
	products ProductLister
	matcher  Matcher
	logger   *zap.Logger
}

func NewSearchService(products ProductLister, matcher Matcher, logger *zap.Logger) *SearchService {
	return &SearchService{products: products, matcher: matcher, logger: logger}
}

func matchesLocally(p *models.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, c := range p.Category {
		if strings.Contains(strings.ToLower(c), query) {
			return true
		}
	}
	return false
}

func (s *SearchService) Search(ctx context.Context, query string) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	results := make([]models.Product, 0)
	seen := make(map[string]bool)
	byID := make(map[string]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
		if matchesLocally(&products[i], lowerQuery) {
			results = append(results, products[i])
			seen[products[i].ID] = true
		}
	}

	ids, err := s.matcher.MatchProducts(ctx, query, products)
	if err != nil {
		s.logger.Warn("semantic match unavailable, returning local results only",
			zap.String("query", query), zap.Error(err))
		return results, nil
	}

	for _, id := range ids {
		if seen[id] {
			continue
		}
		// IDs the model invented are silently dropped.
		if p, ok := byID[id]; ok {
			results = append(results, *p)
			seen[id] = true
		}
	}
	return results, nil
}
