package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
)

// Review gate failures, one per predicate so the caller can tell them apart.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotDelivered = errors.New("not yet delivered")
	ErrNameMismatch      = errors.New("name mismatch")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// OrderGetter fetches orders for review verification.
type OrderGetter interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// TestimonialWriter persists accepted reviews.
type TestimonialWriter interface {
	Insert(ctx context.Context, t *models.Testimonial) error
}

// ReviewService enforces the cross-entity rule that a review must reference
// a real, delivered order belonging to the reviewer.
type ReviewService struct {
	orders       OrderGetter
	testimonials TestimonialWriter
}

func NewReviewService(orders OrderGetter, testimonials TestimonialWriter) *ReviewService {
	return &ReviewService{orders: orders, testimonials: testimonials}
}

type ReviewRequest struct {
	Author  string `json:"author"`
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
	Quote   string `json:"quote"`
}

// Submit checks the order exists, is delivered and names the reviewer, then
// persists the testimonial with a server-assigned timestamp.
func (s *ReviewService) Submit(ctx context.Context, req *ReviewRequest) (*models.Testimonial, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Author) == "" || strings.TrimSpace(req.Quote) == "" {
		return nil, &ValidationError{Missing: missingReviewFields(req)}
	}

	order, err := s.orders.GetByID(ctx, req.OrderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order.Status != models.OrderStatusDelivered {
		return nil, ErrOrderNotDelivered
	}
	if !strings.EqualFold(strings.TrimSpace(req.Author), strings.TrimSpace(order.BuyerName)) {
		return nil, ErrNameMismatch
	}

	testimonial := &models.Testimonial{
		Author:    req.Author,
		Quote:     req.Quote,
		Rating:    req.Rating,
		OrderID:   req.OrderID,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.testimonials.Insert(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("failed to save testimonial: %w", err)
	}
	return testimonial, nil
}

func missingReviewFields(req *ReviewRequest) []string {
	var missing []string
	if strings.TrimSpace(req.Author) == "" {
		missing = append(missing, "author")
	}
	if strings.TrimSpace(req.Quote) == "" {
		missing = append(missing, "quote")
	}
	return missing
}
