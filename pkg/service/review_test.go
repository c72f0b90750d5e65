package service

import (
	"context"
	"testing"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder() *models.Order {
	return &models.Order{
		ID:        "1001",
		BuyerName: "Lina Haddad",
		Status:    models.OrderStatusDelivered,
	}
}

func TestReviewSubmitSuccess(t *testing.T) {
	orders := new(MockOrderGetter)
	testimonials := new(MockTestimonialWriter)

	orders.On("GetByID", mock.Anything, "1001").Return(deliveredOrder(), nil)

	var saved *models.Testimonial
	testimonials.On("Insert", mock.Anything, mock.AnythingOfType("*models.Testimonial")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Testimonial)
		}).Return(nil)

	svc := NewReviewService(orders, testimonials)
	result, err := svc.Submit(context.Background(), &ReviewRequest{
		Author:  "lina haddad", // case-insensitive match
		OrderID: "1001",
		Rating:  5,
		Quote:   "Wonderful scent, fast delivery.",
	})

	require.NoError(t, err)
	assert.Equal(t, "1001", result.OrderID)
	assert.Equal(t, 5, result.Rating)
	require.NotNil(t, saved)
	assert.NotZero(t, saved.CreatedAt)
}

func TestReviewSubmitOrderNotFound(t *testing.T) {
	orders := new(MockOrderGetter)
	testimonials := new(MockTestimonialWriter)

	orders.On("GetByID", mock.Anything, "9999").Return(nil, repository.ErrNotFound)

	svc := NewReviewService(orders, testimonials)
	_, err := svc.Submit(context.Background(), &ReviewRequest{
		Author: "Lina", OrderID: "9999", Rating: 4, Quote: "Nice",
	})

	assert.ErrorIs(t, err, ErrOrderNotFound)
	testimonials.AssertNotCalled(t, "Insert")
}

func TestReviewSubmitOrderNotDelivered(t *testing.T) {
	orders := new(MockOrderGetter)
	testimonials := new(MockTestimonialWriter)

	order := deliveredOrder()
	order.Status = models.OrderStatusProcessing
	orders.On("GetByID", mock.Anything, "1001").Return(order, nil)

	svc := NewReviewService(orders, testimonials)
	_, err := svc.Submit(context.Background(), &ReviewRequest{
		Author: "Lina Haddad", OrderID: "1001", Rating: 4, Quote: "Nice",
	})

	assert.ErrorIs(t, err, ErrOrderNotDelivered)
	testimonials.AssertNotCalled(t, "Insert")
}

func TestReviewSubmitNameMismatch(t *testing.T) {
	orders := new(MockOrderGetter)
	testimonials := new(MockTestimonialWriter)

	orders.On("GetByID", mock.Anything, "1001").Return(deliveredOrder(), nil)

	svc := NewReviewService(orders, testimonials)
	_, err := svc.Submit(context.Background(), &ReviewRequest{
		Author: "Someone Else", OrderID: "1001", Rating: 4, Quote: "Nice",
	})

	assert.ErrorIs(t, err, ErrNameMismatch)
	testimonials.AssertNotCalled(t, "Insert")
}

func TestReviewSubmitInvalidRating(t *testing.T) {
	orders := new(MockOrderGetter)
	testimonials := new(MockTestimonialWriter)
	svc := NewReviewService(orders, testimonials)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Submit(context.Background(), &ReviewRequest{
			Author: "Lina", OrderID: "1001", Rating: rating, Quote: "Nice",
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	orders.AssertNotCalled(t, "GetByID")
}
