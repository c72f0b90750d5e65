package service

import (
	"context"

	"github.com/example/storefront/pkg/models"
	"github.com/stretchr/testify/mock"
)

type MockCartStore struct {
	mock.Mock
}

func (m *MockCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *MockCartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockProductGetter struct {
	mock.Mock
}

func (m *MockProductGetter) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockOrderWriter struct {
	mock.Mock
}

func (m *MockOrderWriter) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderWriter) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

type MockIdentityIssuer struct {
	mock.Mock
}

func (m *MockIdentityIssuer) EnsureIdentity(token string) (string, bool, error) {
	args := m.Called(token)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) OrderCreated(order *models.Order, items []models.OrderItem) error {
	args := m.Called(order, items)
	return args.Error(0)
}

func (m *MockPublisher) OrderStatusChanged(orderID, oldStatus, newStatus string) error {
	args := m.Called(orderID, oldStatus, newStatus)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockOrderGetter struct {
	mock.Mock
}

func (m *MockOrderGetter) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockTestimonialWriter struct {
	mock.Mock
}

func (m *MockTestimonialWriter) Insert(ctx context.Context, t *models.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockProductLister struct {
	mock.Mock
}

func (m *MockProductLister) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

type MockMatcher struct {
	mock.Mock
}

func (m *MockMatcher) MatchProducts(ctx context.Context, query string, products []models.Product) ([]string, error) {
	args := m.Called(ctx, query, products)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
