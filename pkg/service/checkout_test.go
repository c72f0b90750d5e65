package service

import (
	"context"
	"errors"
	"testing"

	"github.com/example/storefront/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func deliveryRequest() *CheckoutRequest {
	return &CheckoutRequest{
		BuyerName:      "Lina Haddad",
		PhoneNumber:    "0791234567",
		DeliveryMethod: models.DeliveryMethodDelivery,
		City:           "Amman",
		Neighborhood:   "Abdoun",
		Street:         "123 Main St",
		BuildingNumber: "Building 1",
	}
}

func twoLineCart() *models.Cart {
	return &models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Name: "Noir", Brand: "Maison", Price: 100, Discount: 0, Quantity: 2},
		{ProductID: "p2", Name: "Aqua", Brand: "Riva", Price: 50, Discount: 50, Quantity: 3},
	}}
}

func newCheckoutService(carts *MockCartStore, orders *MockOrderWriter, identity *MockIdentityIssuer, publisher *MockPublisher) *CheckoutService {
	return NewCheckoutService(carts, orders, identity, publisher, zap.NewNop())
}

func TestCheckoutSuccess(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	carts.On("Load", mock.Anything, "sess-1").Return(twoLineCart(), nil)
	carts.On("Delete", mock.Anything, "sess-1").Return(nil)
	identity.On("EnsureIdentity", "").Return("new-token", true, nil)
	orders.On("NextOrderNumber", mock.Anything).Return("1001", nil)

	var capturedOrder *models.Order
	var capturedItems []models.OrderItem
	orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).
		Run(func(args mock.Arguments) {
			capturedOrder = args.Get(1).(*models.Order)
			capturedItems = args.Get(2).([]models.OrderItem)
		}).Return(nil)
	publisher.On("OrderCreated", mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).Return(nil)

	svc := newCheckoutService(carts, orders, identity, publisher)
	result, err := svc.Checkout(context.Background(), "sess-1", deliveryRequest())

	require.NoError(t, err)
	assert.Equal(t, "1001", result.OrderID)
	assert.InDelta(t, 275.0, result.Total, 1e-9) // 100*2 + 25*3
	assert.Equal(t, "new-token", result.IdentityToken)

	require.NotNil(t, capturedOrder)
	assert.Equal(t, models.OrderStatusProcessing, capturedOrder.Status)
	assert.Equal(t, "Lina Haddad", capturedOrder.BuyerName)
	assert.Equal(t, "123 Main St, Building 1, Abdoun, Amman", capturedOrder.ShippingAddress)
	assert.InDelta(t, 275.0, capturedOrder.TotalAmount, 1e-9)

	// One item per cart line, prices frozen at the discount-adjusted value.
	require.Len(t, capturedItems, 2)
	assert.Equal(t, "p1", capturedItems[0].ProductID)
	assert.InDelta(t, 100.0, capturedItems[0].ItemPrice, 1e-9)
	assert.Equal(t, 2, capturedItems[0].Quantity)
	assert.Equal(t, "p2", capturedItems[1].ProductID)
	assert.InDelta(t, 25.0, capturedItems[1].ItemPrice, 1e-9)
	assert.Equal(t, 3, capturedItems[1].Quantity)

	carts.AssertExpectations(t)
	orders.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCheckoutPickupUsesSentinelAddress(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	carts.On("Load", mock.Anything, "sess-1").Return(twoLineCart(), nil)
	carts.On("Delete", mock.Anything, "sess-1").Return(nil)
	identity.On("EnsureIdentity", "existing").Return("existing", false, nil)
	orders.On("NextOrderNumber", mock.Anything).Return("1002", nil)

	var capturedOrder *models.Order
	orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*models.Order"), mock.AnythingOfType("[]models.OrderItem")).
		Run(func(args mock.Arguments) {
			capturedOrder = args.Get(1).(*models.Order)
		}).Return(nil)
	publisher.On("OrderCreated", mock.Anything, mock.Anything).Return(nil)

	req := &CheckoutRequest{
		BuyerName:      "Omar",
		PhoneNumber:    "0780000000",
		DeliveryMethod: models.DeliveryMethodPickup,
		IdentityToken:  "existing",
	}
	svc := newCheckoutService(carts, orders, identity, publisher)
	result, err := svc.Checkout(context.Background(), "sess-1", req)

	require.NoError(t, err)
	assert.Empty(t, result.IdentityToken) // nothing new was issued
	assert.Equal(t, models.PickupAddress, capturedOrder.ShippingAddress)
}

func TestCheckoutValidationFailureWritesNothing(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	req := deliveryRequest()
	req.BuyerName = ""
	req.City = " "

	svc := newCheckoutService(carts, orders, identity, publisher)
	result, err := svc.Checkout(context.Background(), "sess-1", req)

	require.Error(t, err)
	assert.Nil(t, result)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"buyerName", "city"}, verr.Missing)

	carts.AssertNotCalled(t, "Load")
	orders.AssertNotCalled(t, "NextOrderNumber")
	orders.AssertNotCalled(t, "CreateWithItems")
	publisher.AssertNotCalled(t, "OrderCreated")
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	carts.On("Load", mock.Anything, "sess-1").Return(&models.Cart{}, nil)

	svc := newCheckoutService(carts, orders, identity, publisher)
	_, err := svc.Checkout(context.Background(), "sess-1", deliveryRequest())

	assert.ErrorIs(t, err, ErrCartEmpty)
	orders.AssertNotCalled(t, "CreateWithItems")
}

func TestCheckoutWriteFailureKeepsCart(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	carts.On("Load", mock.Anything, "sess-1").Return(twoLineCart(), nil)
	identity.On("EnsureIdentity", "").Return("tok", true, nil)
	orders.On("NextOrderNumber", mock.Anything).Return("1003", nil)
	orders.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("write failed"))

	svc := newCheckoutService(carts, orders, identity, publisher)
	_, err := svc.Checkout(context.Background(), "sess-1", deliveryRequest())

	require.Error(t, err)
	carts.AssertNotCalled(t, "Delete")
	publisher.AssertNotCalled(t, "OrderCreated")
}

func TestCheckoutSucceedsWhenEventPublishFails(t *testing.T) {
	carts := new(MockCartStore)
	orders := new(MockOrderWriter)
	identity := new(MockIdentityIssuer)
	publisher := new(MockPublisher)

	carts.On("Load", mock.Anything, "sess-1").Return(twoLineCart(), nil)
	carts.On("Delete", mock.Anything, "sess-1").Return(nil)
	identity.On("EnsureIdentity", "").Return("tok", true, nil)
	orders.On("NextOrderNumber", mock.Anything).Return("1004", nil)
	orders.On("CreateWithItems", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	publisher.On("OrderCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := newCheckoutService(carts, orders, identity, publisher)
	result, err := svc.Checkout(context.Background(), "sess-1", deliveryRequest())

	require.NoError(t, err)
	assert.Equal(t, "1004", result.OrderID)
}
