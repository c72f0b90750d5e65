package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/storefront/pkg/events"
	"github.com/example/storefront/pkg/models"
	"go.uber.org/zap"
)

var ErrCartEmpty = errors.New("cart is empty")

// ValidationError lists the required checkout fields that were not filled
// in. No write happens when it is returned.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// OrderWriter reserves order numbers and writes order+items atomically.
type OrderWriter interface {
	NextOrderNumber(ctx context.Context) (string, error)
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
}

// IdentityIssuer guarantees a checkout carries some identity token, minting
// an anonymous one when needed.
type IdentityIssuer interface {
	EnsureIdentity(token string) (string, bool, error)
}

type CheckoutRequest struct {
	BuyerName      string `json:"buyerName"`
	PhoneNumber    string `json:"phoneNumber"`
	DeliveryMethod string `json:"deliveryMethod"`
	City           string `json:"city"`
	Neighborhood   string `json:"neighborhood"`
	Street         string `json:"street"`
	BuildingNumber string `json:"buildingNumber"`
	Landmark       string `json:"landmark"`
	IdentityToken  string `json:"identityToken"`
}

type CheckoutResult struct {
	OrderID       string  `json:"orderId"`
	Total         float64 `json:"total"`
	IdentityToken string  `json:"identityToken,omitempty"`
}

// CheckoutService turns a session cart into a persisted order.
type CheckoutService struct {
	carts     CartStore
	orders    OrderWriter
	identity  IdentityIssuer
	publisher events.Publisher
	logger    *zap.Logger
}

func NewCheckoutService(carts CartStore, orders OrderWriter, identity IdentityIssuer, publisher events.Publisher, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		identity:  identity,
		publisher: publisher,
		logger:    logger,
	}
}

func validate(req *CheckoutRequest) error {
	var missing []string
	if strings.TrimSpace(req.BuyerName) == "" {
		missing = append(missing, "buyerName")
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if req.DeliveryMethod != models.DeliveryMethodDelivery && req.DeliveryMethod != models.DeliveryMethodPickup {
		missing = append(missing, "deliveryMethod")
	}
	if req.DeliveryMethod == models.DeliveryMethodDelivery {
		for _, f := range []struct{ name, value string }{
			{"city", req.City},
			{"neighborhood", req.Neighborhood},
			{"street", req.Street},
			{"buildingNumber", req.BuildingNumber},
		} {
			if strings.TrimSpace(f.value) == "" {
				missing = append(missing, f.name)
			}
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func shippingAddress(req *CheckoutRequest) string {
	if req.DeliveryMethod == models.DeliveryMethodPickup {
		return models.PickupAddress
	}
	address := fmt.Sprintf("%s, %s, %s, %s", req.Street, req.BuildingNumber, req.Neighborhood, req.City)
	if strings.TrimSpace(req.Landmark) != "" {
		address += fmt.Sprintf(" (near %s)", req.Landmark)
	}
	return address
}

// Checkout validates the request, freezes the cart lines into order items
// and writes the order atomically. The cart is cleared only on success.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req *CheckoutRequest) (*CheckoutResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	token, issued, err := s.identity.EnsureIdentity(req.IdentityToken)
	if err != nil {
		return nil, fmt.Errorf("failed to establish identity: %w", err)
	}

	orderID, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve order number: %w", err)
	}

	order := &models.Order{
		ID:              orderID,
		OrderDate:       time.Now().UnixMilli(),
		BuyerName:       req.BuyerName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryMethod:  req.DeliveryMethod,
		ShippingAddress: shippingAddress(req),
		Status:          models.OrderStatusProcessing,
		TotalAmount:     cart.Subtotal(),
	}

	items := make([]models.OrderItem, len(cart.Lines))
	for i := range cart.Lines {
		line := &cart.Lines[i]
		items[i] = models.OrderItem{
			OrderID:   orderID,
			ProductID: line.ProductID,
			Name:      line.Name,
			Brand:     line.Brand,
			Quantity:  line.Quantity,
			ItemPrice: line.UnitPrice(),
			ImageID:   line.ImageID,
		}
	}

	if err := s.orders.CreateWithItems(ctx, order, items); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order is placed; a stale cart is an annoyance, not a failure.
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	if err := s.publisher.OrderCreated(order, items); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("order_id", orderID), zap.Error(err))
	}

	result := &CheckoutResult{OrderID: orderID, Total: order.TotalAmount}
	if issued {
		result.IdentityToken = token
	}
	return result, nil
}
