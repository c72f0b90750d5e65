package models

// Order statuses. Transitions happen only through admin action.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Delivery methods accepted at checkout.
const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

// PickupAddress is stored as the shipping address of pickup orders.
const PickupAddress = "Pickup from store"

type Order struct {
	ID              string  `bson:"_id" json:"id"`
	OrderDate       int64   `bson:"orderDate" json:"orderDate"` // unix millis
	BuyerName       string  `bson:"buyerName" json:"buyerName"`
	PhoneNumber     string  `bson:"phoneNumber" json:"phoneNumber"`
	DeliveryMethod  string  `bson:"deliveryMethod" json:"deliveryMethod"`
	ShippingAddress string  `bson:"shippingAddress" json:"shippingAddress"`
	Status          string  `bson:"status" json:"status"`
	TotalAmount     float64 `bson:"totalAmount" json:"totalAmount"`
}

// OrderItem freezes product name, brand and discount-adjusted price at the
// time of purchase. Catalog edits never touch historical items.
type OrderItem struct {
	ID        string  `bson:"_id,omitempty" json:"-"`
	OrderID   string  `bson:"orderId" json:"orderId"`
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Brand     string  `bson:"brand" json:"brand"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	ItemPrice float64 `bson:"itemPrice" json:"itemPrice"`
	ImageID   string  `bson:"imageId" json:"imageId"`
}

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
