package models

// Testimonial is a customer review attached to a delivered order.
type Testimonial struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Author    string `bson:"author" json:"author"`
	Quote     string `bson:"quote" json:"quote"`
	Rating    int    `bson:"rating" json:"rating"` // 1-5
	OrderID   string `bson:"orderId" json:"orderId"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"` // unix millis, server-assigned
}

// Inquiry is a contact-form submission. Write-only from the public side.
type Inquiry struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Name      string `bson:"name" json:"name"`
	Phone     string `bson:"phone" json:"phone"`
	Message   string `bson:"message" json:"message"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	Email     string `bson:"_id" json:"email"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"`
}
