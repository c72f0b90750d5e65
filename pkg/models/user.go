package models

// AdminUser is a back-office account. There is a single admin role; route
// access is gated only by a valid session.
type AdminUser struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	CreatedAt    int64  `bson:"createdAt" json:"created_at"`
}
