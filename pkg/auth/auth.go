package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles carried in token claims.
const (
	RoleShopper = "shopper"
	RoleAdmin   = "admin"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the JWT payload for both anonymous shoppers and admins.
type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and parses HMAC-signed tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) issue(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// IssueAnonymous mints an identity token for a shopper who never signed up.
// Checkout requires some identity; this is created server-side in the same
// request instead of bouncing the user into a second submit.
func (m *Manager) IssueAnonymous() (string, error) {
	now := time.Now()
	return m.issue(&Claims{
		Role: RoleShopper,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "storefront",
		},
	})
}

func (m *Manager) IssueAdmin(email string) (string, error) {
	now := time.Now()
	return m.issue(&Claims{
		Role:  RoleAdmin,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "storefront",
		},
	})
}

func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EnsureIdentity returns a valid identity token, minting an anonymous one
// when the given token is empty or no longer valid. The second return value
// reports whether a new token was issued.
func (m *Manager) EnsureIdentity(tokenString string) (string, bool, error) {
	if tokenString != "" {
		if _, err := m.Parse(tokenString); err == nil {
			return tokenString, false, nil
		}
	}
	token, err := m.IssueAnonymous()
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}
