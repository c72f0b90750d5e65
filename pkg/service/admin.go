package service

import (
	"context"
	"errors"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminUserStore is the back-office account collection.
type AdminUserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, email, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// TokenIssuer mints admin session tokens.
type TokenIssuer interface {
	IssueAdmin(email string) (string, error)
}

type AdminService struct {
	users  AdminUserStore
	tokens TokenIssuer
}

func NewAdminService(users AdminUserStore, tokens TokenIssuer) *AdminService {
	return &AdminService{users: users, tokens: tokens}
}

// Login checks the password and returns a session token. The error never
// reveals whether the email exists.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.IssueAdmin(user.Email)
}

// Bootstrap creates the first admin account from config when the collection
// is empty. A no-op otherwise.
func (s *AdminService) Bootstrap(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, email, string(hash))
}
