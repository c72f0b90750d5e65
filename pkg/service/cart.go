package service

import (
	"context"
	"errors"

	"github.com/example/storefront/pkg/models"
)

var ErrLineNotFound = errors.New("item not in cart")

// CartStore persists per-session carts.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// ProductGetter resolves catalog products for cart snapshots.
type ProductGetter interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// CartService mutates the session-scoped cart. Every mutation loads the
// cart, applies the change and saves it back; the UI drives one mutation at
// a time per session.
type CartService struct {
	store    CartStore
	products ProductGetter
}

func NewCartService(store CartStore, products ProductGetter) *CartService {
	return &CartService{store: store, products: products}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem snapshots the product into the cart, incrementing the quantity
// when it is already there.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Add(product)
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity sets a line's quantity. Values below 1 are clamped to 1.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.SetQuantity(productID, quantity) {
		return nil, ErrLineNotFound
	}
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID) {
		return nil, ErrLineNotFound
	}
	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
