package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/models"
	"github.com/go-redis/redis/v8"
)

type RedisRepository struct {
	client *redis.Client
	config *config.RedisConfig
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

// CartStore keeps one cart per browsing session, keyed by session ID. The
// TTL slides on every save; carts of abandoned sessions expire on their own.
type CartStore struct {
	redis *RedisRepository
	ttl   time.Duration
}

func NewCartStore(r *RedisRepository, ttl time.Duration) *CartStore {
	return &CartStore{redis: r, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// Load returns the session's cart, or an empty cart when none is stored.
func (s *CartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.redis.GetJSON(ctx, cartKey(sessionID), &cart)
	if errors.Is(err, redis.Nil) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	return s.redis.SetJSON(ctx, cartKey(sessionID), cart, s.ttl)
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	return s.redis.Del(ctx, cartKey(sessionID))
}
