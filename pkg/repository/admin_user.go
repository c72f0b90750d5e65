package repository

import (
	"context"
	"errors"
	"time"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminUserRepository struct {
	mongo *MongoRepository
}

func NewAdminUserRepository(m *MongoRepository) *AdminUserRepository {
	return &AdminUserRepository{mongo: m}
}

func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.mongo.collection(collAdminUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) Create(ctx context.Context, email, passwordHash string) error {
	user := models.AdminUser{
		ID:           primitive.NewObjectID().Hex(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UnixMilli(),
	}
	_, err := r.mongo.collection(collAdminUsers).InsertOne(ctx, user)
	return err
}

func (r *AdminUserRepository) Count(ctx context.Context) (int64, error) {
	return r.mongo.collection(collAdminUsers).CountDocuments(ctx, bson.M{})
}
