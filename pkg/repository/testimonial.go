package repository

import (
	"context"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestimonialRepository struct {
	mongo *MongoRepository
}

func NewTestimonialRepository(m *MongoRepository) *TestimonialRepository {
	return &TestimonialRepository{mongo: m}
}

func (r *TestimonialRepository) Insert(ctx context.Context, t *models.Testimonial) error {
	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.mongo.collection(collTestimonials).InsertOne(ctx, t)
	return err
}

// ListRecent returns the latest testimonials, newest first.
func (r *TestimonialRepository) ListRecent(ctx context.Context, limit int64) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.mongo.collection(collTestimonials).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err = cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	return r.ListRecent(ctx, 0)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.mongo.collection(collTestimonials).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
