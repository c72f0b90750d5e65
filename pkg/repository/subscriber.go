package repository

import (
	"context"
	"time"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubscriberRepository struct {
	mongo *MongoRepository
}

func NewSubscriberRepository(m *MongoRepository) *SubscriberRepository {
	return &SubscriberRepository{mongo: m}
}

// Add upserts by email so repeated signups stay idempotent.
func (r *SubscriberRepository) Add(ctx context.Context, email string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.mongo.collection(collSubscribers).UpdateOne(ctx,
		bson.M{"_id": email},
		bson.M{"$setOnInsert": bson.M{"createdAt": time.Now().UnixMilli()}},
		opts,
	)
	return err
}

func (r *SubscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.mongo.collection(collSubscribers).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscribers []models.Subscriber
	if err = cursor.All(ctx, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}
