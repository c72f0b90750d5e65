package repository

import (
	"context"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InquiryRepository struct {
	mongo *MongoRepository
}

func NewInquiryRepository(m *MongoRepository) *InquiryRepository {
	return &InquiryRepository{mongo: m}
}

func (r *InquiryRepository) Insert(ctx context.Context, inq *models.Inquiry) error {
	if inq.ID == "" {
		inq.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.mongo.collection(collInquiries).InsertOne(ctx, inq)
	return err
}

func (r *InquiryRepository) List(ctx context.Context) ([]models.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.mongo.collection(collInquiries).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err = cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.mongo.collection(collInquiries).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
