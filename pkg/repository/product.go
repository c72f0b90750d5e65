package repository

import (
	"context"
	"errors"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("not found")

type ProductRepository struct {
	mongo *MongoRepository
}

func NewProductRepository(m *MongoRepository) *ProductRepository {
	return &ProductRepository{mongo: m}
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.mongo.collection(collProducts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) ListByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.mongo.collection(collProducts).Find(ctx, bson.M{"brand": brand}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Brands returns the distinct brand names present in the catalog.
func (r *ProductRepository) Brands(ctx context.Context) ([]string, error) {
	values, err := r.mongo.collection(collProducts).Distinct(ctx, "brand", bson.M{})
	if err != nil {
		return nil, err
	}
	brands := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			brands = append(brands, s)
		}
	}
	return brands, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.mongo.collection(collProducts).FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.mongo.collection(collProducts).InsertOne(ctx, p)
	return err
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	res, err := r.mongo.collection(collProducts).ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.mongo.collection(collProducts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
