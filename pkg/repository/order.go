package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/example/storefront/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Order numbers start above this base so customers see IDs like "1001".
const orderNumberBase = 1000

type OrderRepository struct {
	mongo *MongoRepository
}

func NewOrderRepository(m *MongoRepository) *OrderRepository {
	return &OrderRepository{mongo: m}
}

// NextOrderNumber reserves the next sequential order number from the
// counters collection.
func (r *OrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.mongo.collection(collCounters).FindOneAndUpdate(ctx,
		bson.M{"_id": "orders"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(orderNumberBase+counter.Seq, 10), nil
}

// CreateWithItems inserts the order and all of its items in one transaction.
// A failure anywhere aborts the whole write; there is never an order without
// its items.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	_, err := r.mongo.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.mongo.collection(collOrders).InsertOne(sc, order); err != nil {
			return nil, err
		}
		docs := make([]interface{}, len(items))
		for i := range items {
			items[i].OrderID = order.ID
			docs[i] = items[i]
		}
		if _, err := r.mongo.collection(collOrderItems).InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.mongo.collection(collOrders).FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders newest first.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cursor, err := r.mongo.collection(collOrders).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	cursor, err := r.mongo.collection(collOrderItems).Find(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.OrderItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.ValidOrderStatus(status) {
		return errors.New("invalid order status")
	}
	res, err := r.mongo.collection(collOrders).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the order together with its items.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.mongo.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.mongo.collection(collOrders).DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		if _, err := r.mongo.collection(collOrderItems).DeleteMany(sc, bson.M{"orderId": id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
