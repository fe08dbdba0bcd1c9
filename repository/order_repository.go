package repository

import (
	"context"
	"fmt"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// Insert persists one order and returns it with the assigned identifier.
func (r *OrderRepository) Insert(ctx context.Context, order model.Order) (*model.Order, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
