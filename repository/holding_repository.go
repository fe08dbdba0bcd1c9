package repository

import (
	"context"
	"fmt"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HoldingRepository struct {
	collection *mongo.Collection
}

func NewHoldingRepository(db *mongo.Database) *HoldingRepository {
	return &HoldingRepository{
		collection: db.Collection("holdings"),
	}
}

func (r *HoldingRepository) FindAll(ctx context.Context) ([]model.Holding, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	holdings := make([]model.Holding, 0)
	if err := cursor.All(ctx, &holdings); err != nil {
		return nil, fmt.Errorf("failed to decode holdings: %w", err)
	}

	return holdings, nil
}
