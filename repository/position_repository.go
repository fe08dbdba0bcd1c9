package repository

import (
	"context"
	"fmt"

	"github.com/omapatel2503/UptradeX-Trading-Platform/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PositionRepository struct {
	collection *mongo.Collection
}

func NewPositionRepository(db *mongo.Database) *PositionRepository {
	return &PositionRepository{
		collection: db.Collection("positions"),
	}
}

func (r *PositionRepository) FindAll(ctx context.Context) ([]model.Position, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to execute find: %w", err)
	}
	defer cursor.Close(ctx)

	positions := make([]model.Position, 0)
	if err := cursor.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("failed to decode positions: %w", err)
	}

	return positions, nil
}
