package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssetRepository struct {
	col *mongo.Collection
}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{col: db.DB().Collection("assets")}
}

func (r *AssetRepository) GetByPk(ctx context.Context, pk int) (*models.AssetDoc, error) {
	var a models.AssetDoc
	err := r.col.FindOne(ctx, bson.M{"pk": pk}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &a, err
}
