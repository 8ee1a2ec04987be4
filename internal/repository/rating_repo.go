package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// GetByUserMinRating devuelve los ratings del usuario con rating >= min.
// Es la consulta del loop de umbrales (5.0 → 0.1).
func (r *RatingRepository) GetByUserMinRating(ctx context.Context, userID int, min float64) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"userId": userID,
		"rating": bson.M{"$gte": min},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}
