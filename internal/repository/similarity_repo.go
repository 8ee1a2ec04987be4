package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SimilarityRepository struct {
	col *mongo.Collection
}

func NewSimilarityRepository() *SimilarityRepository {
	return &SimilarityRepository{col: db.DB().Collection("similarities")}
}

// GetBySource devuelve las n aristas más similares desde una película TMDB.
func (r *SimilarityRepository) GetBySource(ctx context.Context, sourceMoviePk, n int) ([]models.SimilarityDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "similarityScore", Value: -1}}).
		SetLimit(int64(n))

	cur, err := r.col.Find(ctx, bson.M{"sourceMoviePk": sourceMoviePk}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SimilarityDoc
	for cur.Next(ctx) {
		var s models.SimilarityDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}
