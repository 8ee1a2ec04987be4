package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PredictionRepository struct {
	col *mongo.Collection
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{col: db.DB().Collection("predictions")}
}

// GetByUserAndBase devuelve las n predicciones personalizadas para
// (usuario, película base), ordenadas por rating predicho descendente.
func (r *PredictionRepository) GetByUserAndBase(ctx context.Context, userID, baseMoviePk, n int) ([]models.PredictionDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "ratingPredict", Value: -1}}).
		SetLimit(int64(n))

	cur, err := r.col.Find(ctx, bson.M{
		"userId":      userID,
		"baseMoviePk": baseMoviePk,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.PredictionDoc
	for cur.Next(ctx) {
		var p models.PredictionDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// GetOneByUserAndTarget busca la predicción del usuario para una película
// recomendada concreta (enriquecimiento opcional; nil si no hay).
func (r *PredictionRepository) GetOneByUserAndTarget(ctx context.Context, userID, targetMoviePk int) (*models.PredictionDoc, error) {
	var p models.PredictionDoc
	err := r.col.FindOne(ctx, bson.M{
		"userId":             userID,
		"recommendedMoviePk": targetMoviePk,
	}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}
