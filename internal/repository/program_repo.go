package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgramRepository struct {
	col *mongo.Collection
}

func NewProgramRepository() *ProgramRepository {
	return &ProgramRepository{col: db.DB().Collection("programs")}
}

// GetByPks hace batch-fetch de programas (para joins explícitos
// parrilla→programa e historial→programa).
func (r *ProgramRepository) GetByPks(ctx context.Context, pks []int) (map[int]models.ProgramDoc, error) {
	out := make(map[int]models.ProgramDoc, len(pks))
	if len(pks) == 0 {
		return out, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"pk": bson.M{"$in": pks}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var p models.ProgramDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out[p.Pk] = p
	}
	return out, cur.Err()
}

// GetWithAssetByGenre devuelve programas del mismo género que SÍ tienen
// thumbnail, excluyendo al propio programa (fallback de thumbnail).
func (r *ProgramRepository) GetWithAssetByGenre(ctx context.Context, genreKo string, excludePk int) ([]models.ProgramDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"genreKo": genreKo,
		"assetPk": bson.M{"$ne": nil},
		"pk":      bson.M{"$ne": excludePk},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProgramDoc
	for cur.Next(ctx) {
		var p models.ProgramDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
