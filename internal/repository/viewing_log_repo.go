package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ViewingLogRepository struct {
	col *mongo.Collection
}

func NewViewingLogRepository() *ViewingLogRepository {
	return &ViewingLogRepository{col: db.DB().Collection("viewing_logs")}
}

func (r *ViewingLogRepository) GetAllByUser(ctx context.Context, userID int) ([]models.ViewingLogDoc, error) {
	return r.find(ctx, bson.M{"userId": userID}, nil)
}

// GetByUserAndQuarter devuelve el historial del trimestre ordenado por
// fecha y hora ascendente.
func (r *ViewingLogRepository) GetByUserAndQuarter(ctx context.Context, userID int, quarter string) ([]models.ViewingLogDoc, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "viewDate", Value: 1},
		{Key: "viewTime", Value: 1},
	})
	return r.find(ctx, bson.M{"userId": userID, "quarter": quarter}, opts)
}

func (r *ViewingLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ViewingLogDoc, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ViewingLogDoc
	for cur.Next(ctx) {
		var l models.ViewingLogDoc
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, cur.Err()
}
