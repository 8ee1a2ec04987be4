package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{col: db.DB().Collection("schedules")}
}

func (r *ScheduleRepository) GetByDay(ctx context.Context, dayOfWeek string) ([]models.ScheduleDoc, error) {
	return r.find(ctx, bson.M{"dayOfWeek": dayOfWeek})
}

// GetByDayAndTime devuelve la franja (día, HH:MM) en todos los canales.
func (r *ScheduleRepository) GetByDayAndTime(ctx context.Context, dayOfWeek, timeStr string) ([]models.ScheduleDoc, error) {
	return r.find(ctx, bson.M{"dayOfWeek": dayOfWeek, "time": timeStr})
}

func (r *ScheduleRepository) find(ctx context.Context, filter bson.M) ([]models.ScheduleDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ScheduleDoc
	for cur.Next(ctx) {
		var s models.ScheduleDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}
