package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieLensRepository struct {
	movies *mongo.Collection
	sims   *mongo.Collection
}

func NewMovieLensRepository() *MovieLensRepository {
	return &MovieLensRepository{
		movies: db.DB().Collection("movielens_movies"),
		sims:   db.DB().Collection("movielens_tmdb_similarities"),
	}
}

func (r *MovieLensRepository) GetByID(ctx context.Context, movieID int) (*models.MovieLensMovieDoc, error) {
	var m models.MovieLensMovieDoc
	err := r.movies.FindOne(ctx, bson.M{"movieId": movieID}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

// GetSimilarities devuelve las n mejores aristas MovieLens→TMDB para un
// id MovieLens (puente entre los dos espacios de ids).
func (r *MovieLensRepository) GetSimilarities(ctx context.Context, movieLensID, n int) ([]models.MovieLensTMDBSimilarityDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "similarityScore", Value: -1}}).
		SetLimit(int64(n))

	cur, err := r.sims.Find(ctx, bson.M{"movielensMovieId": movieLensID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieLensTMDBSimilarityDoc
	for cur.Next(ctx) {
		var s models.MovieLensTMDBSimilarityDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}
