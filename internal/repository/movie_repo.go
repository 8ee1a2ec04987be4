package repository

import (
	"context"

	"github.com/dsikeres1/innopia/internal/db"
	"github.com/dsikeres1/innopia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MovieRepository struct {
	col      *mongo.Collection
	genres   *mongo.Collection
	keywords *mongo.Collection
	nlp      *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{
		col:      db.DB().Collection("movies"),
		genres:   db.DB().Collection("movie_genres"),
		keywords: db.DB().Collection("movie_keywords"),
		nlp:      db.DB().Collection("movie_nlp"),
	}
}

func (r *MovieRepository) GetByPk(ctx context.Context, pk int) (*models.MovieDoc, error) {
	var m models.MovieDoc
	err := r.col.FindOne(ctx, bson.M{"pk": pk}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &m, err
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// List devuelve películas ordenadas por popularidad descendente.
func (r *MovieRepository) List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// GetGenresByPks hace el batch-fetch del master de géneros.
func (r *MovieRepository) GetGenresByPks(ctx context.Context, pks []int) ([]models.GenreDoc, error) {
	if len(pks) == 0 {
		return []models.GenreDoc{}, nil
	}
	cur, err := r.genres.Find(ctx, bson.M{"pk": bson.M{"$in": pks}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.GenreDoc
	for cur.Next(ctx) {
		var g models.GenreDoc
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *MovieRepository) GetKeywordsByPks(ctx context.Context, pks []int) ([]models.KeywordDoc, error) {
	if len(pks) == 0 {
		return []models.KeywordDoc{}, nil
	}
	cur, err := r.keywords.Find(ctx, bson.M{"pk": bson.M{"$in": pks}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.KeywordDoc
	for cur.Next(ctx) {
		var k models.KeywordDoc
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, cur.Err()
}

func (r *MovieRepository) GetNLP(ctx context.Context, moviePk int) (*models.MovieNLPDoc, error) {
	var n models.MovieNLPDoc
	err := r.nlp.FindOne(ctx, bson.M{"moviePk": moviePk}).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &n, err
}
