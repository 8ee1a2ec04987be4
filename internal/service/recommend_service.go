package service

import (
	"context"
	"fmt"
	"log"

	"github.com/dsikeres1/innopia/internal/cache"
	"github.com/dsikeres1/innopia/internal/models"
	"github.com/dsikeres1/innopia/internal/random"
)

const (
	DefaultTopN = 10
	MaxTopN     = 50 // por seguridad, no deja pedir 1000 ítems

	DefaultMultipleCount = 3
	DefaultMultipleTopN  = 20
)

type movieReader interface {
	GetByPk(ctx context.Context, pk int) (*models.MovieDoc, error)
	GetGenresByPks(ctx context.Context, pks []int) ([]models.GenreDoc, error)
	GetNLP(ctx context.Context, moviePk int) (*models.MovieNLPDoc, error)
}

type similarityReader interface {
	GetBySource(ctx context.Context, sourceMoviePk, n int) ([]models.SimilarityDoc, error)
}

type predictionReader interface {
	GetByUserAndBase(ctx context.Context, userID, baseMoviePk, n int) ([]models.PredictionDoc, error)
	GetOneByUserAndTarget(ctx context.Context, userID, targetMoviePk int) (*models.PredictionDoc, error)
}

type ratingReader interface {
	GetByUserMinRating(ctx context.Context, userID int, min float64) ([]models.RatingDoc, error)
}

type movieLensReader interface {
	GetByID(ctx context.Context, movieID int) (*models.MovieLensMovieDoc, error)
	GetSimilarities(ctx context.Context, movieLensID, n int) ([]models.MovieLensTMDBSimilarityDoc, error)
}

type recommendationStore interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
	FindByUser(ctx context.Context, userID int) ([]models.Recommendation, error)
}

// RecommendService implementa la selección de candidatos: predicciones
// personalizadas vs. similitud genérica para una película seed, y el
// loop de umbrales sobre los ratings del usuario para elegir el seed.
type RecommendService struct {
	movies  movieReader
	sims    similarityReader
	preds   predictionReader
	ratings ratingReader
	mlens   movieLensReader
	recRepo recommendationStore // opcional: historial de auditoría
	rng     random.Source
}

func NewRecommendService(
	movies movieReader,
	sims similarityReader,
	preds predictionReader,
	ratings ratingReader,
	mlens movieLensReader,
	recRepo recommendationStore,
	rng random.Source,
) *RecommendService {
	return &RecommendService{
		movies:  movies,
		sims:    sims,
		preds:   preds,
		ratings: ratings,
		mlens:   mlens,
		recRepo: recRepo,
		rng:     rng,
	}
}

func clampTopN(n, def int) int {
	if n <= 0 {
		return def
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

func movieRecCacheKey(moviePk, userID, topN int) string {
	// userID 0 = anónimo; la ruta seed-item es determinista así que se cachea
	return fmt.Sprintf("rec:movie:%d:user:%d:n:%d", moviePk, userID, topN)
}

// MovieRecommend: recomendaciones para una película seed. Con usuario
// conocido usa sus predicciones personalizadas (similarity_score fijo en
// 100, rating_predict poblado); anónimo usa la tabla de similitud
// (similarity_score real, rating_predict null). userID 0 = anónimo.
func (s *RecommendService) MovieRecommend(ctx context.Context, userID, moviePk, topN int) ([]models.RecommendedMovie, error) {
	topN = clampTopN(topN, DefaultTopN)

	base, err := s.movies.GetByPk(ctx, moviePk)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, ErrMovieNotFound
	}

	var cached []models.RecommendedMovie
	if ok, err := cache.GetJSON(ctx, movieRecCacheKey(moviePk, userID, topN), &cached); err == nil && ok {
		return cached, nil
	}

	out := []models.RecommendedMovie{}
	if userID != 0 {
		predictions, err := s.preds.GetByUserAndBase(ctx, userID, moviePk, topN)
		if err != nil {
			return nil, err
		}
		for _, pred := range predictions {
			predicted := scaleRatingPredict(pred.RatingPredict)
			rec, err := s.buildRecommendedMovie(ctx, pred.RecommendedMoviePk, 100, &predicted)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				out = append(out, *rec)
			}
		}
	} else {
		similarities, err := s.sims.GetBySource(ctx, moviePk, topN)
		if err != nil {
			return nil, err
		}
		for _, sim := range similarities {
			rec, err := s.buildRecommendedMovie(ctx, sim.TargetMoviePk, scaleSimilarity(sim.SimilarityScore), nil)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				out = append(out, *rec)
			}
		}
	}

	if err := cache.SetJSON(ctx, movieRecCacheKey(moviePk, userID, topN), out, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return out, nil
}

// UserMovieRecommend elige un seed del propio historial de ratings del
// usuario y recomienda por el puente MovieLens→TMDB.
func (s *RecommendService) UserMovieRecommend(ctx context.Context, userID, topN int) (*models.UserMovieRecommendation, error) {
	topN = clampTopN(topN, DefaultTopN)

	rec, err := s.recommendRound(ctx, userID, topN, nil)
	if err != nil {
		return nil, err
	}
	s.saveHistory(ctx, userID, topN, rec)
	return rec, nil
}

// UserMovieRecommendMultiple repite el protocolo `count` veces con un set
// de exclusión compartido: un mismo favorito nunca es seed dos veces.
func (s *RecommendService) UserMovieRecommendMultiple(ctx context.Context, userID, count, topN int) ([]models.UserMovieRecommendation, error) {
	if count <= 0 {
		count = DefaultMultipleCount
	}
	topN = clampTopN(topN, DefaultMultipleTopN)

	selected := make(map[int]bool)
	out := []models.UserMovieRecommendation{}

	for i := 0; i < count; i++ {
		rec, err := s.recommendRound(ctx, userID, topN, selected)
		if err != nil {
			return nil, err
		}
		if len(rec.RecommendedMovies) == 0 {
			continue
		}
		s.saveHistory(ctx, userID, topN, rec)
		out = append(out, *rec)
	}
	return out, nil
}

// recommendRound es una pasada del protocolo seed-desde-historial:
// baja el umbral de 5.0 a 0.1 en pasos de 0.1; al primer umbral con
// ratings que cumplan elige uno al azar (excluyendo seeds ya usados),
// resuelve su título MovieLens y consulta el puente de similitudes. Si el
// puente viene vacío sigue bajando el umbral.
func (s *RecommendService) recommendRound(ctx context.Context, userID, topN int, excluded map[int]bool) (*models.UserMovieRecommendation, error) {
	var seedMovieID *int
	var seedTitle *string
	var similarities []models.MovieLensTMDBSimilarityDoc

	for t := 50; t >= 1; t-- {
		threshold := float64(t) / 10.0

		ratings, err := s.ratings.GetByUserMinRating(ctx, userID, threshold)
		if err != nil {
			return nil, err
		}
		if len(ratings) == 0 {
			continue
		}

		available := ratings
		if excluded != nil {
			available = make([]models.RatingDoc, 0, len(ratings))
			for _, rt := range ratings {
				if !excluded[rt.MovieID] {
					available = append(available, rt)
				}
			}
			if len(available) == 0 {
				continue
			}
		}

		sel := available[random.Pick(s.rng, len(available))]
		id := sel.MovieID
		seedMovieID = &id
		if excluded != nil {
			excluded[id] = true
		}

		mlMovie, err := s.mlens.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if mlMovie == nil {
			continue
		}
		seedTitle = &mlMovie.Title

		similarities, err = s.mlens.GetSimilarities(ctx, id, topN)
		if err != nil {
			return nil, err
		}
		if len(similarities) > 0 {
			break
		}
	}

	recommended := []models.RecommendedMovie{}
	for _, sim := range similarities {
		rec, err := s.buildRecommendedMovie(ctx, sim.TMDBMoviePk, scaleSimilarity(sim.SimilarityScore), nil)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}

		// enriquecimiento opcional con la predicción personalizada
		pred, err := s.preds.GetOneByUserAndTarget(ctx, userID, rec.Pk)
		if err != nil {
			return nil, err
		}
		if pred != nil {
			predicted := scaleRatingPredict(pred.RatingPredict)
			rec.RatingPredict = &predicted
		}

		recommended = append(recommended, *rec)
	}

	return &models.UserMovieRecommendation{
		SelectedMovieTitle: seedTitle,
		SelectedMoviePk:    seedMovieID,
		RecommendedMovies:  recommended,
	}, nil
}

// History devuelve las recomendaciones ya servidas al usuario, la más
// reciente primero.
func (s *RecommendService) History(ctx context.Context, userID int) ([]models.Recommendation, error) {
	if s.recRepo == nil {
		return []models.Recommendation{}, nil
	}
	recs, err := s.recRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return recs, nil
}

// buildRecommendedMovie materializa una película con sus géneros y datos
// NLP (joins explícitos, nada de lazy loading). Devuelve nil si el pk no
// existe en el catálogo.
func (s *RecommendService) buildRecommendedMovie(ctx context.Context, moviePk, similarityScore int, ratingPredict *int) (*models.RecommendedMovie, error) {
	movie, err := s.movies.GetByPk(ctx, moviePk)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, nil
	}

	genres, err := s.movies.GetGenresByPks(ctx, movie.GenrePks)
	if err != nil {
		return nil, err
	}
	genreNames := make([]string, 0, len(genres))
	for _, g := range genres {
		genreNames = append(genreNames, g.DisplayName())
	}

	nlp, err := s.movies.GetNLP(ctx, moviePk)
	if err != nil {
		return nil, err
	}

	var nlpScore *int
	keywords := []string{}
	if nlp != nil {
		v := scaleNLPScore(nlp.ReviewNLPScore)
		nlpScore = &v
		keywords = keywordUnion(nlp.OverviewKeywords, nlp.ReviewsKeywords)
	}

	return &models.RecommendedMovie{
		Pk:              movie.Pk,
		TitleKo:         movie.TitleKo,
		TitleEn:         movie.TitleEn,
		PosterPath:      movie.PosterPath,
		SimilarityScore: similarityScore,
		Genres:          genreNames,
		ReviewNLPScore:  nlpScore,
		RatingPredict:   ratingPredict,
		Keywords:        keywords,
	}, nil
}

// saveHistory guarda el resultado en Mongo (no rompemos la respuesta si falla).
func (s *RecommendService) saveHistory(ctx context.Context, userID, topN int, rec *models.UserMovieRecommendation) {
	if s.recRepo == nil || rec == nil {
		return
	}

	items := make([]models.RecItem, 0, len(rec.RecommendedMovies))
	for _, m := range rec.RecommendedMovies {
		items = append(items, models.RecItem{
			MoviePk: m.Pk,
			Score:   float64(m.SimilarityScore) / 100.0,
		})
	}

	hist := &models.Recommendation{
		UserID:      userID,
		Algo:        "movielens-sim",
		SeedMoviePk: rec.SelectedMoviePk,
		Params:      map[string]any{"topN": topN},
		Items:       items,
	}
	if err := s.recRepo.Insert(ctx, hist); err != nil {
		log.Printf("error guardando recomendación en Mongo: %v", err)
	}
}
