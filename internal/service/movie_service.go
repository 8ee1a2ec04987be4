package service

import (
	"context"

	"github.com/dsikeres1/innopia/internal/models"
)

const DefaultListLimit = 20

type movieCatalogReader interface {
	movieReader
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error)
	GetKeywordsByPks(ctx context.Context, pks []int) ([]models.KeywordDoc, error)
}

type MovieService struct {
	movies movieCatalogReader
}

func NewMovieService(m movieCatalogReader) *MovieService {
	return &MovieService{movies: m}
}

// List devuelve películas por popularidad descendente más el total.
func (s *MovieService) List(ctx context.Context, limit, offset int) (*models.MovieList, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.movies.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]models.MovieItem, 0, len(docs))
	for _, m := range docs {
		genres, err := s.movies.GetGenresByPks(ctx, m.GenrePks)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(genres))
		for _, g := range genres {
			names = append(names, g.DisplayName())
		}

		items = append(items, models.MovieItem{
			Pk:           m.Pk,
			TitleKo:      m.TitleKo,
			TitleEn:      m.TitleEn,
			PosterPath:   m.PosterPath,
			BackdropPath: m.BackdropPath,
			VoteAverage:  m.VoteAverage,
			ReleaseDate:  m.ReleaseDate,
			Genres:       names,
		})
	}

	return &models.MovieList{Movies: items, Total: total}, nil
}

// Detail materializa una película con géneros, keywords y datos NLP.
func (s *MovieService) Detail(ctx context.Context, pk int) (*models.MovieDetail, error) {
	m, err := s.movies.GetByPk(ctx, pk)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}

	genres, err := s.movies.GetGenresByPks(ctx, m.GenrePks)
	if err != nil {
		return nil, err
	}
	genreDetails := make([]models.MovieGenreDetail, 0, len(genres))
	for _, g := range genres {
		genreDetails = append(genreDetails, models.MovieGenreDetail{
			Pk:     g.Pk,
			NameKo: g.NameKo,
			NameEn: g.NameEn,
		})
	}

	keywords, err := s.movies.GetKeywordsByPks(ctx, m.KeywordPks)
	if err != nil {
		return nil, err
	}
	keywordDetails := make([]models.MovieKeywordDetail, 0, len(keywords))
	for _, k := range keywords {
		keywordDetails = append(keywordDetails, models.MovieKeywordDetail{
			Pk:   k.Pk,
			Name: k.Name,
		})
	}

	nlp, err := s.movies.GetNLP(ctx, pk)
	if err != nil {
		return nil, err
	}
	var nlpScore *int
	overviewKeywords := []string{}
	reviewsKeywords := []string{}
	if nlp != nil {
		v := scaleNLPScore(nlp.ReviewNLPScore)
		nlpScore = &v
		overviewKeywords = nlp.OverviewKeywords
		reviewsKeywords = nlp.ReviewsKeywords
	}

	return &models.MovieDetail{
		Pk:            m.Pk,
		TitleKo:       m.TitleKo,
		TitleEn:       m.TitleEn,
		OriginalTitle: m.OriginalTitle,
		OverviewKo:    m.OverviewKo,
		OverviewEn:    m.OverviewEn,
		TaglineKo:     m.TaglineKo,
		TaglineEn:     m.TaglineEn,
		PosterPath:    m.PosterPath,
		BackdropPath:  m.BackdropPath,
		ReleaseDate:   m.ReleaseDate,
		Runtime:       m.Runtime,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		Popularity:    m.Popularity,
		Adult:         m.Adult,
		Director:      m.Director,
		CastNames:     m.CastNames,

		Genres:   genreDetails,
		Keywords: keywordDetails,

		ReviewNLPScore:   nlpScore,
		OverviewKeywords: overviewKeywords,
		ReviewsKeywords:  reviewsKeywords,
	}, nil
}
