package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/dsikeres1/innopia/internal/models"
)

// stubCatalog extiende el stub de películas con las operaciones de listado.
type stubCatalog struct {
	*stubMovies
	keywords map[int]models.KeywordDoc
}

func (s *stubCatalog) Count(ctx context.Context) (int64, error) {
	return int64(len(s.movies)), nil
}

func (s *stubCatalog) List(ctx context.Context, limit, offset int) ([]models.MovieDoc, error) {
	pks := make([]int, 0, len(s.movies))
	for pk := range s.movies {
		pks = append(pks, pk)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pks)))

	out := []models.MovieDoc{}
	for i, pk := range pks {
		if i < offset {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, s.movies[pk])
	}
	return out, nil
}

func (s *stubCatalog) GetKeywordsByPks(ctx context.Context, pks []int) ([]models.KeywordDoc, error) {
	out := []models.KeywordDoc{}
	for _, pk := range pks {
		if k, ok := s.keywords[pk]; ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func TestMovieList(t *testing.T) {
	svc := NewMovieService(&stubCatalog{stubMovies: catalogFixture()})

	got, err := svc.List(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if got.Total != 4 {
		t.Errorf("total = %d, quiero 4", got.Total)
	}
	if len(got.Movies) != 2 {
		t.Fatalf("len = %d, quiero 2", len(got.Movies))
	}
	if got.Movies[0].Pk != 300 || got.Movies[1].Pk != 200 {
		t.Errorf("página = [%d %d], quiero [300 200]", got.Movies[0].Pk, got.Movies[1].Pk)
	}
	// etiquetas de género con fallback name_ko → name_en
	if len(got.Movies[1].Genres) != 2 || got.Movies[1].Genres[0] != "액션" || got.Movies[1].Genres[1] != "Adventure" {
		t.Errorf("genres = %v", got.Movies[1].Genres)
	}
}

func TestMovieDetail(t *testing.T) {
	catalog := &stubCatalog{
		stubMovies: catalogFixture(),
		keywords: map[int]models.KeywordDoc{
			77: {Pk: 77, Name: "android"},
		},
	}
	m := catalog.movies[200]
	m.KeywordPks = []int{77}
	catalog.movies[200] = m

	svc := NewMovieService(catalog)

	t.Run("materializa géneros, keywords y nlp", func(t *testing.T) {
		got, err := svc.Detail(context.Background(), 200)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got.Pk != 200 || got.TitleEn != "First" {
			t.Errorf("detalle = pk %d título %q", got.Pk, got.TitleEn)
		}
		if len(got.Genres) != 2 || got.Genres[0].NameEn != "Action" {
			t.Errorf("genres = %+v", got.Genres)
		}
		if len(got.Keywords) != 1 || got.Keywords[0].Name != "android" {
			t.Errorf("keywords = %+v", got.Keywords)
		}
		if got.ReviewNLPScore == nil || *got.ReviewNLPScore != 87 {
			t.Errorf("review_nlp_score = %v, quiero 87", got.ReviewNLPScore)
		}
	})

	t.Run("sin doc nlp el score es null", func(t *testing.T) {
		got, err := svc.Detail(context.Background(), 300)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if got.ReviewNLPScore != nil {
			t.Errorf("review_nlp_score = %v, quiero null", got.ReviewNLPScore)
		}
		if got.OverviewKeywords == nil || got.ReviewsKeywords == nil {
			t.Error("las listas de keywords deben serializar como [] y no null")
		}
	})

	t.Run("pk inexistente", func(t *testing.T) {
		_, err := svc.Detail(context.Background(), 999)
		if !errors.Is(err, ErrMovieNotFound) {
			t.Fatalf("err = %v, quiero ErrMovieNotFound", err)
		}
	})
}
