package service

import (
	"context"
	"math"
	"testing"

	"github.com/dsikeres1/innopia/internal/models"
)

// stubs compartidos por los tests de preferencias y parrilla

type stubLogs struct {
	logs []models.ViewingLogDoc
}

func (s *stubLogs) GetAllByUser(ctx context.Context, userID int) ([]models.ViewingLogDoc, error) {
	return s.logs, nil
}

func (s *stubLogs) GetByUserAndQuarter(ctx context.Context, userID int, quarter string) ([]models.ViewingLogDoc, error) {
	return s.logs, nil
}

type stubPrograms struct {
	byPk      map[int]models.ProgramDoc
	withAsset map[string][]models.ProgramDoc
}

func (s *stubPrograms) GetByPks(ctx context.Context, pks []int) (map[int]models.ProgramDoc, error) {
	out := make(map[int]models.ProgramDoc)
	for _, pk := range pks {
		if p, ok := s.byPk[pk]; ok {
			out[pk] = p
		}
	}
	return out, nil
}

func (s *stubPrograms) GetWithAssetByGenre(ctx context.Context, genreKo string, excludePk int) ([]models.ProgramDoc, error) {
	out := []models.ProgramDoc{}
	for _, p := range s.withAsset[genreKo] {
		if p.Pk != excludePk {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestParseAgeGroup(t *testing.T) {
	cases := []struct {
		age  string
		want int
	}{
		{"1-17", 1},
		{"18-24", 2},
		{"25-34", 3},
		{"35-44", 4},
		{"45-49", 5},
		{"50-55", 6},
		{"56+", 7},
		{"", 7},
		{"basura", 7},
	}
	for _, c := range cases {
		t.Run(c.age, func(t *testing.T) {
			if got := parseAgeGroup(c.age); got != c.want {
				t.Fatalf("parseAgeGroup(%q) = %d, quiero %d", c.age, got, c.want)
			}
		})
	}
}

func TestGenreWeights(t *testing.T) {
	svc := NewPreferenceService(&stubLogs{}, &stubPrograms{})

	t.Run("25-34 sin boost de ocupación", func(t *testing.T) {
		// "Programmer" no matchea ninguna categoría de ocupación
		weights := svc.GenreWeights(models.UserDoc{Age: "25-34", Occupation: "Programmer"})

		want := map[string]float64{
			"뉴스": 3.0, "드라마": 3.0, "예능": 3.0, "영화": 3.0,
			"스포츠": 1.0, "다큐": 1.0, "애니": 1.0, "음악": 1.0, "홈쇼핑": 1.0, "시사": 1.0,
		}
		if len(weights) != len(want) {
			t.Fatalf("len = %d, quiero %d", len(weights), len(want))
		}
		for g, w := range want {
			if weights[g] != w {
				t.Errorf("weights[%s] = %v, quiero %v", g, weights[g], w)
			}
		}
	})

	t.Run("los boosts de ocupación se acumulan", func(t *testing.T) {
		// writer y student matchean a la vez: 예능 = 1 + 2 (edad) + 3 + 3
		weights := svc.GenreWeights(models.UserDoc{Age: "25-34", Occupation: "Writer, college student"})
		if weights["예능"] != 9.0 {
			t.Fatalf("weights[예능] = %v, quiero 9.0", weights["예능"])
		}
		if weights["음악"] != 7.0 { // 1 + 3 + 3
			t.Fatalf("weights[음악] = %v, quiero 7.0", weights["음악"])
		}
	})
}

func TestCombinedGenreWeights(t *testing.T) {
	user := models.UserDoc{UserID: 1, Age: "25-34", Occupation: "Programmer"}

	t.Run("sin historial equivale al prior demográfico", func(t *testing.T) {
		svc := NewPreferenceService(&stubLogs{}, &stubPrograms{})

		combined, err := svc.CombinedGenreWeights(context.Background(), user)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		base := svc.GenreWeights(user)
		for g, w := range base {
			if combined[g] != w {
				t.Errorf("combined[%s] = %v, quiero %v", g, combined[g], w)
			}
		}
	})

	t.Run("el historial suma frecuencia x5", func(t *testing.T) {
		programs := &stubPrograms{byPk: map[int]models.ProgramDoc{
			1: {Pk: 1, GenreKo: "드라마"},
			2: {Pk: 2, GenreKo: "영화"},
		}}
		logs := &stubLogs{logs: []models.ViewingLogDoc{
			{UserID: 1, ProgramPk: 1},
			{UserID: 1, ProgramPk: 1},
			{UserID: 1, ProgramPk: 1},
			{UserID: 1, ProgramPk: 2},
		}}
		svc := NewPreferenceService(logs, programs)

		combined, err := svc.CombinedGenreWeights(context.Background(), user)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		// prior 3.0 + 0.75*5
		if got := combined["드라마"]; math.Abs(got-6.75) > 1e-9 {
			t.Errorf("combined[드라마] = %v, quiero 6.75", got)
		}
		// prior 3.0 + 0.25*5
		if got := combined["영화"]; math.Abs(got-4.25) > 1e-9 {
			t.Errorf("combined[영화] = %v, quiero 4.25", got)
		}
		// género nunca visto queda en el prior
		if got := combined["스포츠"]; got != 1.0 {
			t.Errorf("combined[스포츠] = %v, quiero 1.0", got)
		}
	})
}

func TestNormalize(t *testing.T) {
	probs := Normalize(map[string]float64{"a": 1, "b": 3})
	if math.Abs(probs["a"]-0.25) > 1e-9 || math.Abs(probs["b"]-0.75) > 1e-9 {
		t.Fatalf("probs = %v", probs)
	}

	var total float64
	for _, p := range probs {
		total += p
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("la distribución suma %v, quiero 1.0", total)
	}

	if got := Normalize(map[string]float64{}); len(got) != 0 {
		t.Fatalf("mapa vacío normalizado = %v", got)
	}
}
