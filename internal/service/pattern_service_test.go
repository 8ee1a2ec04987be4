package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dsikeres1/innopia/internal/models"
)

type stubSchedules struct {
	byDay     map[string][]models.ScheduleDoc
	byDayTime map[string][]models.ScheduleDoc // clave "día hora"
}

func (s *stubSchedules) GetByDay(ctx context.Context, dayOfWeek string) ([]models.ScheduleDoc, error) {
	return s.byDay[dayOfWeek], nil
}

func (s *stubSchedules) GetByDayAndTime(ctx context.Context, dayOfWeek, timeStr string) ([]models.ScheduleDoc, error) {
	return s.byDayTime[dayOfWeek+" "+timeStr], nil
}

type stubAssets struct {
	byPk map[int]models.AssetDoc
}

func (s *stubAssets) GetByPk(ctx context.Context, pk int) (*models.AssetDoc, error) {
	if a, ok := s.byPk[pk]; ok {
		return &a, nil
	}
	return nil, nil
}

func intPtr(n int) *int { return &n }

// parrilla de prueba: 6 canales en la franja del lunes 20:00
func patternFixture() (*stubSchedules, *stubPrograms) {
	programs := &stubPrograms{byPk: map[int]models.ProgramDoc{
		1: {Pk: 1, NameKo: "뉴스룸", GenreKo: "뉴스"},
		2: {Pk: 2, NameKo: "주말 드라마", GenreKo: "드라마", AssetPk: intPtr(4)},
		3: {Pk: 3, NameKo: "런닝맨", GenreKo: "예능"},
		4: {Pk: 4, NameKo: "영화특선", GenreKo: "영화"},
		5: {Pk: 5, NameKo: "축구 중계", GenreKo: "스포츠"},
		6: {Pk: 6, NameKo: "자연 다큐", GenreKo: "다큐"},
	}}
	slot := []models.ScheduleDoc{
		{Pk: 1, DayOfWeek: "월요일", Time: "20:00", Channel: "채널1", ProgramPk: 1},
		{Pk: 2, DayOfWeek: "월요일", Time: "20:00", Channel: "채널2", ProgramPk: 2},
		{Pk: 3, DayOfWeek: "월요일", Time: "20:00", Channel: "채널3", ProgramPk: 3},
		{Pk: 4, DayOfWeek: "월요일", Time: "20:00", Channel: "채널4", ProgramPk: 4},
		{Pk: 5, DayOfWeek: "월요일", Time: "20:00", Channel: "채널5", ProgramPk: 5},
		{Pk: 6, DayOfWeek: "월요일", Time: "20:00", Channel: "채널6", ProgramPk: 6},
	}
	schedules := &stubSchedules{
		byDay:     map[string][]models.ScheduleDoc{"월요일": slot},
		byDayTime: map[string][]models.ScheduleDoc{"월요일 20:00": slot},
	}
	return schedules, programs
}

func newPatternService(schedules *stubSchedules, programs *stubPrograms, logs *stubLogs, rng *stubSource) *PatternService {
	prefs := NewPreferenceService(logs, programs)
	return NewPatternService(schedules, programs, &stubAssets{}, logs, prefs, rng)
}

func TestPatternSchedule(t *testing.T) {
	schedules, programs := patternFixture()
	svc := newPatternService(schedules, programs, &stubLogs{}, &stubSource{})

	got, err := svc.Schedule(context.Background(), "월요일")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("len = %d, quiero 6", len(got))
	}
	if got[0].Channel != "채널1" || got[0].ProgramName != "뉴스룸" || got[0].Genre != "뉴스" {
		t.Errorf("primero = %+v", got[0])
	}

	if empty, _ := svc.Schedule(context.Background(), "화요일"); len(empty) != 0 {
		t.Fatalf("día sin parrilla devolvió %d filas", len(empty))
	}
}

func TestPatternViewingHistory(t *testing.T) {
	schedules, programs := patternFixture()
	logs := &stubLogs{logs: []models.ViewingLogDoc{
		{UserID: 1, ProgramPk: 3, Quarter: "Q1", ViewDate: "2026-02-10", ViewTime: "20:00", Channel: "채널3"},
		{UserID: 1, ProgramPk: 999, Quarter: "Q1"}, // programa borrado: se omite
	}}
	svc := newPatternService(schedules, programs, logs, &stubSource{})

	got, err := svc.ViewingHistory(context.Background(), 1, "Q1")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, quiero 1", len(got))
	}
	if got[0].ProgramName != "런닝맨" || got[0].Genre != "예능" || got[0].Date != "2026-02-10" {
		t.Errorf("fila = %+v", got[0])
	}
}

func TestPatternRecommendations(t *testing.T) {
	user := models.UserDoc{UserID: 1, Age: "25-34", Occupation: "Programmer"}

	t.Run("fecha inválida", func(t *testing.T) {
		schedules, programs := patternFixture()
		svc := newPatternService(schedules, programs, &stubLogs{}, &stubSource{})

		_, err := svc.Recommendations(context.Background(), user, "31-08-2026", "20:00")
		if !errors.Is(err, ErrInvalidDateTime) {
			t.Fatalf("err = %v, quiero ErrInvalidDateTime", err)
		}
	})

	t.Run("franja vacía devuelve igualmente las preferencias", func(t *testing.T) {
		schedules, programs := patternFixture()
		svc := newPatternService(schedules, programs, &stubLogs{}, &stubSource{})

		// 2026-08-31 es lunes, pero a las 03:00 no hay parrilla
		got, err := svc.Recommendations(context.Background(), user, "2026-08-31", "03:00")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if len(got.Recommendations) != 0 {
			t.Fatalf("len = %d, quiero 0", len(got.Recommendations))
		}
		if len(got.GenrePreferences) == 0 {
			t.Fatal("genre_preferences vacío")
		}
		var total float64
		for _, p := range got.GenrePreferences {
			total += p
		}
		if math.Abs(total-1.0) > 0.01 {
			t.Fatalf("genre_preferences suma %v", total)
		}
	})

	t.Run("muestreo sin canal repetido y score del género real", func(t *testing.T) {
		schedules, programs := patternFixture()
		rng := &stubSource{
			floats: []float64{0.05, 0.2, 0.45, 0.6, 0.8, 0.95},
			ints:   []int{0, 1},
		}
		svc := newPatternService(schedules, programs, &stubLogs{}, rng)

		got, err := svc.Recommendations(context.Background(), user, "2026-08-31", "20:00")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if len(got.Recommendations) == 0 {
			t.Fatal("sin recomendaciones")
		}
		if len(got.Recommendations) > 6 {
			t.Fatalf("len = %d, más que la franja", len(got.Recommendations))
		}

		probs := Normalize(svc.prefs.GenreWeights(user))

		seen := make(map[string]bool)
		for i, rec := range got.Recommendations {
			if seen[rec.Channel] {
				t.Fatalf("canal %s repetido", rec.Channel)
			}
			seen[rec.Channel] = true

			// el score corresponde al género del programa elegido, no al
			// género extraído (el fallback puede sustituirlo)
			if math.Abs(rec.Score-probs[rec.Genre]) > 1e-9 {
				t.Errorf("score[%s] = %v, quiero %v", rec.Genre, rec.Score, probs[rec.Genre])
			}

			if i > 0 && got.Recommendations[i-1].Score < rec.Score {
				t.Error("recomendaciones sin ordenar por score desc")
			}
		}
	})
}

func TestThumbnailURL(t *testing.T) {
	_, programs := patternFixture()
	programs.withAsset = map[string][]models.ProgramDoc{
		"예능": {{Pk: 9, GenreKo: "예능", AssetPk: intPtr(7)}},
	}
	assets := &stubAssets{byPk: map[int]models.AssetDoc{
		4: {Pk: 4, URL: "https://cdn/drama.jpg"},
		7: {Pk: 7, URL: "https://cdn/variety.jpg"},
	}}
	prefs := NewPreferenceService(&stubLogs{}, programs)
	svc := NewPatternService(&stubSchedules{}, programs, assets, &stubLogs{}, prefs, &stubSource{})

	t.Run("asset propio", func(t *testing.T) {
		url, err := svc.thumbnailURL(context.Background(), programs.byPk[2])
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if url == nil || *url != "https://cdn/drama.jpg" {
			t.Fatalf("url = %v", url)
		}
	})

	t.Run("fallback a otro programa del mismo género", func(t *testing.T) {
		url, err := svc.thumbnailURL(context.Background(), programs.byPk[3])
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if url == nil || *url != "https://cdn/variety.jpg" {
			t.Fatalf("url = %v", url)
		}
	})

	t.Run("género sin assets", func(t *testing.T) {
		url, err := svc.thumbnailURL(context.Background(), programs.byPk[1])
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if url != nil {
			t.Fatalf("url = %v, quiero null", *url)
		}
	})
}
