package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/dsikeres1/innopia/internal/models"
)

// Géneros de la parrilla (claves del mapa de pesos, mismas etiquetas
// que programs.genreKo).
var baseGenres = []string{"뉴스", "드라마", "예능", "영화", "스포츠", "다큐", "애니", "음악", "홈쇼핑", "시사"}

type viewingLogReader interface {
	GetAllByUser(ctx context.Context, userID int) ([]models.ViewingLogDoc, error)
}

type programBatchReader interface {
	GetByPks(ctx context.Context, pks []int) (map[int]models.ProgramDoc, error)
}

// PreferenceService calcula la afinidad por género de un usuario:
// priors demográficos + frecuencia observada en su historial. Nunca se
// persiste, se deriva en cada llamada.
type PreferenceService struct {
	logs     viewingLogReader
	programs programBatchReader
}

func NewPreferenceService(logs viewingLogReader, programs programBatchReader) *PreferenceService {
	return &PreferenceService{logs: logs, programs: programs}
}

// parseAgeGroup bucketiza el string de edad del CSV en 7 grupos ordinales.
// "56+" o cualquier cosa no parseable cae en el grupo 7.
func parseAgeGroup(age string) int {
	if age == "56+" {
		return 7
	}
	if strings.Contains(age, "-") {
		parts := strings.SplitN(age, "-", 2)
		high, err := strconv.Atoi(parts[1])
		if err == nil {
			switch {
			case high <= 17:
				return 1
			case high <= 24:
				return 2
			case high <= 34:
				return 3
			case high <= 44:
				return 4
			case high <= 49:
				return 5
			case high <= 55:
				return 6
			}
		}
	}
	return 7
}

// GenreWeights devuelve los pesos base (1.0) más los boosts demográficos
// y de ocupación. Determinista: mismos atributos, mismos pesos.
func (s *PreferenceService) GenreWeights(u models.UserDoc) map[string]float64 {
	weights := make(map[string]float64, len(baseGenres))
	for _, g := range baseGenres {
		weights[g] = 1.0
	}

	switch group := parseAgeGroup(u.Age); {
	case group == 1:
		for _, g := range []string{"애니", "예능", "스포츠"} {
			weights[g] += 3
		}
	case group == 2:
		for _, g := range []string{"예능", "드라마", "음악", "영화"} {
			weights[g] += 2
		}
	case group == 3:
		for _, g := range []string{"드라마", "예능", "뉴스", "영화"} {
			weights[g] += 2
		}
	case group == 4:
		for _, g := range []string{"뉴스", "시사", "드라마", "다큐"} {
			weights[g] += 2
		}
	case group >= 5:
		for _, g := range []string{"뉴스", "다큐", "영화"} {
			weights[g] += 3
		}
	}

	occ := strings.ToLower(u.Occupation)
	if strings.Contains(occ, "scientist") || strings.Contains(occ, "doctor") || strings.Contains(occ, "educator") {
		for _, g := range []string{"다큐", "뉴스"} {
			weights[g] += 3
		}
	}
	if strings.Contains(occ, "artist") || strings.Contains(occ, "entertainment") || strings.Contains(occ, "writer") {
		for _, g := range []string{"예능", "음악", "영화"} {
			weights[g] += 3
		}
	}
	if strings.Contains(occ, "student") {
		for _, g := range []string{"애니", "예능", "음악"} {
			weights[g] += 3
		}
	}
	if strings.Contains(occ, "retired") {
		for _, g := range []string{"뉴스", "다큐", "영화"} {
			weights[g] += 3
		}
	}

	return weights
}

// HistoryGenrePreference devuelve la distribución empírica de géneros del
// historial del usuario (mapa vacío si no hay historial).
func (s *PreferenceService) HistoryGenrePreference(ctx context.Context, userID int) (map[string]float64, error) {
	logs, err := s.logs.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return map[string]float64{}, nil
	}

	pks := make([]int, 0, len(logs))
	for _, l := range logs {
		pks = append(pks, l.ProgramPk)
	}
	programs, err := s.programs.GetByPks(ctx, pks)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	total := 0
	for _, l := range logs {
		p, ok := programs[l.ProgramPk]
		if !ok {
			continue
		}
		counts[p.GenreKo]++
		total++
	}
	if total == 0 {
		return map[string]float64{}, nil
	}

	out := make(map[string]float64, len(counts))
	for g, c := range counts {
		out[g] = float64(c) / float64(total)
	}
	return out, nil
}

// CombinedGenreWeights suma el prior demográfico y la frecuencia histórica
// escalada ×5. Sin historial equivale a GenreWeights.
func (s *PreferenceService) CombinedGenreWeights(ctx context.Context, u models.UserDoc) (map[string]float64, error) {
	weights := s.GenreWeights(u)
	hist, err := s.HistoryGenrePreference(ctx, u.UserID)
	if err != nil {
		return nil, err
	}

	for g := range weights {
		weights[g] += hist[g] * 5
	}
	return weights, nil
}

// Normalize convierte un mapa de pesos en una distribución de probabilidad.
func Normalize(weights map[string]float64) map[string]float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	probs := make(map[string]float64, len(weights))
	if total == 0 {
		return probs
	}
	for g, w := range weights {
		probs[g] = w / total
	}
	return probs
}
