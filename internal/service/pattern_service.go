package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/dsikeres1/innopia/internal/models"
	"github.com/dsikeres1/innopia/internal/random"
)

// máximo de extracciones por llamada de recomendación de parrilla
const maxScheduleDraws = 30

var weekdayNames = []string{"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일"}

type scheduleReader interface {
	GetByDay(ctx context.Context, dayOfWeek string) ([]models.ScheduleDoc, error)
	GetByDayAndTime(ctx context.Context, dayOfWeek, timeStr string) ([]models.ScheduleDoc, error)
}

type programReader interface {
	GetByPks(ctx context.Context, pks []int) (map[int]models.ProgramDoc, error)
	GetWithAssetByGenre(ctx context.Context, genreKo string, excludePk int) ([]models.ProgramDoc, error)
}

type assetReader interface {
	GetByPk(ctx context.Context, pk int) (*models.AssetDoc, error)
}

type patternLogReader interface {
	GetByUserAndQuarter(ctx context.Context, userID int, quarter string) ([]models.ViewingLogDoc, error)
}

// PatternService sirve la parrilla de TV, el historial de visionado y la
// recomendación por muestreo ponderado de géneros con deduplicación de
// canales.
type PatternService struct {
	schedules scheduleReader
	programs  programReader
	assets    assetReader
	logs      patternLogReader
	prefs     *PreferenceService
	rng       random.Source
}

func NewPatternService(
	schedules scheduleReader,
	programs programReader,
	assets assetReader,
	logs patternLogReader,
	prefs *PreferenceService,
	rng random.Source,
) *PatternService {
	return &PatternService{
		schedules: schedules,
		programs:  programs,
		assets:    assets,
		logs:      logs,
		prefs:     prefs,
		rng:       rng,
	}
}

// Schedule lista la parrilla completa de un día.
func (s *PatternService) Schedule(ctx context.Context, day string) ([]models.ScheduleProgram, error) {
	schedules, err := s.schedules.GetByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	programs, err := s.fetchPrograms(ctx, schedules)
	if err != nil {
		return nil, err
	}

	out := make([]models.ScheduleProgram, 0, len(schedules))
	for _, sc := range schedules {
		p, ok := programs[sc.ProgramPk]
		if !ok {
			continue
		}
		out = append(out, models.ScheduleProgram{
			Channel:     sc.Channel,
			Time:        sc.Time,
			ProgramName: p.NameKo,
			Genre:       p.GenreKo,
		})
	}
	return out, nil
}

// ViewingHistory lista el historial del trimestre ordenado por fecha/hora.
func (s *PatternService) ViewingHistory(ctx context.Context, userID int, quarter string) ([]models.ViewingHistoryLog, error) {
	logs, err := s.logs.GetByUserAndQuarter(ctx, userID, quarter)
	if err != nil {
		return nil, err
	}

	pks := make([]int, 0, len(logs))
	for _, l := range logs {
		pks = append(pks, l.ProgramPk)
	}
	programs, err := s.programs.GetByPks(ctx, pks)
	if err != nil {
		return nil, err
	}

	out := make([]models.ViewingHistoryLog, 0, len(logs))
	for _, l := range logs {
		p, ok := programs[l.ProgramPk]
		if !ok {
			continue
		}
		out = append(out, models.ViewingHistoryLog{
			Date:        l.ViewDate,
			Time:        l.ViewTime,
			Channel:     l.Channel,
			ProgramName: p.NameKo,
			Genre:       p.GenreKo,
		})
	}
	return out, nil
}

// Recommendations: muestreo aleatorio ponderado por la afinidad de género
// del usuario sobre la franja (fecha, hora), sin repetir canal. A
// diferencia de las recomendaciones de película no es un top-N
// determinista: el espacio de franjas es plano y la variedad entre
// llamadas es objetivo del producto.
func (s *PatternService) Recommendations(ctx context.Context, user models.UserDoc, date, timeStr string) (*models.PatternRecommendations, error) {
	weights, err := s.prefs.CombinedGenreWeights(ctx, user)
	if err != nil {
		return nil, err
	}
	probs := Normalize(weights)

	base, err := time.Parse("2006-01-02 15:04", date+" "+timeStr)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	// time.Weekday arranca en domingo; la parrilla usa lunes como día 0
	dayName := weekdayNames[(int(base.Weekday())+6)%7]

	// genre_preferences se devuelve siempre, haya o no candidatos
	genrePrefs := make(map[string]float64, len(probs))
	for g, p := range probs {
		genrePrefs[g] = math.Round(p*10000) / 10000
	}

	schedules, err := s.schedules.GetByDayAndTime(ctx, dayName, timeStr)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return &models.PatternRecommendations{
			Recommendations:  []models.PatternRecommendation{},
			GenrePreferences: genrePrefs,
		}, nil
	}

	programs, err := s.fetchPrograms(ctx, schedules)
	if err != nil {
		return nil, err
	}

	// claves ordenadas para que el muestreo sea reproducible con una
	// fuente inyectada
	genreNames := make([]string, 0, len(probs))
	for g := range probs {
		genreNames = append(genreNames, g)
	}
	sort.Strings(genreNames)
	genreProbs := make([]float64, len(genreNames))
	for i, g := range genreNames {
		genreProbs[i] = probs[g]
	}

	draws := maxScheduleDraws
	if len(schedules) < draws {
		draws = len(schedules)
	}
	chosen := random.WeightedSample(s.rng, genreProbs, draws)

	recommendations := []models.PatternRecommendation{}
	usedChannels := make(map[string]bool)

	for _, gi := range chosen {
		genre := genreNames[gi]

		candidates := make([]models.ScheduleDoc, 0, len(schedules))
		for _, sc := range schedules {
			p, ok := programs[sc.ProgramPk]
			if ok && p.GenreKo == genre && !usedChannels[sc.Channel] {
				candidates = append(candidates, sc)
			}
		}
		if len(candidates) == 0 {
			// segunda opción: cualquier canal libre sin filtrar género
			for _, sc := range schedules {
				if !usedChannels[sc.Channel] {
					candidates = append(candidates, sc)
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}

		sel := candidates[random.Pick(s.rng, len(candidates))]
		usedChannels[sel.Channel] = true

		program := programs[sel.ProgramPk]
		// el score sale del género REAL del programa elegido: el fallback
		// puede haber sustituido el género extraído
		score := probs[program.GenreKo]

		thumbnail, err := s.thumbnailURL(ctx, program)
		if err != nil {
			return nil, err
		}

		recommendations = append(recommendations, models.PatternRecommendation{
			Channel:      sel.Channel,
			ProgramName:  program.NameKo,
			Genre:        program.GenreKo,
			Score:        score,
			ThumbnailURL: thumbnail,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return &models.PatternRecommendations{
		Recommendations:  recommendations,
		GenrePreferences: genrePrefs,
	}, nil
}

// thumbnailURL resuelve el thumbnail en dos pasos explícitos: el asset
// propio del programa, y si no tiene, el de un programa aleatorio del
// mismo género.
func (s *PatternService) thumbnailURL(ctx context.Context, p models.ProgramDoc) (*string, error) {
	if p.AssetPk != nil {
		asset, err := s.assets.GetByPk(ctx, *p.AssetPk)
		if err != nil {
			return nil, err
		}
		if asset != nil {
			return &asset.URL, nil
		}
		return nil, nil
	}

	candidates, err := s.programs.GetWithAssetByGenre(ctx, p.GenreKo, p.Pk)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sel := candidates[random.Pick(s.rng, len(candidates))]
	if sel.AssetPk == nil {
		return nil, nil
	}
	asset, err := s.assets.GetByPk(ctx, *sel.AssetPk)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return &asset.URL, nil
}

func (s *PatternService) fetchPrograms(ctx context.Context, schedules []models.ScheduleDoc) (map[int]models.ProgramDoc, error) {
	pks := make([]int, 0, len(schedules))
	for _, sc := range schedules {
		pks = append(pks, sc.ProgramPk)
	}
	return s.programs.GetByPks(ctx, pks)
}
