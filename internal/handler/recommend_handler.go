package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dsikeres1/innopia/internal/models"
	"github.com/dsikeres1/innopia/internal/service"

	"github.com/go-chi/chi/v5"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones para una película seed
// @Description Con token usa predicciones personalizadas, anónimo usa similitud
// @Tags recommend
// @Produce json
// @Param pk path int true "pk TMDB de la película seed"
// @Param top_n query int false "cantidad (default 10, máx 50)"
// @Success 200 {object} models.MovieRecommendation
// @Failure 404 {object} map[string]string
// @Router /ott/movies/{pk}/recommend [get]
func (h *RecommendHandler) MovieRecommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	moviePk, _ := strconv.Atoi(chi.URLParam(r, "pk"))
	topN, _ := strconv.Atoi(r.URL.Query().Get("top_n"))
	userID := UserIDFromContext(r.Context())

	movies, err := h.svc.MovieRecommend(r.Context(), userID, moviePk, topN)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(models.MovieRecommendation{RecommendedMovies: movies})
}

// @Summary Recomendación a partir del historial del usuario
// @Description Elige un favorito bajando el umbral de rating de 5.0 a 0.1
// @Tags recommend
// @Produce json
// @Param top_n query int false "cantidad (default 10, máx 50)"
// @Success 200 {object} models.UserMovieRecommendation
// @Security BearerAuth
// @Router /me/ott/recommend [get]
func (h *RecommendHandler) UserMovieRecommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	topN, _ := strconv.Atoi(r.URL.Query().Get("top_n"))
	userID := UserIDFromContext(r.Context())

	rec, err := h.svc.UserMovieRecommend(r.Context(), userID, topN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rec)
}

// @Summary Varias recomendaciones desde el historial
// @Description Repite el protocolo con un set de exclusión de seeds compartido
// @Tags recommend
// @Produce json
// @Param count query int false "rondas (default 3)"
// @Param top_n query int false "cantidad por ronda (default 20, máx 50)"
// @Success 200 {object} models.UserMovieRecommendationMultiple
// @Security BearerAuth
// @Router /me/ott/recommend/multiple [get]
func (h *RecommendHandler) UserMovieRecommendMultiple(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	topN, _ := strconv.Atoi(r.URL.Query().Get("top_n"))
	userID := UserIDFromContext(r.Context())

	recs, err := h.svc.UserMovieRecommendMultiple(r.Context(), userID, count, topN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(models.UserMovieRecommendationMultiple{Recommendations: recs})
}

// @Summary Historial de recomendaciones servidas
// @Tags recommend
// @Produce json
// @Success 200 {array} models.Recommendation
// @Security BearerAuth
// @Router /me/ott/recommend/history [get]
func (h *RecommendHandler) History(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	recs, err := h.svc.History(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(recs)
}
