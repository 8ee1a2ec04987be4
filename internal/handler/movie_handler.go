package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dsikeres1/innopia/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Listado de películas
// @Tags ott
// @Produce json
// @Param limit query int false "límite (default 20)"
// @Param offset query int false "offset"
// @Success 200 {object} models.MovieList
// @Router /ott/movies [get]
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	res, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// @Summary Detalle de película
// @Tags ott
// @Produce json
// @Param pk path int true "pk TMDB"
// @Success 200 {object} models.MovieDetail
// @Failure 404 {object} map[string]string
// @Router /ott/movies/{pk} [get]
func (h *MovieHandler) Detail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	pk, _ := strconv.Atoi(chi.URLParam(r, "pk"))

	res, err := h.svc.Detail(r.Context(), pk)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}
