package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dsikeres1/innopia/internal/models"
	"github.com/dsikeres1/innopia/internal/service"

	"github.com/gorilla/websocket"
)

type PatternHandler struct {
	svc  *service.PatternService
	auth *service.AuthService
}

func NewPatternHandler(s *service.PatternService, auth *service.AuthService) *PatternHandler {
	return &PatternHandler{svc: s, auth: auth}
}

type patternScheduleResponse struct {
	Programs []models.ScheduleProgram `json:"programs"`
}

// @Summary Parrilla de un día
// @Tags pattern
// @Produce json
// @Param day query string true "día (월요일, 화요일, ...)"
// @Success 200 {object} patternScheduleResponse
// @Router /pattern/schedule [get]
func (h *PatternHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	programs, err := h.svc.Schedule(r.Context(), r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if programs == nil {
		programs = []models.ScheduleProgram{}
	}
	_ = json.NewEncoder(w).Encode(patternScheduleResponse{Programs: programs})
}

type viewingHistoryResponse struct {
	Logs []models.ViewingHistoryLog `json:"logs"`
}

// @Summary Historial de visionado del trimestre
// @Tags pattern
// @Produce json
// @Param quarter query string true "Q1..Q4"
// @Success 200 {object} viewingHistoryResponse
// @Security BearerAuth
// @Router /me/pattern/viewing-history [get]
func (h *PatternHandler) ViewingHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	logs, err := h.svc.ViewingHistory(r.Context(), userID, r.URL.Query().Get("quarter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if logs == nil {
		logs = []models.ViewingHistoryLog{}
	}
	_ = json.NewEncoder(w).Encode(viewingHistoryResponse{Logs: logs})
}

// @Summary Recomendación de parrilla
// @Description Muestreo ponderado por afinidad de género, sin repetir canal
// @Tags pattern
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Success 200 {object} models.PatternRecommendations
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /me/pattern/recommendations [get]
func (h *PatternHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	res, err := h.recommend(r)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateTime):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

func (h *PatternHandler) recommend(r *http.Request) (*models.PatternRecommendations, error) {
	userID := UserIDFromContext(r.Context())
	user, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	date := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	return h.svc.Recommendations(r.Context(), *user, date, timeStr)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendación de parrilla en tiempo real (WebSocket)
// @Tags pattern
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /me/pattern/ws/recommendations [get]
func (h *PatternHandler) RecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando afinidad de género…",
	})

	res, err := h.recommend(r)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":              "genre_preferences",
		"genre_preferences": res.GenrePreferences,
	})

	conn.WriteJSON(map[string]any{
		"type":            "recommendations",
		"recommendations": res.Recommendations,
		"generatedAt":     time.Now(),
	})
}
