package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dsikeres1/innopia/internal/models"
	"github.com/dsikeres1/innopia/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	UserID     int    `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	Age        string `json:"age"`
	Occupation string `json:"occupation"`
	Zip        string `json:"zip"`
	CreatedAt  string `json:"createdAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:     u.UserID,
		Email:      u.Email,
		Role:       u.Role,
		Gender:     u.Gender,
		Age:        u.Age,
		Occupation: u.Occupation,
		Zip:        u.Zip,
		CreatedAt:  u.CreatedAt,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	Gender     string `json:"gender"`
	Age        string `json:"age"`
	Occupation string `json:"occupation"`
	Zip        string `json:"zip"`
}

// @Summary Register
// @Description Crea un usuario nuevo con sus atributos demográficos
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Email:      req.Email,
		Password:   req.Password,
		Gender:     req.Gender,
		Age:        req.Age,
		Occupation: req.Occupation,
		Zip:        req.Zip,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

// @Summary Listar ids de usuario
// @Description Listado público para la pantalla de selección de usuario demo
// @Tags auth
// @Produce json
// @Success 200 {array} int
// @Router /users [get]
func (h *AuthHandler) ListUserIDs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ids, err := h.svc.ListUserIDs(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []int{}
	}
	_ = json.NewEncoder(w).Encode(ids)
}
