package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dsikeres1/innopia/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, userID int) (*models.UserDoc, error)
	GetNextUserID(ctx context.Context) (int, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	ListIDs(ctx context.Context) ([]int, error)
}

type AuthService struct {
	users     userRepository
	jwtSecret []byte
}

type RegisterUserData struct {
	Email    string
	Password string

	Gender     string
	Age        string
	Occupation string
	Zip        string
}

func NewAuthService(users userRepository, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// Register crea un usuario nuevo con los atributos demográficos que usa
// el modelo de preferencias.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	existing, err := s.users.FindByEmail(ctx, data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.UserDoc{
		UserID:       nextID,
		Email:        data.Email,
		PasswordHash: string(hash),
		Role:         "user",

		Gender:     data.Gender,
		Age:        data.Age,
		Occupation: data.Occupation,
		Zip:        data.Zip,

		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.UserID,
		"role": u.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// GetUser resuelve el usuario autenticado (colaborador de resolución de
// usuario para los servicios de recomendación).
func (s *AuthService) GetUser(ctx context.Context, userID int) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ListUserIDs: listado público de ids (pantalla de selección de usuario demo).
func (s *AuthService) ListUserIDs(ctx context.Context) ([]int, error) {
	return s.users.ListIDs(ctx)
}
