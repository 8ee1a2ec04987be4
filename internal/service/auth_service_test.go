package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dsikeres1/innopia/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type stubUsers struct {
	byEmail map[string]models.UserDoc
	nextID  int
}

func (s *stubUsers) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	if u, ok := s.byEmail[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *stubUsers) FindByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	for _, u := range s.byEmail {
		if u.UserID == userID {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) GetNextUserID(ctx context.Context) (int, error) {
	s.nextID++
	return s.nextID, nil
}

func (s *stubUsers) Insert(ctx context.Context, u *models.UserDoc) error {
	if s.byEmail == nil {
		s.byEmail = make(map[string]models.UserDoc)
	}
	s.byEmail[u.Email] = *u
	return nil
}

func (s *stubUsers) ListIDs(ctx context.Context) ([]int, error) {
	ids := []int{}
	for _, u := range s.byEmail {
		ids = append(ids, u.UserID)
	}
	return ids, nil
}

func TestRegister(t *testing.T) {
	users := &stubUsers{}
	svc := NewAuthService(users, "secreto")

	u, err := svc.Register(context.Background(), RegisterUserData{
		Email:      "ana@innopia.dev",
		Password:   "demo1234",
		Gender:     "Female",
		Age:        "25-34",
		Occupation: "Scientist",
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if u.UserID != 1 || u.Role != "user" {
		t.Errorf("usuario = id %d rol %q", u.UserID, u.Role)
	}
	if u.PasswordHash == "demo1234" {
		t.Error("la contraseña quedó en claro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("demo1234")); err != nil {
		t.Errorf("el hash no verifica: %v", err)
	}

	// email duplicado
	if _, err := svc.Register(context.Background(), RegisterUserData{Email: "ana@innopia.dev", Password: "x"}); err == nil {
		t.Fatal("registro duplicado sin error")
	}
}

func TestLogin(t *testing.T) {
	users := &stubUsers{}
	svc := NewAuthService(users, "secreto")

	if _, err := svc.Register(context.Background(), RegisterUserData{Email: "ana@innopia.dev", Password: "demo1234"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	t.Run("credenciales válidas", func(t *testing.T) {
		token, u, err := svc.Login(context.Background(), "ana@innopia.dev", "demo1234")
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if u.UserID != 1 {
			t.Errorf("user id = %d", u.UserID)
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			return []byte("secreto"), nil
		})
		if err != nil || !parsed.Valid {
			t.Fatalf("token inválido: %v", err)
		}
		claims := parsed.Claims.(jwt.MapClaims)
		if sub, ok := claims["sub"].(float64); !ok || int(sub) != 1 {
			t.Errorf("sub = %v, quiero 1", claims["sub"])
		}
		if claims["role"] != "user" {
			t.Errorf("role = %v", claims["role"])
		}
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		if _, _, err := svc.Login(context.Background(), "ana@innopia.dev", "otra"); err == nil {
			t.Fatal("login con contraseña mala sin error")
		}
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		if _, _, err := svc.Login(context.Background(), "nadie@innopia.dev", "demo1234"); err == nil {
			t.Fatal("login de usuario inexistente sin error")
		}
	})
}

func TestGetUser(t *testing.T) {
	users := &stubUsers{byEmail: map[string]models.UserDoc{
		"ana@innopia.dev": {UserID: 3, Email: "ana@innopia.dev"},
	}}
	svc := NewAuthService(users, "secreto")

	u, err := svc.GetUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if u.Email != "ana@innopia.dev" {
		t.Errorf("email = %q", u.Email)
	}

	if _, err := svc.GetUser(context.Background(), 99); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, quiero ErrUserNotFound", err)
	}
}
