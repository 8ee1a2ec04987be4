package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	CtxUserID   ctxKey = "userId"
	CtxUserRole ctxKey = "role"
)

func parseToken(secret []byte, tokenStr string) (int, string, bool) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	subVal, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", false
	}
	role, _ := claims["role"].(string)
	return int(subVal), role, true
}

// JWTAuth devuelve un middleware que valida el token JWT y mete userId y
// role en el contexto. Sin token válido no se pasa.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing or invalid Authorization header", http.StatusUnauthorized)
				return
			}

			userID, role, ok := parseToken(secretBytes, strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			ctx = context.WithValue(ctx, CtxUserRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// JWTOptional: igual que JWTAuth pero sin header pasa como anónimo
// (userId 0). Un token presente pero inválido sigue siendo 401: nunca se
// degrada en silencio a anónimo.
func JWTOptional(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
				return
			}

			userID, role, ok := parseToken(secretBytes, strings.TrimPrefix(authHeader, "Bearer "))
			if !ok {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			ctx = context.WithValue(ctx, CtxUserRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext helper para sacar el userId del contexto (0 = anónimo).
func UserIDFromContext(ctx context.Context) int {
	if v := ctx.Value(CtxUserID); v != nil {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
