package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/copp1723/lane-google-sub002/internal/http/api"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const userKey key = 1

// AuthMiddleware validates the bearer token and stores the caller's user id
// in the request context. Account-level role checks happen in the services,
// against account_users.
func AuthMiddleware(next http.Handler) http.Handler {
	secret := os.Getenv("JWT_SECRET")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")

		if tokenString == "" {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing authorization header"))
			return
		}

		tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

		userID, ok := validateToken(tokenString, secret)
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), userKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey).(string)
	return id
}

// WithUserID is a test helper mirroring what AuthMiddleware stores.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

func validateToken(tokenString, secret string) (string, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return "", false
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return "", false
		}
		return userID, true
	}

	return "", false
}
