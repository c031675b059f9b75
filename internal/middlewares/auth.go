package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/townlink/internal/jwt"
	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter resolves the token subject to an account.
type UserGetter interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and stores its claims
// in the request context. A missing token yields 401. A malformed header, an invalid or
// expired token, or an unknown subject yields 403.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrTokenMissing) {
				log.Warnw("authorization failed", "err", err)
				writeJSONMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeJSONMessage(w, http.StatusForbidden, "Invalid token.")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeJSONMessage(w, http.StatusForbidden, "Invalid token.")
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil {
				log.Errorw("failed to load token subject", "user_id", claims.UserID, "err", err)
				writeJSONMessage(w, http.StatusInternalServerError, "Internal server error.")
				return
			}
			if user == nil {
				log.Warnw("authorization failed", "err", "unknown subject", "user_id", claims.UserID)
				writeJSONMessage(w, http.StatusForbidden, "Invalid token.")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.ContextWithClaims(ctx, claims)))
		})
	}
}
