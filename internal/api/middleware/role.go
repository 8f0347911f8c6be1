package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
)

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

// RequireRole must run after Authenticate. Admins pass every role check.
func RequireRole(next http.Handler, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Role check without authenticated user")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		if claims.IsAdmin() || slices.Contains(roles, claims.Role) {
			next.ServeHTTP(w, r)
			return
		}

		logger.Warn("Role not permitted", slog.String("role", string(claims.Role)))
		response.Error(w, errors.ForbiddenError("You do not have access to this resource"))
	}
}
