package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
)

// authenticated pulls the caller's claims and returns a request-scoped logger tagged with them.
// It writes a 401 and returns false when the route was reached without authentication.
func authenticated(w http.ResponseWriter, r *http.Request) (*models.Claims, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized request: missing user claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

func pageParams(r *http.Request) (int, int) {

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	return page, pageSize
}
