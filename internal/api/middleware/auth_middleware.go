package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

var (
	errMissingToken   = errors.New("Authorization header is required")
	errMalformedToken = errors.New("Invalid authorization format")
)

// AuthMiddleware verifies HS256 bearer tokens issued by the user service.
type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		raw, err := bearerToken(r)
		if err != nil {
			logger.Warn("Rejected request without usable credentials", slog.String("error", err.Error()))
			response.Error(w, appErrors.UnauthorizedError(err.Error()))
			return
		}

		claims, err := m.parse(raw)
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			return
		}

		scoped := logger.With(
			slog.String("userId", claims.UserID.String()),
			slog.String("role", string(claims.Role)),
		)

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = context.WithValue(ctx, LoggerKey, scoped)

		scoped.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) parse(raw string) (*models.Claims, error) {

	claims := &models.Claims{}

	_, err := m.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.jwtKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims.UserID == uuid.Nil {
		return nil, errors.New("token carries no user id")
	}

	return claims, nil
}

// bearerToken reads "Authorization: Bearer <token>". Browsers cannot set
// headers on a websocket handshake, so upgrades may pass ?access_token=.
func bearerToken(r *http.Request) (string, error) {

	header := r.Header.Get("Authorization")

	if header == "" {
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			if token := r.URL.Query().Get("access_token"); token != "" {
				return token, nil
			}
		}
		return "", errMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", errMalformedToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMalformedToken
	}

	return token, nil
}
