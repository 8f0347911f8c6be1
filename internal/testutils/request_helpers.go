// Package testutils builds requests that look like they already went
// through the logging and auth middleware.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/google/uuid"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func CustomerClaims(userID uuid.UUID) *models.Claims {
	return &models.Claims{UserID: userID, Email: "customer@example.com", Role: models.RoleCustomer}
}

func OwnerClaims(userID, shopID uuid.UUID) *models.Claims {
	return &models.Claims{UserID: userID, Email: "owner@example.com", Role: models.RoleShopOwner, ShopID: shopID}
}

func AdminClaims(userID uuid.UUID) *models.Claims {
	return &models.Claims{UserID: userID, Email: "admin@example.com", Role: models.RoleAdmin}
}

// WithClaims returns ctx carrying claims and a silent logger.
func WithClaims(ctx context.Context, claims *models.Claims) context.Context {
	ctx = context.WithValue(ctx, middleware.LoggerKey, discardLogger)
	if claims != nil {
		ctx = context.WithValue(ctx, middleware.UserContextKey, claims)
	}
	return ctx
}

// CreateTestRequestWithContext authenticates the request as a customer.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	return CreateTestRequestWithClaims(method, target, body, CustomerClaims(userID), pathParams)
}

func CreateTestRequestWithClaims(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	return req.WithContext(WithClaims(req.Context(), claims))
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := newRequest(method, target, body, pathParams)
	return req.WithContext(WithClaims(req.Context(), nil))
}

func newRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}
	return req
}
