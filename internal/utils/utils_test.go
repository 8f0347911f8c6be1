package utils_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Fresh milk", utils.Sanitize("  <b>Fresh</b> milk<script>alert(1)</script> "))
	assert.Equal(t, "plain", utils.Sanitize("plain"))

	assert.Nil(t, utils.SanitizePtr(nil))
	in := "<i>closed</i> today"
	assert.Equal(t, "closed today", *utils.SanitizePtr(&in))
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetPathValue("id", id.String())

	got, err := utils.PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req.SetPathValue("id", "nope")
	_, err = utils.PathUUID(req, "id")

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	assert.Equal(t, "Invalid id format", appErr.Message)
}

type sample struct {
	Name    string `json:"name" validate:"required"`
	Charge  int    `json:"delivery_charge" validate:"gte=0"`
	Comment string `json:"-"`
}

func TestParseAndValidate(t *testing.T) {
	validate := utils.NewValidator()

	tests := []struct {
		name     string
		body     string
		expected bool
		status   int
		code     string
		detail   string
	}{
		{name: "Valid", body: `{"name":"Ravi"}`, expected: true, status: http.StatusOK},
		{name: "Empty Body", body: ``, status: http.StatusBadRequest, code: appErrors.ErrCodeBadRequest},
		{name: "Malformed JSON", body: `{"name":`, status: http.StatusBadRequest, code: appErrors.ErrCodeBadRequest},
		{name: "Trailing Object", body: `{"name":"a"}{"name":"b"}`, status: http.StatusBadRequest, code: appErrors.ErrCodeBadRequest},
		{name: "Missing Field", body: `{}`, status: http.StatusBadRequest, code: appErrors.ErrCodeValidation, detail: "Field name is required"},
		{name: "Negative Charge", body: `{"name":"Ravi","delivery_charge":-5}`, status: http.StatusBadRequest, code: appErrors.ErrCodeValidation, detail: "Field delivery_charge must be 0 or more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dest sample
			ok := utils.ParseAndValidate(req, rr, &dest, validate)

			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, tt.status, rr.Code)

			if tt.expected {
				assert.Equal(t, "Ravi", dest.Name)
				return
			}

			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			if tt.detail != "" {
				assert.Contains(t, resp.Error.Details, tt.detail)
			}
		})
	}
}

func TestDecodeJSONBody_TooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()

	var dest sample
	err := utils.DecodeJSONBody(rr, req, &dest)

	assert.ErrorContains(t, err, "must not exceed")
}

func TestWithDBTimeout(t *testing.T) {
	t.Run("Applies Default", func(t *testing.T) {
		ctx, cancel := utils.WithDBTimeout(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(utils.DefaultDBTimeout), deadline, time.Second)
	})

	t.Run("Keeps Tighter Deadline", func(t *testing.T) {
		parent, cancelParent := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancelParent()

		ctx, cancel := utils.WithDBTimeout(parent)
		defer cancel()

		parentDeadline, _ := parent.Deadline()
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, parentDeadline, deadline)
	})
}
