package models_test

import (
	"encoding/json"
	"testing"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("Clamps Page", func(t *testing.T) {
		page := models.NewPage([]int{1, 2}, 7, 0)

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.PageSize)
		assert.Equal(t, 7, page.Total)
	})

	t.Run("Nil Items Encode As Empty List", func(t *testing.T) {
		page := models.NewPage[string](nil, 0, 3)

		raw, err := json.Marshal(page)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[],"total":0,"page":3,"pageSize":0}`, string(raw))
	})
}
