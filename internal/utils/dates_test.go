package utils_test

import (
	"testing"
	"time"

	"github.com/aqarerp/backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("plain calendar date", func(t *testing.T) {
		got, err := utils.ParseDate("2025-06-15")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC3339 timestamp", func(t *testing.T) {
		got, err := utils.ParseDate("2025-06-15T10:30:00Z")
		assert.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, s := range []string{"", "15/06/2025", "June 15, 2025", "2025-13-40"} {
			_, err := utils.ParseDate(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}
