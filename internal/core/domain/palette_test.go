package domain_test

import (
	"strings"
	"testing"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorForText(t *testing.T) {
	t.Run("Empty text has no color", func(t *testing.T) {
		_, ok := domain.ColorForText("   ")
		assert.False(t, ok)
	})

	t.Run("Known hashes", func(t *testing.T) {
		// "a" = 97, "ab" = 97*31 + 98 = 3105.
		assert.Equal(t, int32(97), domain.TextHash("a"))
		assert.Equal(t, int32(3105), domain.TextHash("ab"))
		assert.Equal(t, 7, domain.PaletteIndex("a"))
		assert.Equal(t, 5, domain.PaletteIndex("ab"))

		c, ok := domain.ColorForText("ab")
		require.True(t, ok)
		assert.Equal(t, "red", c.Name)
	})

	t.Run("Case and surrounding space are ignored", func(t *testing.T) {
		a, _ := domain.ColorForText("Gym")
		b, _ := domain.ColorForText("  gYM ")
		assert.Equal(t, a, b)
	})

	t.Run("Long text wraps into a valid index", func(t *testing.T) {
		long := strings.Repeat("weekly planner ", 200)
		idx := domain.PaletteIndex(long)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, domain.PaletteSize())
		assert.Equal(t, idx, domain.PaletteIndex(long), "Hash must be deterministic")
	})

	t.Run("Non-ASCII text hashes over UTF-16 units", func(t *testing.T) {
		_, ok := domain.ColorForText("Çarşamba 🏃")
		assert.True(t, ok)
	})
}
