package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_CanonicalDisplayBijection(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories {
		label := c.DisplayName()
		require.NotEmpty(t, label)
		assert.False(t, seen[label], "display name %q must be unique", label)
		seen[label] = true

		back, ok := ParseDisplayName(label)
		require.True(t, ok)
		assert.Equal(t, c, back)

		canonical, ok := ParseCategory(c.String())
		require.True(t, ok)
		assert.Equal(t, c, canonical)
	}
	assert.Len(t, seen, len(Categories))
}

func TestParseCategory_ExactMatchOnly(t *testing.T) {
	for _, name := range []string{"hotdog", "Hotdog", "HOT DOG", "PIZZA", ""} {
		_, ok := ParseCategory(name)
		assert.False(t, ok, "%q must not parse", name)
	}

	c, ok := ParseCategory("HOTDOG_SANDWICH")
	require.True(t, ok)
	assert.Equal(t, "Hotdog Sandwich", c.DisplayName())
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryMiniDog.Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("DESSERT").Valid())
}
