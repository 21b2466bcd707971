package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasHundredUniquePrompts(t *testing.T) {
	require.Len(t, Activities, 100)

	seen := make(map[int]bool, len(Activities))
	for i, a := range Activities {
		assert.Equal(t, i+1, a.ID, "catalog is ordered by ID")
		assert.False(t, seen[a.ID], "duplicate activity ID %d", a.ID)
		seen[a.ID] = true

		assert.NotEmpty(t, a.Title, "activity %d has no title", a.ID)
		assert.NotEmpty(t, a.Desc, "activity %d has no description", a.ID)
	}
}

func TestActivityByID(t *testing.T) {
	a, ok := ActivityByID(1)
	require.True(t, ok)
	assert.Equal(t, "Daily Mood Check-in", a.Title)

	_, ok = ActivityByID(0)
	assert.False(t, ok)

	_, ok = ActivityByID(101)
	assert.False(t, ok)
}
