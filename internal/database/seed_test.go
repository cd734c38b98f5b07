package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuCounterFloor(t *testing.T) {
	tests := []struct {
		name  string
		maxID int
		want  int
	}{
		{"table vide", 0, len(defaultCatalog)},
		{"table au niveau du catalogue", len(defaultCatalog), len(defaultCatalog)},
		{"articles admin au-delà du catalogue", 47, 47},
		{"valeur aberrante négative", -3, len(defaultCatalog)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, menuCounterFloor(tt.maxID))
		})
	}
}

func TestDefaultCatalogIDsUniques(t *testing.T) {
	seen := map[int]bool{}
	for _, item := range defaultCatalog {
		assert.False(t, seen[item.ID], "item_id %d dupliqué", item.ID)
		assert.Greater(t, item.ID, 0)
		seen[item.ID] = true
	}
}
