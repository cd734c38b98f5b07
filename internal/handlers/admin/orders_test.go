package admin

import (
	"testing"
	"time"

	"arabica_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSortOrdersRecentFirst(t *testing.T) {
	base := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ContactName: "Ancienne", CreatedAt: base},
		{ContactName: "Récente", CreatedAt: base.Add(2 * time.Hour)},
		{ContactName: "Intermédiaire", CreatedAt: base.Add(time.Hour)},
	}

	sortOrdersRecentFirst(orders)

	assert.Equal(t, "Récente", orders[0].ContactName)
	assert.Equal(t, "Intermédiaire", orders[1].ContactName)
	assert.Equal(t, "Ancienne", orders[2].ContactName)
}

func TestSortOrdersRecentFirstStable(t *testing.T) {
	ts := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{ContactName: "Première", CreatedAt: ts},
		{ContactName: "Seconde", CreatedAt: ts},
	}

	sortOrdersRecentFirst(orders)

	// Dates égales : l'ordre d'entrée est conservé
	assert.Equal(t, "Première", orders[0].ContactName)
	assert.Equal(t, "Seconde", orders[1].ContactName)
}
