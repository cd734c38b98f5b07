package services

import (
	"testing"
	"time"

	"arabica_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Espresso", Category: models.CategoryCoffee, Description: "Un café corsé et intense", Popular: true},
		{ID: 2, Name: "Latte Caramel", Category: models.CategoryCoffee, Description: "Doux et sucré au caramel"},
		{ID: 3, Name: "Thé Chai", Category: models.CategoryTea, Description: "Thé épicé à la cannelle", New: true},
		{ID: 4, Name: "Cookie", Category: models.CategorySnacks, Description: "Cookie au chocolat, sucré", Popular: true},
		{ID: 5, Name: "Croissant", Category: models.CategorySnacks, Description: "Un classique du matin"},
		{ID: 6, Name: "Tiramisu", Category: models.CategoryDesserts, Description: "Dessert crémeux et sucré", ChefSpecial: true},
		{ID: 7, Name: "Café Glacé", Category: models.CategoryBeverages, Description: "Café glacé bien frais"},
	}
}

func orderOf(items ...models.CartItem) models.Order {
	return models.Order{Items: items, Status: models.StatusDelivered}
}

func TestRecommendNoHistoryFallsBackToPopularAndNew(t *testing.T) {
	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	recs := Recommend(testCatalog(), nil, morning)

	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), MaxRecommendations)
	for _, item := range recs {
		assert.True(t, item.Popular || item.New, "repli sans historique : uniquement popular/new (%s)", item.Name)
	}
}

func TestRecommendUsesCategoryPairings(t *testing.T) {
	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Le favori est l'Espresso (coffee) → accords snacks + desserts
	orders := []models.Order{
		orderOf(models.CartItem{ItemID: 1, Quantity: 5}),
	}

	recs := Recommend(testCatalog(), orders, morning)

	require.NotEmpty(t, recs)
	categories := map[string]bool{}
	ids := map[int]bool{}
	for _, item := range recs {
		categories[item.Category] = true
		ids[item.ID] = true
	}

	assert.True(t, categories[models.CategorySnacks])
	assert.True(t, categories[models.CategoryDesserts])
	// Jamais l'article favori lui-même
	assert.False(t, ids[1])
}

func TestRecommendNeverExceedsMax(t *testing.T) {
	afternoon := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderOf(
			models.CartItem{ItemID: 1, Quantity: 2},
			models.CartItem{ItemID: 4, Quantity: 1},
		),
	}

	recs := Recommend(testCatalog(), orders, afternoon)

	assert.LessOrEqual(t, len(recs), MaxRecommendations)
}

func TestRecommendDeterministic(t *testing.T) {
	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderOf(models.CartItem{ItemID: 3, Quantity: 2}),
	}

	first := Recommend(testCatalog(), orders, morning)
	second := Recommend(testCatalog(), orders, morning)

	assert.Equal(t, first, second)
}

func TestRecommendTieBreakLowestID(t *testing.T) {
	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Deux favoris ex æquo : l'ID le plus petit gagne (Espresso → accords coffee)
	orders := []models.Order{
		orderOf(
			models.CartItem{ItemID: 1, Quantity: 2},
			models.CartItem{ItemID: 3, Quantity: 2},
		),
	}

	recs := Recommend(testCatalog(), orders, morning)

	require.NotEmpty(t, recs)
	categories := map[string]bool{}
	for _, item := range recs {
		categories[item.Category] = true
	}
	assert.True(t, categories[models.CategorySnacks])
}

func TestFlavorProfile(t *testing.T) {
	item := models.MenuItem{Description: "Un café corsé, sucré au caramel, servi glacé"}

	profile := FlavorProfile(item)

	assert.Contains(t, profile, "sweet")
	assert.Contains(t, profile, "rich")
	assert.Contains(t, profile, "cold")
	assert.NotContains(t, profile, "spicy")
}

func TestFlavorProfileEmptyDescription(t *testing.T) {
	assert.Empty(t, FlavorProfile(models.MenuItem{Description: ""}))
}

func TestRecommendAfternoonPrefersCold(t *testing.T) {
	afternoon := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	// Favori corsé (Espresso) : aucun accord disponible hors catalogue réduit,
	// la complétion aromatique doit remonter le Café Glacé l'après-midi
	catalog := []models.MenuItem{
		{ID: 1, Name: "Espresso", Category: models.CategoryCoffee, Description: "Un café corsé et intense", Popular: true},
		{ID: 7, Name: "Café Glacé", Category: models.CategoryBeverages, Description: "Café glacé bien frais"},
		{ID: 8, Name: "Allongé", Category: models.CategoryCoffee, Description: "Un café corsé allongé"},
	}
	orders := []models.Order{
		orderOf(models.CartItem{ItemID: 1, Quantity: 3}),
	}

	recs := Recommend(catalog, orders, afternoon)

	require.NotEmpty(t, recs)
	ids := map[int]bool{}
	for _, item := range recs {
		ids[item.ID] = true
	}
	assert.True(t, ids[7], "le profil froid doit être suggéré l'après-midi")
}
