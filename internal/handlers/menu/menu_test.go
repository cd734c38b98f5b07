package menu

import (
	"testing"

	"arabica_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func baseItem() models.MenuItem {
	return models.MenuItem{
		ID:          4,
		Name:        "Cappuccino",
		Description: "Espresso, lait vaporisé, mousse",
		Price:       5,
		ImageURL:    "http://minio/arabica/menu/4.jpg",
		Category:    models.CategoryCoffee,
		Popular:     true,
		ChefSpecial: true,
	}
}

func TestApplyMenuItemUpdate(t *testing.T) {
	tests := []struct {
		name    string
		updates menuItemUpdate
		check   func(t *testing.T, got models.MenuItem)
	}{
		{
			name:    "mise à jour du prix seul conserve les drapeaux",
			updates: menuItemUpdate{Price: 6},
			check: func(t *testing.T, got models.MenuItem) {
				assert.Equal(t, 6, got.Price)
				assert.True(t, got.Popular)
				assert.True(t, got.ChefSpecial)
				assert.False(t, got.Vegan)
				assert.Equal(t, "Cappuccino", got.Name)
			},
		},
		{
			name:    "false explicite efface un drapeau",
			updates: menuItemUpdate{Popular: boolPtr(false)},
			check: func(t *testing.T, got models.MenuItem) {
				assert.False(t, got.Popular)
				assert.True(t, got.ChefSpecial)
			},
		},
		{
			name:    "true explicite pose un drapeau",
			updates: menuItemUpdate{Vegan: boolPtr(true)},
			check: func(t *testing.T, got models.MenuItem) {
				assert.True(t, got.Vegan)
				assert.True(t, got.Popular)
			},
		},
		{
			name:    "champs texte vides conservés",
			updates: menuItemUpdate{Description: "Nouvelle recette"},
			check: func(t *testing.T, got models.MenuItem) {
				assert.Equal(t, "Nouvelle recette", got.Description)
				assert.Equal(t, "Cappuccino", got.Name)
				assert.Equal(t, 5, got.Price)
			},
		},
		{
			name:    "changement de catégorie valide",
			updates: menuItemUpdate{Category: models.CategoryDesserts},
			check: func(t *testing.T, got models.MenuItem) {
				assert.Equal(t, models.CategoryDesserts, got.Category)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyMenuItemUpdate(baseItem(), tt.updates)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestApplyMenuItemUpdateInvalidCategory(t *testing.T) {
	_, err := applyMenuItemUpdate(baseItem(), menuItemUpdate{Category: "pizza"})
	require.Error(t, err)
}
