package services

import (
	"testing"

	"arabica_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Bonjour !", IntentGreeting},
		{"Quels sont vos horaires ?", IntentHours},
		{"Où êtes-vous situés ?", IntentLocation},
		{"Je veux voir la carte", IntentMenu},
		{"Comment annuler ma commande ?", IntentOrders},
		{"Tu me recommandes quoi ?", IntentSuggest},
		// Le routage suggestions prime sur le menu
		{"Que me conseilles-tu sur la carte ?", IntentSuggest},
		{"Parle-moi de la météo", IntentFallback},
		{"", IntentFallback},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(tt.message))
		})
	}
}

func TestBuildLocalReplyMenu(t *testing.T) {
	catalog := []models.MenuItem{
		{ID: 1, Name: "Espresso", Price: 3, Popular: true},
		{ID: 2, Name: "Croissant", Price: 2},
	}

	reply := BuildLocalReply(IntentMenu, catalog)

	assert.Contains(t, reply, "Espresso")
	assert.Contains(t, reply, "3€")
	// Le croissant n'est ni populaire ni spécialité : pas cité
	assert.NotContains(t, reply, "Croissant")
}

func TestBuildLocalReplyMenuEmptyCatalog(t *testing.T) {
	reply := BuildLocalReply(IntentMenu, nil)
	assert.NotEmpty(t, reply)
}

func TestBuildLocalReplyFallbackIsEmpty(t *testing.T) {
	// "" signale au handler de passer la main à l'IA
	assert.Empty(t, BuildLocalReply(IntentFallback, nil))
}

func TestBuildLocalReplyStaticIntents(t *testing.T) {
	for _, intent := range []string{IntentGreeting, IntentHours, IntentLocation, IntentOrders, IntentSuggest} {
		assert.NotEmpty(t, BuildLocalReply(intent, nil), "intention %s", intent)
	}
}
