package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCheckoutForm(t *testing.T) {
	tests := []struct {
		name    string
		form    CheckoutForm
		wantErr bool
	}{
		{
			name:    "formulaire complet",
			form:    CheckoutForm{Name: "Marie Dupont", Email: "marie@example.com", Address: "12 rue des Torréfacteurs"},
			wantErr: false,
		},
		{
			name:    "nom manquant",
			form:    CheckoutForm{Name: "  ", Email: "marie@example.com", Address: "12 rue des Torréfacteurs"},
			wantErr: true,
		},
		{
			name:    "email sans arobase",
			form:    CheckoutForm{Name: "Marie", Email: "marie.example.com", Address: "12 rue des Torréfacteurs"},
			wantErr: true,
		},
		{
			name:    "email sans domaine",
			form:    CheckoutForm{Name: "Marie", Email: "marie@", Address: "12 rue des Torréfacteurs"},
			wantErr: true,
		},
		{
			name:    "email avec espace",
			form:    CheckoutForm{Name: "Marie", Email: "ma rie@example.com", Address: "12 rue des Torréfacteurs"},
			wantErr: true,
		},
		{
			name:    "adresse manquante",
			form:    CheckoutForm{Name: "Marie", Email: "marie@example.com", Address: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckoutForm(tt.form)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
