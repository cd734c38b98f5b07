package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCancellableWindow(t *testing.T) {
	created := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	order := Order{Status: StatusPending, CreatedAt: created}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"juste après création", 0, true},
		{"une milliseconde avant la limite", CancellationWindow - time.Millisecond, true},
		{"à la limite de la fenêtre", CancellationWindow, true},
		{"une milliseconde trop tard", CancellationWindow + time.Millisecond, false},
		{"une seconde trop tard", CancellationWindow + time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.IsCancellable(created.Add(tt.elapsed)))
		})
	}
}

func TestIsCancellableStatusGates(t *testing.T) {
	created := time.Now()

	// Dans la fenêtre mais déjà livrée ou annulée : jamais annulable
	delivered := Order{Status: StatusDelivered, CreatedAt: created}
	cancelled := Order{Status: StatusCancelled, CreatedAt: created}
	preparing := Order{Status: StatusPreparing, CreatedAt: created}

	assert.False(t, delivered.IsCancellable(created))
	assert.False(t, cancelled.IsCancellable(created))
	assert.True(t, preparing.IsCancellable(created))
}

func TestValidOrderStatuses(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPreparing, StatusShipped, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidOrderStatuses[status])
	}
	assert.False(t, ValidOrderStatuses["refunded"])
	assert.False(t, ValidOrderStatuses[""])
}
