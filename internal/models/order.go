package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Order struct {
	ID           gocql.UUID `json:"id"`
	UserID       string     `json:"user_id"`
	Items        []CartItem `json:"items"` // snapshot figé au checkout
	TotalPrice   int        `json:"total_price"`
	Address      string     `json:"address"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

var ValidOrderStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// CancellationWindow : fenêtre d'annulation client après création
const CancellationWindow = 10 * time.Minute

// IsCancellable indique si la commande peut encore être annulée par le client :
// au plus 10 minutes après création, et jamais une commande livrée ou annulée.
func (o Order) IsCancellable(now time.Time) bool {
	if o.Status == StatusCancelled || o.Status == StatusDelivered {
		return false
	}
	return now.Sub(o.CreatedAt) <= CancellationWindow
}
