package domain

import (
	"context"
	"time"
)

// Order groups the tickets a user bought in a single purchase. An order and
// its tickets are only ever created together; there is no way to attach a
// ticket to an existing order.
type Order struct {
	ID        int
	UserID    int
	CreatedAt time.Time
	Tickets   []Ticket
}

type OrderRepository interface {
	// Create persists the order and one ticket per request atomically. On any
	// validation failure, missing session, or seat conflict nothing is
	// persisted and the first error is returned.
	Create(ctx context.Context, order *Order, tickets []TicketRequest) error
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]Order, *Metadata, error)
	GetById(ctx context.Context, id int) (*Order, error)
}
