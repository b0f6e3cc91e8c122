package domain

import "context"

// CinemaHall describes the physical layout of a hall. Rows and SeatsInRow
// bound the valid seat coordinate space of every session scheduled in it.
type CinemaHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

type CinemaHallRepository interface {
	GetAll(ctx context.Context) ([]CinemaHall, error)
	GetById(ctx context.Context, id int) (*CinemaHall, error)
	Create(ctx context.Context, hall *CinemaHall) error
	Update(ctx context.Context, hall *CinemaHall) error
	Delete(ctx context.Context, id int) error
}
