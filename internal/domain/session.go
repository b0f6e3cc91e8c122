package domain

import (
	"context"
	"time"
)

type MovieSession struct {
	ID           int
	ShowTime     time.Time
	MovieID      int
	CinemaHallID int
}

// MovieSessionSummary is the list view of a session, annotated with how many
// tickets are still available in the hall.
type MovieSessionSummary struct {
	ID                 int
	ShowTime           time.Time
	MovieTitle         string
	CinemaHallName     string
	CinemaHallCapacity int
	TicketsAvailable   int
}

// MovieSessionDetail expands the movie and hall references and lists every
// seat coordinate already ticketed for the session.
type MovieSessionDetail struct {
	ID         int
	ShowTime   time.Time
	Movie      MovieSummary
	CinemaHall CinemaHall
	TakenSeats []SeatCoordinate
}

type SeatCoordinate struct {
	Row  int
	Seat int
}

// MovieSessionFilters narrow the session list. Date matches sessions whose
// show time falls on that calendar day; nil means no date filter.
type MovieSessionFilters struct {
	MovieIDs []int
	Date     *time.Time
}

type MovieSessionRepository interface {
	GetAll(ctx context.Context, filters MovieSessionFilters) ([]MovieSessionSummary, error)
	GetById(ctx context.Context, id int) (*MovieSessionDetail, error)
	Create(ctx context.Context, session *MovieSession) error
	Update(ctx context.Context, session *MovieSession) error
	Delete(ctx context.Context, id int) error
}
