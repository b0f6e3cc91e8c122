// Package api declares the request and response shapes of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationErrorResponse struct {
	Message          string                  `json:"message"`
	ValidationErrors []ValidationErrorDetail `json:"validationErrors"`
	RequestId        string                  `json:"requestId,omitempty"`
	Timestamp        time.Time               `json:"timestamp"`
}

type ValidationErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

type Actor struct {
	Id        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
}

type ActorRequest struct {
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
}

type ActorListResponse struct {
	Actors []Actor `json:"actors"`
}

type CinemaHall struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seatsInRow"`
	Capacity   int    `json:"capacity"`
}

type CinemaHallRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,min=1"`
}

type CinemaHallListResponse struct {
	CinemaHalls []CinemaHall `json:"cinemaHalls"`
}

// MovieSummary flattens genre and actor references to their names; the detail
// view expands them into full objects.
type MovieSummary struct {
	Id          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

type MovieDetail struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"`
	Genres      []Genre `json:"genres"`
	Actors      []Actor `json:"actors"`
}

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Duration    int    `json:"duration" validate:"required,min=1"`
	GenreIds    []int  `json:"genreIds" validate:"dive,min=1"`
	ActorIds    []int  `json:"actorIds" validate:"dive,min=1"`
}

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type MovieSessionSummary struct {
	Id                 int       `json:"id"`
	ShowTime           time.Time `json:"showTime"`
	MovieTitle         string    `json:"movieTitle"`
	CinemaHallName     string    `json:"cinemaHallName"`
	CinemaHallCapacity int       `json:"cinemaHallCapacity"`
	TicketsAvailable   int       `json:"ticketsAvailable"`
}

type MovieSessionDetail struct {
	Id         int          `json:"id"`
	ShowTime   time.Time    `json:"showTime"`
	Movie      MovieSummary `json:"movie"`
	CinemaHall CinemaHall   `json:"cinemaHall"`
	TakenSeats []Seat       `json:"takenSeats"`
}

type Seat struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type MovieSession struct {
	Id           int       `json:"id"`
	ShowTime     time.Time `json:"showTime"`
	MovieId      int       `json:"movieId"`
	CinemaHallId int       `json:"cinemaHallId"`
}

type MovieSessionRequest struct {
	ShowTime     time.Time `json:"showTime" validate:"required"`
	MovieId      int       `json:"movieId" validate:"required,min=1"`
	CinemaHallId int       `json:"cinemaHallId" validate:"required,min=1"`
}

type MovieSessionListResponse struct {
	MovieSessions []MovieSessionSummary `json:"movieSessions"`
}

type TicketRequest struct {
	Row            int `json:"row" validate:"required,min=1"`
	Seat           int `json:"seat" validate:"required,min=1"`
	MovieSessionId int `json:"movieSessionId" validate:"required,min=1"`
}

type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type Ticket struct {
	Id             int `json:"id"`
	Row            int `json:"row"`
	Seat           int `json:"seat"`
	MovieSessionId int `json:"movieSessionId"`
}

type OrderResponse struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Tickets   []Ticket  `json:"tickets"`
}

type OrderListResponse struct {
	Orders   []OrderResponse `json:"orders"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}
