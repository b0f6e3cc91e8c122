package domain

import "context"

type Movie struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genres      []Genre
	Actors      []Actor
}

// MovieSummary is the flattened list view of a movie: genre and actor
// references are reduced to their display names.
type MovieSummary struct {
	ID          int
	Title       string
	Description string
	Duration    int
	Genres      []string
	Actors      []string
}

// MovieFilters are combined with AND across filter types and OR within a
// multi-value filter. A nil or empty id slice means the filter is not applied.
type MovieFilters struct {
	GenreIDs []int
	ActorIDs []int
	Title    string
}

type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]MovieSummary, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie, genreIDs, actorIDs []int) error
	Update(ctx context.Context, movie *Movie, genreIDs, actorIDs []int) error
	Delete(ctx context.Context, id int) error
}
