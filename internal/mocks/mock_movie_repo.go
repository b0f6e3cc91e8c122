package mocks

import (
	"context"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc  func(ctx context.Context, filters domain.MovieFilters) ([]domain.MovieSummary, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	CreateFunc  func(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error
	UpdateFunc  func(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]domain.MovieSummary, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error {
	return m.CreateFunc(ctx, movie, genreIDs, actorIDs)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error {
	return m.UpdateFunc(ctx, movie, genreIDs, actorIDs)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
