package mocks

import (
	"context"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type MockGenreRepo struct {
	domain.GenreRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Genre, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Genre, error)
	CreateFunc  func(ctx context.Context, genre *domain.Genre) error
	UpdateFunc  func(ctx context.Context, genre *domain.Genre) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockGenreRepo) GetById(ctx context.Context, id int) (*domain.Genre, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	return m.CreateFunc(ctx, genre)
}

func (m *MockGenreRepo) Update(ctx context.Context, genre *domain.Genre) error {
	return m.UpdateFunc(ctx, genre)
}

func (m *MockGenreRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
