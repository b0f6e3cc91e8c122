package mocks

import (
	"context"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type MockCinemaHallRepo struct {
	domain.CinemaHallRepository
	GetAllFunc  func(ctx context.Context) ([]domain.CinemaHall, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.CinemaHall, error)
	CreateFunc  func(ctx context.Context, hall *domain.CinemaHall) error
	UpdateFunc  func(ctx context.Context, hall *domain.CinemaHall) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockCinemaHallRepo) GetAll(ctx context.Context) ([]domain.CinemaHall, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockCinemaHallRepo) GetById(ctx context.Context, id int) (*domain.CinemaHall, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCinemaHallRepo) Create(ctx context.Context, hall *domain.CinemaHall) error {
	return m.CreateFunc(ctx, hall)
}

func (m *MockCinemaHallRepo) Update(ctx context.Context, hall *domain.CinemaHall) error {
	return m.UpdateFunc(ctx, hall)
}

func (m *MockCinemaHallRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
