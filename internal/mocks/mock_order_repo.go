package mocks

import (
	"context"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type MockOrderRepo struct {
	domain.OrderRepository
	CreateFunc         func(ctx context.Context, order *domain.Order, tickets []domain.TicketRequest) error
	GetAllByUserIdFunc func(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.Order, *domain.Metadata, error)
	GetByIdFunc        func(ctx context.Context, id int) (*domain.Order, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, order *domain.Order, tickets []domain.TicketRequest) error {
	return m.CreateFunc(ctx, order, tickets)
}

func (m *MockOrderRepo) GetAllByUserId(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.Order, *domain.Metadata, error) {
	return m.GetAllByUserIdFunc(ctx, userId, pagination)
}

func (m *MockOrderRepo) GetById(ctx context.Context, id int) (*domain.Order, error) {
	return m.GetByIdFunc(ctx, id)
}
