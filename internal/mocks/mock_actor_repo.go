package mocks

import (
	"context"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type MockActorRepo struct {
	domain.ActorRepository
	GetAllFunc  func(ctx context.Context) ([]domain.Actor, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Actor, error)
	CreateFunc  func(ctx context.Context, actor *domain.Actor) error
	UpdateFunc  func(ctx context.Context, actor *domain.Actor) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	return m.GetAllFunc(ctx)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	return m.CreateFunc(ctx, actor)
}

func (m *MockActorRepo) Update(ctx context.Context, actor *domain.Actor) error {
	return m.UpdateFunc(ctx, actor)
}

func (m *MockActorRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
