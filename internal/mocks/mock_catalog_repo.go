package mocks

import (
	"context"

	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockActorRepo struct {
	mock.Mock
	domain.ActorRepository
}

func (m *MockActorRepo) Create(ctx context.Context, actor *domain.Actor) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockActorRepo) GetAll(ctx context.Context) ([]domain.Actor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Actor), args.Error(1)
}

func (m *MockActorRepo) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

type MockGenreRepo struct {
	mock.Mock
	domain.GenreRepository
}

func (m *MockGenreRepo) Create(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepo) GetAll(ctx context.Context) ([]domain.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Genre), args.Error(1)
}

type MockTheatreHallRepo struct {
	mock.Mock
	domain.TheatreHallRepository
}

func (m *MockTheatreHallRepo) Create(ctx context.Context, hall *domain.TheatreHall) error {
	args := m.Called(ctx, hall)
	return args.Error(0)
}

func (m *MockTheatreHallRepo) GetAll(ctx context.Context) ([]domain.TheatreHall, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TheatreHall), args.Error(1)
}

func (m *MockTheatreHallRepo) GetById(ctx context.Context, id int) (*domain.TheatreHall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TheatreHall), args.Error(1)
}
