package mocks

import (
	"context"

	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Begin(ctx context.Context) (domain.ReservationTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ReservationTx), args.Error(1)
}

func (m *MockReservationRepo) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	args := m.Called(ctx, userId, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(*domain.Metadata), args.Error(2)
}

type MockReservationTx struct {
	mock.Mock
}

func (m *MockReservationTx) GetTheatreHallByPerformanceId(ctx context.Context, performanceId int) (*domain.TheatreHall, error) {
	args := m.Called(ctx, performanceId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TheatreHall), args.Error(1)
}

func (m *MockReservationTx) TicketExists(ctx context.Context, performanceId, row, seat int) (bool, error) {
	args := m.Called(ctx, performanceId, row, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationTx) InsertReservation(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReservationTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
