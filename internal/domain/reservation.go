package domain

import (
	"context"
	"time"
)

type Reservation struct {
	ID        int
	UserID    int
	Tickets   []Ticket
	CreatedAt time.Time
}

type Ticket struct {
	ID            int
	Row           int
	Seat          int
	PerformanceID int
	ReservationID int
	Performance   *Performance
}

type TicketRequest struct {
	Row           int
	Seat          int
	PerformanceID int
}

// UnitOfWork opens the transaction a reservation is validated and persisted in.
type UnitOfWork interface {
	Begin(ctx context.Context) (ReservationTx, error)
}

// ReservationTx is a single storage transaction. Nothing written through it is visible to
// other transactions before Commit, and Rollback discards all of it.
type ReservationTx interface {
	GetTheatreHallByPerformanceId(ctx context.Context, performanceId int) (*TheatreHall, error)
	TicketExists(ctx context.Context, performanceId, row, seat int) (bool, error)
	// InsertReservation stores the reservation and its tickets, filling in their ids. A ticket
	// that hits the (performance, row, seat) unique index is reported as TicketErrors.
	InsertReservation(ctx context.Context, reservation *Reservation) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type ReservationRepository interface {
	UnitOfWork
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]Reservation, *Metadata, error)
}
