// Package booking turns a batch of ticket requests into one reservation without ever
// selling the same seat of a performance twice.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/metinatakli/theatre-reservation-system/internal/booking"

type Service struct {
	uow      domain.UnitOfWork
	logger   *slog.Logger
	created  metric.Int64Counter
	rejected metric.Int64Counter
}

func NewService(uow domain.UnitOfWork, logger *slog.Logger) *Service {
	meter := otel.Meter(instrumentationName)

	// instrument creation only fails on invalid names
	created, _ := meter.Int64Counter("reservations.created",
		metric.WithDescription("Reservations committed"))
	rejected, _ := meter.Int64Counter("reservations.rejected",
		metric.WithDescription("Reservation requests rejected by validation or seat conflicts"))

	return &Service{
		uow:      uow,
		logger:   logger,
		created:  created,
		rejected: rejected,
	}
}

type seatKey struct {
	performanceID int
	row           int
	seat          int
}

// CreateReservation validates every request and persists the reservation with all of its
// tickets in a single transaction. Rejections are returned as domain.TicketErrors and leave
// storage untouched.
func (s *Service) CreateReservation(
	ctx context.Context,
	userID int,
	requests []domain.TicketRequest) (*domain.Reservation, error) {

	if len(requests) == 0 {
		return nil, domain.ErrNoTickets
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reservation: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			s.logger.Error("failed to roll back reservation", "error", rbErr, "user_id", userID)
		}
	}()

	ticketErrs, err := s.validate(ctx, tx, requests)
	if err != nil {
		return nil, err
	}

	if len(ticketErrs) > 0 {
		s.reject(ctx, "validation", userID, ticketErrs)
		return nil, ticketErrs
	}

	reservation := newReservation(userID, requests)

	err = tx.InsertReservation(ctx, reservation)
	if err != nil {
		var insertErrs domain.TicketErrors
		if errors.As(err, &insertErrs) {
			s.reject(ctx, "conflict", userID, insertErrs)
			return nil, insertErrs
		}

		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("commit reservation: %w", err)
	}
	committed = true

	s.created.Add(ctx, 1)
	s.logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"user_id", userID,
		"tickets", len(reservation.Tickets),
	)

	return reservation, nil
}

func (s *Service) validate(
	ctx context.Context,
	tx domain.ReservationTx,
	requests []domain.TicketRequest) (domain.TicketErrors, error) {

	var ticketErrs domain.TicketErrors

	halls := make(map[int]*domain.TheatreHall)
	requested := make(map[seatKey]int, len(requests))

	for i, req := range requests {
		hall, ok := halls[req.PerformanceID]
		if !ok {
			var err error

			hall, err = tx.GetTheatreHallByPerformanceId(ctx, req.PerformanceID)
			if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
				return nil, fmt.Errorf("look up performance %d: %w", req.PerformanceID, err)
			}

			halls[req.PerformanceID] = hall
		}

		if hall == nil {
			ticketErrs = append(ticketErrs, &domain.TicketError{
				Index: i,
				Field: "performance",
				Issue: fmt.Sprintf("performance %d does not exist", req.PerformanceID),
				Err:   domain.ErrPerformanceNotFound,
			})
			continue
		}

		if !hall.HasRow(req.Row) {
			ticketErrs = append(ticketErrs, &domain.TicketError{
				Index: i,
				Field: "row",
				Issue: fmt.Sprintf("must be in range [1, %d]", hall.Rows),
				Err:   domain.ErrRowOutOfRange,
			})
			continue
		}

		if !hall.HasSeat(req.Seat) {
			ticketErrs = append(ticketErrs, &domain.TicketError{
				Index: i,
				Field: "seat",
				Issue: fmt.Sprintf("must be in range [1, %d]", hall.SeatsInRow),
				Err:   domain.ErrSeatOutOfRange,
			})
			continue
		}

		key := seatKey{performanceID: req.PerformanceID, row: req.Row, seat: req.Seat}
		if first, dup := requested[key]; dup {
			ticketErrs = append(ticketErrs, &domain.TicketError{
				Index: i,
				Field: "seat",
				Issue: fmt.Sprintf("is already requested by ticket %d", first),
				Err:   domain.ErrSeatAlreadyTaken,
			})
			continue
		}
		requested[key] = i

		taken, err := tx.TicketExists(ctx, req.PerformanceID, req.Row, req.Seat)
		if err != nil {
			return nil, fmt.Errorf("check ticket %d: %w", i, err)
		}

		if taken {
			ticketErrs = append(ticketErrs, domain.NewSeatTakenError(i))
		}
	}

	return ticketErrs, nil
}

func (s *Service) reject(ctx context.Context, reason string, userID int, errs domain.TicketErrors) {
	s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
	s.logger.Warn("reservation rejected", "reason", reason, "user_id", userID, "errors", errs.Error())
}

// newReservation keeps tickets in request order so ticket errors can point back at the
// request. InsertionOrder gives the order storage should write them in.
func newReservation(userID int, requests []domain.TicketRequest) *domain.Reservation {
	tickets := make([]domain.Ticket, len(requests))
	for i, req := range requests {
		tickets[i] = domain.Ticket{
			Row:           req.Row,
			Seat:          req.Seat,
			PerformanceID: req.PerformanceID,
		}
	}

	return &domain.Reservation{
		UserID:  userID,
		Tickets: tickets,
	}
}

// InsertionOrder returns ticket indexes sorted by (performance, row, seat). Writing tickets in
// this order makes concurrent overlapping reservations take unique index locks in the same
// order, so they conflict instead of deadlocking.
func InsertionOrder(tickets []domain.Ticket) []int {
	order := make([]int, len(tickets))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ta, tb := tickets[order[a]], tickets[order[b]]
		if ta.PerformanceID != tb.PerformanceID {
			return ta.PerformanceID < tb.PerformanceID
		}
		if ta.Row != tb.Row {
			return ta.Row < tb.Row
		}
		return ta.Seat < tb.Seat
	})

	return order
}
