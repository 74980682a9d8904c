package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatre-reservation-system/internal/booking"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

func (p *PostgresReservationRepository) Begin(ctx context.Context) (domain.ReservationTx, error) {
	var txOptions pgx.TxOptions

	tx, err := p.db.BeginTx(ctx, txOptions)
	if err != nil {
		return nil, err
	}

	return &reservationTx{tx: tx}, nil
}

type reservationTx struct {
	tx pgx.Tx
}

// GetTheatreHallByPerformanceId share-locks the performance so it cannot be moved to another
// hall or deleted before the transaction ends.
func (r *reservationTx) GetTheatreHallByPerformanceId(
	ctx context.Context,
	performanceId int) (*domain.TheatreHall, error) {

	query := `
		SELECT h.id, h.name, h.rows, h.seats_in_row
		FROM performances p
		JOIN theatre_halls h ON h.id = p.theatre_hall_id
		WHERE p.id = $1
		FOR SHARE OF p
	`

	var hall domain.TheatreHall

	err := r.tx.QueryRow(ctx, query, performanceId).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (r *reservationTx) TicketExists(ctx context.Context, performanceId, row, seat int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE performance_id = $1 AND seat_row = $2 AND seat = $3
		)
	`

	var exists bool

	err := r.tx.QueryRow(ctx, query, performanceId, row, seat).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// InsertReservation writes tickets one at a time in booking.InsertionOrder. A concurrent
// transaction holding the same seat makes the insert wait for it and, once it commits, fail
// with a unique violation that is reported against the ticket's request index.
func (r *reservationTx) InsertReservation(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (user_id)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.tx.QueryRow(ctx, query, reservation.UserID).Scan(&reservation.ID, &reservation.CreatedAt)
	if err != nil {
		return err
	}

	query = `
		INSERT INTO tickets (seat_row, seat, performance_id, reservation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, i := range booking.InsertionOrder(reservation.Tickets) {
		ticket := &reservation.Tickets[i]
		ticket.ReservationID = reservation.ID

		err := r.tx.QueryRow(ctx,
			query,
			ticket.Row,
			ticket.Seat,
			ticket.PerformanceID,
			reservation.ID).Scan(&ticket.ID)

		if err != nil {
			if isUniqueViolation(err) {
				return domain.TicketErrors{domain.NewSeatTakenError(i)}
			}

			if isForeignKeyViolation(err) {
				return domain.TicketErrors{{
					Index: i,
					Field: "performance",
					Issue: "performance does not exist",
					Err:   domain.ErrPerformanceNotFound,
				}}
			}

			return err
		}
	}

	return nil
}

func (r *reservationTx) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

func (r *reservationTx) Rollback(ctx context.Context) error {
	err := r.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}

	return err
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userId int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(&totalRecords, &reservation.ID, &reservation.UserID, &reservation.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		reservation.Tickets = make([]domain.Ticket, 0)
		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if err := p.loadTickets(ctx, reservations); err != nil {
		return nil, nil, err
	}

	metadata := pagination.Metadata(totalRecords)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) loadTickets(ctx context.Context, reservations []domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Reservation, len(reservations))
	ids := make([]int, 0, len(reservations))
	for i := range reservations {
		byID[reservations[i].ID] = &reservations[i]
		ids = append(ids, reservations[i].ID)
	}

	query := `
		SELECT
			t.id,
			t.seat_row,
			t.seat,
			t.reservation_id,
			p.id,
			p.play_id,
			pl.title,
			h.id,
			h.name,
			p.show_time
		FROM tickets t
		JOIN performances p ON p.id = t.performance_id
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls h ON h.id = p.theatre_hall_id
		WHERE t.reservation_id = ANY($1)
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticket domain.Ticket
		var performance domain.Performance

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.ReservationID,
			&performance.ID,
			&performance.PlayID,
			&performance.PlayTitle,
			&performance.TheatreHall.ID,
			&performance.TheatreHall.Name,
			&performance.ShowTime,
		)
		if err != nil {
			return err
		}

		ticket.PerformanceID = performance.ID
		ticket.Performance = &performance

		reservation := byID[ticket.ReservationID]
		reservation.Tickets = append(reservation.Tickets, ticket)
	}

	return rows.Err()
}
