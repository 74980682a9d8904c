package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

const performanceColumns = `
	p.id,
	p.play_id,
	pl.title,
	pl.image_url,
	h.id,
	h.name,
	h.rows,
	h.seats_in_row,
	p.show_time,
	(SELECT COUNT(*) FROM tickets t WHERE t.performance_id = p.id)
`

func scanPerformance(row pgx.Row, performance *domain.Performance) error {
	return row.Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.PlayTitle,
		&performance.PlayImageURL,
		&performance.TheatreHall.ID,
		&performance.TheatreHall.Name,
		&performance.TheatreHall.Rows,
		&performance.TheatreHall.SeatsInRow,
		&performance.ShowTime,
		&performance.BookedTickets,
	)
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := p.db.QueryRow(ctx,
		query,
		performance.PlayID,
		performance.TheatreHall.ID,
		performance.ShowTime).Scan(&performance.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return nil
}

func (p *PostgresPerformanceRepository) GetAll(ctx context.Context) ([]domain.Performance, error) {
	query := `SELECT` + performanceColumns + `
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls h ON h.id = p.theatre_hall_id
		ORDER BY p.show_time, p.id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]domain.Performance, 0)

	for rows.Next() {
		var performance domain.Performance

		if err := scanPerformance(rows, &performance); err != nil {
			return nil, err
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	query := `SELECT` + performanceColumns + `, pl.description
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theatre_halls h ON h.id = p.theatre_hall_id
		WHERE p.id = $1`

	var detail domain.PerformanceDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.PlayID,
		&detail.PlayTitle,
		&detail.PlayImageURL,
		&detail.TheatreHall.ID,
		&detail.TheatreHall.Name,
		&detail.TheatreHall.Rows,
		&detail.TheatreHall.SeatsInRow,
		&detail.ShowTime,
		&detail.BookedTickets,
		&detail.Play.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.Play.ID = detail.PlayID
	detail.Play.Title = detail.PlayTitle
	detail.Play.ImageURL = detail.PlayImageURL

	if err := loadPlayRelations(ctx, p.db, []*domain.Play{&detail.Play}); err != nil {
		return nil, err
	}

	takenPlaces, err := p.takenPlaces(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.TakenPlaces = takenPlaces

	return &detail, nil
}

func (p *PostgresPerformanceRepository) takenPlaces(ctx context.Context, performanceId int) ([]domain.Seat, error) {
	query := `
		SELECT seat_row, seat
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat
	`

	rows, err := p.db.Query(ctx, query, performanceId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		if err := rows.Scan(&seat.Row, &seat.Seat); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresPerformanceRepository) Update(ctx context.Context, performance *domain.Performance) error {
	query := `UPDATE performances
		SET play_id = $1, theatre_hall_id = $2, show_time = $3
		WHERE id = $4`

	tag, err := p.db.Exec(ctx,
		query,
		performance.PlayID,
		performance.TheatreHall.ID,
		performance.ShowTime,
		performance.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresPerformanceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM performances WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
