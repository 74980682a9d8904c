package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

// Create stores the play with its actor and genre links. Only the ids of play.Actors and
// play.Genres are read; an id with no matching row yields ErrInvalidReference.
func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO plays (title, description, image_url)
			VALUES ($1, $2, $3)
			RETURNING id`

		err := tx.QueryRow(ctx, query, play.Title, play.Description, play.ImageURL).Scan(&play.ID)
		if err != nil {
			return err
		}

		actorRows := make([][]any, 0, len(play.Actors))
		for _, id := range uniqueIDs(play.Actors, func(a domain.Actor) int { return a.ID }) {
			actorRows = append(actorRows, []any{play.ID, id})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"play_actors"},
			[]string{"play_id", "actor_id"},
			pgx.CopyFromRows(actorRows),
		)
		if err != nil {
			return err
		}

		genreRows := make([][]any, 0, len(play.Genres))
		for _, id := range uniqueIDs(play.Genres, func(g domain.Genre) int { return g.ID }) {
			genreRows = append(genreRows, []any{play.ID, id})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"play_genres"},
			[]string{"play_id", "genre_id"},
			pgx.CopyFromRows(genreRows),
		)

		return err
	})

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}

		return err
	}

	return loadPlayRelations(ctx, p.db, []*domain.Play{play})
}

func (p *PostgresPlayRepository) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error) {
	query := `
		SELECT p.id, p.title, p.description, p.image_url
		FROM plays p
		WHERE strpos(lower(p.title), lower($1)) > 0
		AND (coalesce(cardinality($2::bigint[]), 0) = 0 OR EXISTS (
			SELECT 1 FROM play_genres pg WHERE pg.play_id = p.id AND pg.genre_id = ANY($2)))
		AND (coalesce(cardinality($3::bigint[]), 0) = 0 OR EXISTS (
			SELECT 1 FROM play_actors pa WHERE pa.play_id = p.id AND pa.actor_id = ANY($3)))
		ORDER BY p.id
	`

	rows, err := p.db.Query(ctx, query, filters.Title, filters.GenreIDs, filters.ActorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := make([]domain.Play, 0)

	for rows.Next() {
		var play domain.Play

		err := rows.Scan(&play.ID, &play.Title, &play.Description, &play.ImageURL)
		if err != nil {
			return nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Play, len(plays))
	for i := range plays {
		refs[i] = &plays[i]
	}

	if err := loadPlayRelations(ctx, p.db, refs); err != nil {
		return nil, err
	}

	return plays, nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `SELECT id, title, description, image_url FROM plays WHERE id = $1`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(&play.ID, &play.Title, &play.Description, &play.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err := loadPlayRelations(ctx, p.db, []*domain.Play{&play}); err != nil {
		return nil, err
	}

	return &play, nil
}

func (p *PostgresPlayRepository) UpdateImage(ctx context.Context, id int, imageURL string) error {
	query := `UPDATE plays SET image_url = $1 WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, imageURL, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadPlayRelations replaces the actors and genres of every play with what is stored for it.
func loadPlayRelations(ctx context.Context, q querier, plays []*domain.Play) error {
	if len(plays) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Play, len(plays))
	ids := make([]int, 0, len(plays))
	for _, play := range plays {
		play.Actors = make([]domain.Actor, 0)
		play.Genres = make([]domain.Genre, 0)
		byID[play.ID] = play
		ids = append(ids, play.ID)
	}

	query := `
		SELECT pa.play_id, a.id, a.first_name, a.last_name
		FROM play_actors pa
		JOIN actors a ON a.id = pa.actor_id
		WHERE pa.play_id = ANY($1)
		ORDER BY a.id
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}

	for rows.Next() {
		var playID int
		var actor domain.Actor

		if err := rows.Scan(&playID, &actor.ID, &actor.FirstName, &actor.LastName); err != nil {
			rows.Close()
			return err
		}

		byID[playID].Actors = append(byID[playID].Actors, actor)
	}
	rows.Close()

	if err = rows.Err(); err != nil {
		return err
	}

	query = `
		SELECT pg.play_id, g.id, g.name
		FROM play_genres pg
		JOIN genres g ON g.id = pg.genre_id
		WHERE pg.play_id = ANY($1)
		ORDER BY g.id
	`

	rows, err = q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var playID int
		var genre domain.Genre

		if err := rows.Scan(&playID, &genre.ID, &genre.Name); err != nil {
			return err
		}

		byID[playID].Genres = append(byID[playID].Genres, genre)
	}

	return rows.Err()
}

func uniqueIDs[T any](items []T, id func(T) int) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		if !slices.Contains(ids, id(item)) {
			ids = append(ids, id(item))
		}
	}

	return ids
}
