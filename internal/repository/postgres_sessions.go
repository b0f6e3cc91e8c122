package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type PostgresMovieSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieSessionRepository(db *pgxpool.Pool) *PostgresMovieSessionRepository {
	return &PostgresMovieSessionRepository{
		db: db,
	}
}

func (p *PostgresMovieSessionRepository) GetAll(ctx context.Context, filters domain.MovieSessionFilters) ([]domain.MovieSessionSummary, error) {
	// Every persisted ticket counts as taken; there is no cancellation state.
	query := `
		SELECT
			ms.id,
			ms.show_time,
			m.title,
			h.name,
			h.rows * h.seats_in_row,
			h.rows * h.seats_in_row - (SELECT count(*) FROM tickets t WHERE t.movie_session_id = ms.id)
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		WHERE ($1::int[] IS NULL OR cardinality($1::int[]) = 0 OR ms.movie_id = ANY($1::int[]))
		AND ($2::date IS NULL OR ms.show_time::date = $2::date)
		ORDER BY ms.show_time DESC, ms.id
	`

	rows, err := p.db.Query(ctx, query, filters.MovieIDs, filters.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.MovieSessionSummary, 0)

	for rows.Next() {
		var session domain.MovieSessionSummary

		err := rows.Scan(
			&session.ID,
			&session.ShowTime,
			&session.MovieTitle,
			&session.CinemaHallName,
			&session.CinemaHallCapacity,
			&session.TicketsAvailable,
		)

		if err != nil {
			return nil, err
		}

		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (p *PostgresMovieSessionRepository) GetById(ctx context.Context, id int) (*domain.MovieSessionDetail, error) {
	query := `
		SELECT
			ms.id,
			ms.show_time,
			m.id, m.title, m.description, m.duration,
			h.id, h.name, h.rows, h.seats_in_row
		FROM movie_sessions ms
		JOIN movies m ON m.id = ms.movie_id
		JOIN cinema_halls h ON h.id = ms.cinema_hall_id
		WHERE ms.id = $1
	`

	var detail domain.MovieSessionDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.Movie.ID,
		&detail.Movie.Title,
		&detail.Movie.Description,
		&detail.Movie.Duration,
		&detail.CinemaHall.ID,
		&detail.CinemaHall.Name,
		&detail.CinemaHall.Rows,
		&detail.CinemaHall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	err = p.db.QueryRow(ctx, `
		SELECT
			ARRAY(
				SELECT g.name FROM genres g
				JOIN movie_genres mg ON mg.genre_id = g.id
				WHERE mg.movie_id = $1
				ORDER BY g.name
			),
			ARRAY(
				SELECT a.first_name || ' ' || a.last_name FROM actors a
				JOIN movie_actors ma ON ma.actor_id = a.id
				WHERE ma.movie_id = $1
				ORDER BY a.last_name, a.first_name
			)
	`, detail.Movie.ID).Scan(&detail.Movie.Genres, &detail.Movie.Actors)

	if err != nil {
		return nil, err
	}

	takenSeats, err := p.retrieveTakenSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	detail.TakenSeats = takenSeats

	return &detail, nil
}

func (p *PostgresMovieSessionRepository) retrieveTakenSeats(ctx context.Context, sessionId int) ([]domain.SeatCoordinate, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE movie_session_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := p.db.Query(ctx, query, sessionId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	takenSeats := make([]domain.SeatCoordinate, 0)

	for rows.Next() {
		var seat domain.SeatCoordinate

		err := rows.Scan(&seat.Row, &seat.Seat)
		if err != nil {
			return nil, err
		}

		takenSeats = append(takenSeats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return takenSeats, nil
}

func (p *PostgresMovieSessionRepository) Create(ctx context.Context, session *domain.MovieSession) error {
	query := `
		INSERT INTO movie_sessions (show_time, movie_id, cinema_hall_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, session.ShowTime, session.MovieID, session.CinemaHallID).Scan(&session.ID)
	if err != nil {
		return mapSessionReferenceError(err)
	}

	return nil
}

func (p *PostgresMovieSessionRepository) Update(ctx context.Context, session *domain.MovieSession) error {
	query := `
		UPDATE movie_sessions
		SET show_time = $1, movie_id = $2, cinema_hall_id = $3
		WHERE id = $4
	`

	result, err := p.db.Exec(ctx, query, session.ShowTime, session.MovieID, session.CinemaHallID, session.ID)
	if err != nil {
		return mapSessionReferenceError(err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresMovieSessionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM movie_sessions WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func mapSessionReferenceError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.ForeignKeyViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "fk_movie_sessions_movie":
		return domain.ValidationError{Field: "movieId", Message: "movie does not exist"}
	case "fk_movie_sessions_cinema_hall":
		return domain.ValidationError{Field: "cinemaHallId", Message: "cinema hall does not exist"}
	}

	return err
}
