package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emreakdogan/cinema-booking-api/internal/domain"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]domain.MovieSummary, error) {
	// EXISTS subqueries keep the result set free of join duplicates, so no
	// DISTINCT is needed even when a movie matches several filter values.
	query := `
		SELECT
			m.id, m.title, m.description, m.duration,
			ARRAY(
				SELECT g.name FROM genres g
				JOIN movie_genres mg ON mg.genre_id = g.id
				WHERE mg.movie_id = m.id
				ORDER BY g.name
			),
			ARRAY(
				SELECT a.first_name || ' ' || a.last_name FROM actors a
				JOIN movie_actors ma ON ma.actor_id = a.id
				WHERE ma.movie_id = m.id
				ORDER BY a.last_name, a.first_name
			)
		FROM movies m
		WHERE ($1 = '' OR m.title ILIKE '%' || $1 || '%')
		AND ($2::int[] IS NULL OR cardinality($2::int[]) = 0 OR EXISTS (
			SELECT 1 FROM movie_genres mg WHERE mg.movie_id = m.id AND mg.genre_id = ANY($2::int[])
		))
		AND ($3::int[] IS NULL OR cardinality($3::int[]) = 0 OR EXISTS (
			SELECT 1 FROM movie_actors ma WHERE ma.movie_id = m.id AND ma.actor_id = ANY($3::int[])
		))
		ORDER BY m.title
	`

	rows, err := p.db.Query(ctx, query, escapeLikeTerm(filters.Title), filters.GenreIDs, filters.ActorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]domain.MovieSummary, 0)

	for rows.Next() {
		var movie domain.MovieSummary

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Duration,
			&movie.Genres,
			&movie.Actors,
		)

		if err != nil {
			return nil, err
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// escapeLikeTerm makes a user-supplied search term safe to embed in an ILIKE
// pattern, so % and _ match literally instead of acting as wildcards.
func escapeLikeTerm(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

func (p *PostgresMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	query := `SELECT id, title, description, duration FROM movies WHERE id = $1`

	var movie domain.Movie

	err := p.db.QueryRow(ctx, query, id).Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	genres, err := p.retrieveMovieGenres(ctx, id)
	if err != nil {
		return nil, err
	}

	actors, err := p.retrieveMovieActors(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Genres = genres
	movie.Actors = actors

	return &movie, nil
}

func (p *PostgresMovieRepository) retrieveMovieGenres(ctx context.Context, movieId int) ([]domain.Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id AND mg.movie_id = $1
		ORDER BY g.name
	`

	rows, err := p.db.Query(ctx, query, movieId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}

func (p *PostgresMovieRepository) retrieveMovieActors(ctx context.Context, movieId int) ([]domain.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name
		FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id AND ma.movie_id = $1
		ORDER BY a.last_name, a.first_name
	`

	rows, err := p.db.Query(ctx, query, movieId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actors, nil
}

func (p *PostgresMovieRepository) Create(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `INSERT INTO movies (title, description, duration) VALUES ($1, $2, $3) RETURNING id`

		err := tx.QueryRow(ctx, query, movie.Title, movie.Description, movie.Duration).Scan(&movie.ID)
		if err != nil {
			return err
		}

		return p.replaceMovieRelations(ctx, tx, movie.ID, genreIDs, actorIDs)
	})
}

func (p *PostgresMovieRepository) Update(ctx context.Context, movie *domain.Movie, genreIDs, actorIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `UPDATE movies SET title = $1, description = $2, duration = $3 WHERE id = $4`

		result, err := tx.Exec(ctx, query, movie.Title, movie.Description, movie.Duration, movie.ID)
		if err != nil {
			return err
		}

		if result.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		_, err = tx.Exec(ctx, `DELETE FROM movie_genres WHERE movie_id = $1`, movie.ID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM movie_actors WHERE movie_id = $1`, movie.ID)
		if err != nil {
			return err
		}

		return p.replaceMovieRelations(ctx, tx, movie.ID, genreIDs, actorIDs)
	})
}

func (p *PostgresMovieRepository) replaceMovieRelations(ctx context.Context, tx pgx.Tx, movieId int, genreIDs, actorIDs []int) error {
	if len(genreIDs) > 0 {
		rows := make([][]any, 0, len(genreIDs))
		for _, genreId := range genreIDs {
			rows = append(rows, []any{movieId, genreId})
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_genres"},
			[]string{"movie_id", "genre_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ValidationError{Field: "genreIds", Message: "one or more genres do not exist"}
			}

			return err
		}
	}

	if len(actorIDs) > 0 {
		rows := make([][]any, 0, len(actorIDs))
		for _, actorId := range actorIDs {
			rows = append(rows, []any{movieId, actorId})
		}

		_, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"movie_actors"},
			[]string{"movie_id", "actor_id"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return domain.ValidationError{Field: "actorIds", Message: "one or more actors do not exist"}
			}

			return err
		}
	}

	return nil
}

func (p *PostgresMovieRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
