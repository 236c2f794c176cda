package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmorate/internal/domain/models"
)

const filmColumns = "id, name, description, release_date, duration"

func scanFilm(row interface{ Scan(dest ...any) error }) (models.Film, error) {
	var (
		film        models.Film
		releaseDate sql.NullTime
		duration    sql.NullInt64
	)

	if err := row.Scan(&film.ID, &film.Name, &film.Description, &releaseDate, &duration); err != nil {
		return models.Film{}, err
	}

	if releaseDate.Valid {
		t := releaseDate.Time.UTC()
		film.ReleaseDate = &t
	}
	film.Duration = int(duration.Int64)
	film.UserLikes = make(models.IDSet)
	return film, nil
}

func (p *Storage) FilmGetAll(ctx context.Context) ([]models.Film, error) {
	q := p.conn(ctx)

	rows, err := q.QueryContext(ctx, "SELECT "+filmColumns+" FROM films ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query films: %w", err)
	}
	defer rows.Close()

	var (
		films []models.Film
		index = make(map[int64]int)
	)
	for rows.Next() {
		film, err := scanFilm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan film: %w", err)
		}
		index[film.ID] = len(films)
		films = append(films, film)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	likeRows, err := q.QueryContext(ctx, "SELECT film_id, user_id FROM film_likes")
	if err != nil {
		return nil, fmt.Errorf("failed to query likes: %w", err)
	}
	defer likeRows.Close()

	for likeRows.Next() {
		var filmID, userID int64
		if err := likeRows.Scan(&filmID, &userID); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		if i, ok := index[filmID]; ok {
			films[i].UserLikes.Add(userID)
		}
	}
	if err := likeRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return films, nil
}

func (p *Storage) FilmGetByID(ctx context.Context, id int64) (models.Film, error) {
	return p.filmGet(ctx, p.conn(ctx), id, "")
}

func (p *Storage) filmGet(ctx context.Context, q querier, id int64, lock string) (models.Film, error) {
	film, err := scanFilm(q.QueryRowContext(ctx,
		"SELECT "+filmColumns+" FROM films WHERE id = $1"+lock, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Film{}, notFound("film", id)
		}
		return models.Film{}, fmt.Errorf("failed to get film: %w", err)
	}

	rows, err := q.QueryContext(ctx, "SELECT user_id FROM film_likes WHERE film_id = $1", id)
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to query likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return models.Film{}, fmt.Errorf("failed to scan like: %w", err)
		}
		film.UserLikes.Add(userID)
	}
	if err := rows.Err(); err != nil {
		return models.Film{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return film, nil
}

// FilmCreate назначает id = max(id) + 1 внутри транзакции
func (p *Storage) FilmCreate(ctx context.Context, film models.Film) (models.Film, error) {
	var created models.Film

	err := p.WithinTx(ctx, func(ctx context.Context) error {
		row := p.conn(ctx).QueryRowContext(ctx, `
			INSERT INTO films (id, name, description, release_date, duration)
			SELECT COALESCE(MAX(id), 0) + 1, $1::text, $2::text, $3::date, $4::integer FROM films
			RETURNING `+filmColumns,
			film.Name, film.Description, nullDate(film.ReleaseDate), nullPositive(film.Duration),
		)

		var err error
		created, err = scanFilm(row)
		return err
	})
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to insert film: %w", err)
	}

	return created, nil
}

func (p *Storage) FilmUpdate(ctx context.Context, patch models.FilmPatch) (models.Film, error) {
	if patch.ID == nil {
		return models.Film{}, fmt.Errorf("%w: film id is required", models.ErrInvalidData)
	}

	var film models.Film
	err := p.WithinTx(ctx, func(ctx context.Context) error {
		q := p.conn(ctx)

		var err error
		film, err = p.filmGet(ctx, q, *patch.ID, " FOR UPDATE")
		if err != nil {
			return err
		}

		film.Apply(patch)

		_, err = q.ExecContext(ctx, `
			UPDATE films SET name = $2, description = $3, release_date = $4, duration = $5
			WHERE id = $1`,
			film.ID, film.Name, film.Description, nullDate(film.ReleaseDate), nullPositive(film.Duration),
		)
		if err != nil {
			return fmt.Errorf("failed to update film: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Film{}, err
	}

	return film, nil
}

func (p *Storage) FilmDelete(ctx context.Context, id int64) error {
	result, err := p.conn(ctx).ExecContext(ctx, "DELETE FROM films WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound("film", id)
	}
	return nil
}

func (p *Storage) FilmLikeAdd(ctx context.Context, filmID, userID int64) error {
	_, err := p.conn(ctx).ExecContext(ctx, `
		INSERT INTO film_likes (film_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		filmID, userID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: film %d or user %d", models.ErrNotFound, filmID, userID)
		}
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (p *Storage) FilmLikeRemove(ctx context.Context, filmID, userID int64) error {
	q := p.conn(ctx)

	ok, err := exists(ctx, q, "films", filmID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("film", filmID)
	}

	if _, err := q.ExecContext(ctx,
		"DELETE FROM film_likes WHERE film_id = $1 AND user_id = $2", filmID, userID,
	); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (p *Storage) FilmLikeRemoveByUser(ctx context.Context, userID int64) error {
	if _, err := p.conn(ctx).ExecContext(ctx,
		"DELETE FROM film_likes WHERE user_id = $1", userID,
	); err != nil {
		return fmt.Errorf("failed to remove likes: %w", err)
	}
	return nil
}
