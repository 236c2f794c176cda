package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmorate/internal/domain/models"
)

const userColumns = "id, email, login, name, birthday"

func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var (
		user     models.User
		birthday sql.NullTime
	)

	if err := row.Scan(&user.ID, &user.Email, &user.Login, &user.Name, &birthday); err != nil {
		return models.User{}, err
	}

	if birthday.Valid {
		t := birthday.Time.UTC()
		user.Birthday = &t
	}
	user.Friends = make(models.IDSet)
	return user, nil
}

func (p *Storage) UserGetAll(ctx context.Context) ([]models.User, error) {
	q := p.conn(ctx)

	rows, err := q.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var (
		users []models.User
		index = make(map[int64]int)
	)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		index[user.ID] = len(users)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	friendRows, err := q.QueryContext(ctx, "SELECT user_id, friend_id FROM friendships")
	if err != nil {
		return nil, fmt.Errorf("failed to query friendships: %w", err)
	}
	defer friendRows.Close()

	for friendRows.Next() {
		var userID, friendID int64
		if err := friendRows.Scan(&userID, &friendID); err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		if i, ok := index[userID]; ok {
			users[i].Friends.Add(friendID)
		}
	}
	if err := friendRows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (p *Storage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	return p.userGet(ctx, p.conn(ctx), id, "")
}

func (p *Storage) userGet(ctx context.Context, q querier, id int64, lock string) (models.User, error) {
	user, err := scanUser(q.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1"+lock, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, notFound("user", id)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	rows, err := q.QueryContext(ctx, "SELECT friend_id FROM friendships WHERE user_id = $1", id)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query friendships: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var friendID int64
		if err := rows.Scan(&friendID); err != nil {
			return models.User{}, fmt.Errorf("failed to scan friendship: %w", err)
		}
		user.Friends.Add(friendID)
	}
	if err := rows.Err(); err != nil {
		return models.User{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return user, nil
}

func (p *Storage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	err := p.WithinTx(ctx, func(ctx context.Context) error {
		row := p.conn(ctx).QueryRowContext(ctx, `
			INSERT INTO users (id, email, login, name, birthday)
			SELECT COALESCE(MAX(id), 0) + 1, $1::text, $2::text, $3::text, $4::date FROM users
			RETURNING `+userColumns,
			user.Email, user.Login, user.Name, nullDate(user.Birthday),
		)

		var err error
		created, err = scanUser(row)
		return err
	})
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (p *Storage) UserUpdate(ctx context.Context, patch models.UserPatch) (models.User, error) {
	if patch.ID == nil {
		return models.User{}, fmt.Errorf("%w: user id is required", models.ErrInvalidData)
	}

	var user models.User
	err := p.WithinTx(ctx, func(ctx context.Context) error {
		q := p.conn(ctx)

		var err error
		user, err = p.userGet(ctx, q, *patch.ID, " FOR UPDATE")
		if err != nil {
			return err
		}

		user.Apply(patch)

		_, err = q.ExecContext(ctx, `
			UPDATE users SET email = $2, login = $3, name = $4, birthday = $5
			WHERE id = $1`,
			user.ID, user.Email, user.Login, user.Name, nullDate(user.Birthday),
		)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (p *Storage) UserDelete(ctx context.Context, id int64) error {
	result, err := p.conn(ctx).ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound("user", id)
	}
	return nil
}

// UserFriendAdd добавляет связь userID -> friendID, обратную связь добавляет сервис
func (p *Storage) UserFriendAdd(ctx context.Context, userID, friendID int64) error {
	_, err := p.conn(ctx).ExecContext(ctx, `
		INSERT INTO friendships (user_id, friend_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		userID, friendID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %d or %d", models.ErrNotFound, userID, friendID)
		}
		return fmt.Errorf("failed to add friend: %w", err)
	}
	return nil
}

func (p *Storage) UserFriendRemove(ctx context.Context, userID, friendID int64) error {
	q := p.conn(ctx)

	ok, err := exists(ctx, q, "users", userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("user", userID)
	}

	if _, err := q.ExecContext(ctx,
		"DELETE FROM friendships WHERE user_id = $1 AND friend_id = $2", userID, friendID,
	); err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}
	return nil
}
