package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ repository.Storage = (*Storage)(nil)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const (
	pgErrCodeForeignKeyViolation  = "23503"
	pgErrCodeUniqueViolation      = "23505"
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

// Storage хранит фильмы, пользователей, лайки и дружбу в PostgreSQL
type Storage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Storage{db: db}, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS films (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		description VARCHAR(200) NOT NULL DEFAULT '',
		release_date DATE,
		duration INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY,
		email TEXT NOT NULL,
		login TEXT NOT NULL,
		name TEXT NOT NULL,
		birthday DATE
	)`,
	`CREATE TABLE IF NOT EXISTS film_likes (
		film_id BIGINT NOT NULL REFERENCES films (id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		PRIMARY KEY (film_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS friendships (
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		friend_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, friend_id)
	)`,
}

func createTables(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (p *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *Storage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s with id %d", models.ErrNotFound, entity, id)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation
}

// isRetryable - ошибки, после которых транзакцию можно повторить:
// конфликт сериализации, взаимоблокировка и одинаковый max(id)+1 у параллельных вставок
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeUniqueViolation:
		return true
	}
	return false
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullPositive(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v > 0}
}

// exists проверяет наличие строки с id в таблице table
func exists(ctx context.Context, q querier, table string, id int64) (bool, error) {
	var ok bool
	err := q.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = $1)", id,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return ok, nil
}
