package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type keyTxType int

const (
	keyTxValue keyTxType = iota
)

const (
	txMaxAttempts  = 10
	txRetryBackoff = 5 * time.Millisecond
)

// querier - общее подмножество *sql.DB и *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// conn возвращает транзакцию из контекста, если она есть, иначе пул соединений
func (p *Storage) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyTxValue).(*sql.Tx); ok {
		return tx
	}
	return p.db
}

// WithinTx выполняет fn в serializable-транзакции.
// Если в контексте уже есть транзакция, fn выполняется в ней.
// Конфликт сериализации или гонка за id перезапускают fn целиком,
// не более txMaxAttempts раз, поэтому fn должна быть повторяемой.
func (p *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTxValue).(*sql.Tx); ok {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = p.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryBackoff):
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", err)
}

func (p *Storage) runTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelSerializable,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	ctx = context.WithValue(ctx, keyTxValue, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			_ = tx.Rollback()
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(ctx)
	return
}
