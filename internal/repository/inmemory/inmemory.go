package inmemory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"filmorate/internal/domain/models"
	"filmorate/internal/repository"
)

var _ repository.Storage = (*Storage)(nil)

type keyTxType int

const (
	keyTxValue keyTxType = iota
)

// Storage хранит фильмы и пользователей в памяти процесса.
// Каждая операция атомарна сама по себе, WithinTx объединяет
// несколько операций в одну атомарную единицу.
type Storage struct {
	txMu sync.Mutex

	mu    sync.RWMutex
	films map[int64]models.Film
	users map[int64]models.User
}

func NewStorage() *Storage {
	return &Storage{
		films: make(map[int64]models.Film),
		users: make(map[int64]models.User),
	}
}

// WithinTx выполняет fn эксклюзивно относительно других WithinTx.
// Вложенный вызов переиспользует внешнюю "транзакцию".
func (s *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTxValue).(bool); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(context.WithValue(ctx, keyTxValue, true))
}

func (s *Storage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.films = make(map[int64]models.Film)
	s.users = make(map[int64]models.User)
	return nil
}

// nextID - максимальный существующий id + 1, начиная с 1.
// Вызывается под s.mu.
func nextID[T any](m map[int64]T) int64 {
	var maxID int64
	for id := range m {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func sortedValues[T any](m map[int64]T, clone func(T) T) []T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	res := make([]T, 0, len(ids))
	for _, id := range ids {
		res = append(res, clone(m[id]))
	}
	return res
}

func notFound(entity string, id int64) error {
	return fmt.Errorf("%w: %s with id %d", models.ErrNotFound, entity, id)
}
