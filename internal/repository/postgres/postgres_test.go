package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"filmorate/internal/domain/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тесты работают с настоящей базой и запускаются только при TEST_DATABASE_DSN
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	ctx := context.Background()
	s, err := NewStorage(ctx, dsn)
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx, "TRUNCATE film_likes, friendships, films, users")
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ptr[T any](v T) *T {
	return &v
}

func TestStorage_FilmLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	release := time.Date(1999, time.March, 31, 0, 0, 0, 0, time.UTC)
	film, err := s.FilmCreate(ctx, models.Film{ID: 77, Name: "Matrix", ReleaseDate: &release, Duration: 136})
	require.NoError(t, err)
	assert.Equal(t, int64(1), film.ID)

	second, err := s.FilmCreate(ctx, models.Film{Name: "Matrix Reloaded"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Zero(t, second.Duration)
	assert.Nil(t, second.ReleaseDate)

	updated, err := s.FilmUpdate(ctx, models.FilmPatch{ID: ptr(film.ID), Description: ptr("red pill")})
	require.NoError(t, err)
	assert.Equal(t, "Matrix", updated.Name)
	assert.Equal(t, "red pill", updated.Description)
	require.NotNil(t, updated.ReleaseDate)
	assert.Equal(t, release, *updated.ReleaseDate)

	_, err = s.FilmUpdate(ctx, models.FilmPatch{ID: ptr[int64](100)})
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, s.FilmDelete(ctx, second.ID))
	assert.ErrorIs(t, s.FilmDelete(ctx, second.ID), models.ErrNotFound)
}

func TestStorage_LikesAndFriends(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	film, err := s.FilmCreate(ctx, models.Film{Name: "Matrix"})
	require.NoError(t, err)
	neo, err := s.UserCreate(ctx, models.User{Email: "neo@matrix.io", Login: "neo", Name: "neo"})
	require.NoError(t, err)
	trinity, err := s.UserCreate(ctx, models.User{Email: "t@matrix.io", Login: "trinity", Name: "Trinity"})
	require.NoError(t, err)

	require.NoError(t, s.FilmLikeAdd(ctx, film.ID, neo.ID))
	require.NoError(t, s.FilmLikeAdd(ctx, film.ID, neo.ID))
	assert.ErrorIs(t, s.FilmLikeAdd(ctx, 100, neo.ID), models.ErrNotFound)

	got, err := s.FilmGetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{neo.ID}, got.UserLikes.Sorted())

	require.NoError(t, s.UserFriendAdd(ctx, neo.ID, trinity.ID))
	all, err := s.UserGetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{trinity.ID}, all[0].Friends.Sorted())

	updated, err := s.UserUpdate(ctx, models.UserPatch{ID: ptr(neo.ID), Login: ptr("theone")})
	require.NoError(t, err)
	assert.Equal(t, "theone", updated.Name)

	err = s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.FilmLikeRemoveByUser(ctx, neo.ID); err != nil {
			return err
		}
		return s.UserDelete(ctx, neo.ID)
	})
	require.NoError(t, err)

	films, err := s.FilmGetAll(ctx)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Empty(t, films[0].UserLikes)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "duplicate id, wrapped", err: fmt.Errorf("failed to insert film: %w", &pgconn.PgError{Code: pgErrCodeUniqueViolation}), want: true},
		{name: "foreign key", err: &pgconn.PgError{Code: pgErrCodeForeignKeyViolation}},
		{name: "not found", err: models.ErrNotFound},
		{name: "plain error", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestStorage_ConcurrentCreateUniqueIDs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	const n = 8
	var (
		wg   sync.WaitGroup
		errs = make(chan error, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.FilmCreate(ctx, models.Film{Name: "film"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	films, err := s.FilmGetAll(ctx)
	require.NoError(t, err)
	require.Len(t, films, n)
	for i, f := range films {
		assert.Equal(t, int64(i+1), f.ID)
	}
}
