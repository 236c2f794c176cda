package repository

import (
	"context"

	"filmorate/internal/domain/models"
)

// Storage - полный контракт хранилища фильмов и пользователей.
// Реализации: inmemory.Storage и postgres.Storage.
type (
	Storage interface {
		FilmStorage
		UserStorage

		// Транзакции: вложенный вызов переиспользует внешнюю
		WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

		// Управление соединением
		Ping(ctx context.Context) error
		Close() error
	}

	FilmStorage interface {
		FilmGetAll(ctx context.Context) ([]models.Film, error)
		FilmGetByID(ctx context.Context, id int64) (models.Film, error)
		FilmCreate(ctx context.Context, film models.Film) (models.Film, error)
		FilmUpdate(ctx context.Context, patch models.FilmPatch) (models.Film, error)
		FilmDelete(ctx context.Context, id int64) error

		// Лайки
		FilmLikeAdd(ctx context.Context, filmID, userID int64) error
		FilmLikeRemove(ctx context.Context, filmID, userID int64) error
		FilmLikeRemoveByUser(ctx context.Context, userID int64) error
	}

	UserStorage interface {
		UserGetAll(ctx context.Context) ([]models.User, error)
		UserGetByID(ctx context.Context, id int64) (models.User, error)
		UserCreate(ctx context.Context, user models.User) (models.User, error)
		UserUpdate(ctx context.Context, patch models.UserPatch) (models.User, error)
		UserDelete(ctx context.Context, id int64) error

		// Дружба хранится в одну сторону, симметрию обеспечивает сервис
		UserFriendAdd(ctx context.Context, userID, friendID int64) error
		UserFriendRemove(ctx context.Context, userID, friendID int64) error
	}
)
