package films

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"filmorate/internal/domain/models"

	"github.com/rs/zerolog"
)

/*
FilmStorage - хранилище фильмов, UserStorage - то, что сервису
фильмов нужно знать о пользователях (только проверка существования)
*/

//go:generate mockgen -destination=../../mocks/mock_film_storage.go -package=mocks filmorate/internal/services/films FilmStorage
type FilmStorage interface {
	FilmGetAll(ctx context.Context) ([]models.Film, error)
	FilmGetByID(ctx context.Context, id int64) (models.Film, error)
	FilmCreate(ctx context.Context, film models.Film) (models.Film, error)
	FilmUpdate(ctx context.Context, patch models.FilmPatch) (models.Film, error)
	FilmDelete(ctx context.Context, id int64) error
	FilmLikeAdd(ctx context.Context, filmID, userID int64) error
	FilmLikeRemove(ctx context.Context, filmID, userID int64) error
	Ping(ctx context.Context) error

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserStorage interface {
	UserGetByID(ctx context.Context, id int64) (models.User, error)
}

// Service реализует операции над фильмами и лайками
type Service struct {
	films FilmStorage
	users UserStorage
	log   *zerolog.Logger
}

func NewService(films FilmStorage, users UserStorage, log *zerolog.Logger) *Service {
	return &Service{
		films: films,
		users: users,
		log:   log,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]models.Film, error) {
	films, err := s.films.FilmGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get films: %w", err)
	}
	return films, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (models.Film, error) {
	if err := models.ValidateID(id); err != nil {
		return models.Film{}, err
	}

	film, err := s.films.FilmGetByID(ctx, id)
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to get film: %w", err)
	}
	return film, nil
}

func (s *Service) Create(ctx context.Context, film models.Film) (models.Film, error) {
	if err := film.Validate(); err != nil {
		return models.Film{}, err
	}

	created, err := s.films.FilmCreate(ctx, film)
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to create film: %w", err)
	}

	s.log.Info().
		Int64("film_id", created.ID).
		Str("name", created.Name).
		Msg("film created")
	return created, nil
}

// Update применяет частичное обновление: поля, не переданные в патче, не меняются
func (s *Service) Update(ctx context.Context, patch models.FilmPatch) (models.Film, error) {
	if err := patch.Validate(); err != nil {
		return models.Film{}, err
	}

	updated, err := s.films.FilmUpdate(ctx, patch)
	if err != nil {
		return models.Film{}, fmt.Errorf("failed to update film: %w", err)
	}

	s.log.Debug().Int64("film_id", updated.ID).Msg("film updated")
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := models.ValidateID(id); err != nil {
		return err
	}

	if err := s.films.FilmDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete film: %w", err)
	}

	s.log.Info().Int64("film_id", id).Msg("film deleted")
	return nil
}

// AddLike идемпотентна: повторный лайк ничего не меняет
func (s *Service) AddLike(ctx context.Context, filmID, userID int64) error {
	err := s.withFilmAndUser(ctx, filmID, userID, func(ctx context.Context) error {
		return s.films.FilmLikeAdd(ctx, filmID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}

	s.log.Debug().
		Int64("film_id", filmID).
		Int64("user_id", userID).
		Msg("like added")
	return nil
}

func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) error {
	err := s.withFilmAndUser(ctx, filmID, userID, func(ctx context.Context) error {
		return s.films.FilmLikeRemove(ctx, filmID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	s.log.Debug().
		Int64("film_id", filmID).
		Int64("user_id", userID).
		Msg("like removed")
	return nil
}

// FindPopular возвращает count фильмов с наибольшим числом лайков.
// При равном числе лайков фильмы упорядочены по возрастанию id.
func (s *Service) FindPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", models.ErrInvalidData, count)
	}

	films, err := s.films.FilmGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get films: %w", err)
	}

	slices.SortFunc(films, func(a, b models.Film) int {
		if c := cmp.Compare(len(b.UserLikes), len(a.UserLikes)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(films) > count {
		films = films[:count]
	}
	return films, nil
}

// PingDataBase проверяет соединение с хранилищем
func (s *Service) PingDataBase(ctx context.Context) error {
	if err := s.films.Ping(ctx); err != nil {
		return fmt.Errorf("storage ping failed: %w", err)
	}
	return nil
}

func (s *Service) withFilmAndUser(ctx context.Context, filmID, userID int64, fn func(ctx context.Context) error) error {
	if err := errors.Join(models.ValidateID(filmID), models.ValidateID(userID)); err != nil {
		return err
	}

	return s.films.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.films.FilmGetByID(ctx, filmID); err != nil {
			return err
		}
		if _, err := s.users.UserGetByID(ctx, userID); err != nil {
			return err
		}
		return fn(ctx)
	})
}
