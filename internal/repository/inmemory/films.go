package inmemory

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
)

func (s *Storage) FilmGetAll(ctx context.Context) ([]models.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.films, models.Film.Clone), nil
}

func (s *Storage) FilmGetByID(ctx context.Context, id int64) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return models.Film{}, notFound("film", id)
	}
	return film.Clone(), nil
}

// FilmCreate игнорирует переданный id и назначает следующий свободный
func (s *Storage) FilmCreate(ctx context.Context, film models.Film) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	film = film.Clone()
	film.ID = nextID(s.films)
	s.films[film.ID] = film

	return film.Clone(), nil
}

func (s *Storage) FilmUpdate(ctx context.Context, patch models.FilmPatch) (models.Film, error) {
	if err := ctx.Err(); err != nil {
		return models.Film{}, err
	}
	if patch.ID == nil {
		return models.Film{}, fmt.Errorf("%w: film id is required", models.ErrInvalidData)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[*patch.ID]
	if !ok {
		return models.Film{}, notFound("film", *patch.ID)
	}

	film.Apply(patch)
	s.films[film.ID] = film

	return film.Clone(), nil
}

func (s *Storage) FilmDelete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[id]; !ok {
		return notFound("film", id)
	}
	delete(s.films, id)
	return nil
}

func (s *Storage) FilmLikeAdd(ctx context.Context, filmID, userID int64) error {
	return s.updateLikes(ctx, filmID, func(likes models.IDSet) { likes.Add(userID) })
}

func (s *Storage) FilmLikeRemove(ctx context.Context, filmID, userID int64) error {
	return s.updateLikes(ctx, filmID, func(likes models.IDSet) { likes.Remove(userID) })
}

// FilmLikeRemoveByUser убирает лайки пользователя со всех фильмов
func (s *Storage) FilmLikeRemoveByUser(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, film := range s.films {
		film.UserLikes.Remove(userID)
	}
	return nil
}

func (s *Storage) updateLikes(ctx context.Context, filmID int64, fn func(models.IDSet)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	film, ok := s.films[filmID]
	if !ok {
		return notFound("film", filmID)
	}
	if film.UserLikes == nil {
		film.UserLikes = make(models.IDSet)
		s.films[filmID] = film
	}

	fn(film.UserLikes)
	return nil
}
