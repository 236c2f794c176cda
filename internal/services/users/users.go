package users

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/domain/models"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../../mocks/mock_user_storage.go -package=mocks filmorate/internal/services/users UserStorage,LikeStorage
type UserStorage interface {
	UserGetAll(ctx context.Context) ([]models.User, error)
	UserGetByID(ctx context.Context, id int64) (models.User, error)
	UserCreate(ctx context.Context, user models.User) (models.User, error)
	UserUpdate(ctx context.Context, patch models.UserPatch) (models.User, error)
	UserDelete(ctx context.Context, id int64) error
	UserFriendAdd(ctx context.Context, userID, friendID int64) error
	UserFriendRemove(ctx context.Context, userID, friendID int64) error

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LikeStorage нужен для очистки лайков при удалении пользователя
type LikeStorage interface {
	FilmLikeRemoveByUser(ctx context.Context, userID int64) error
}

// Service реализует операции над пользователями и дружбой.
// Дружба симметрична: сервис всегда обновляет обе стороны.
type Service struct {
	users UserStorage
	likes LikeStorage
	log   *zerolog.Logger
}

func NewService(users UserStorage, likes LikeStorage, log *zerolog.Logger) *Service {
	return &Service{
		users: users,
		likes: likes,
		log:   log,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.users.UserGetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (models.User, error) {
	if err := models.ValidateID(id); err != nil {
		return models.User{}, err
	}

	user, err := s.users.UserGetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Create подставляет login в качестве имени, если имя не задано
func (s *Service) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}
	user.FillDefaults()

	created, err := s.users.UserCreate(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().
		Int64("user_id", created.ID).
		Str("login", created.Login).
		Msg("user created")
	return created, nil
}

func (s *Service) Update(ctx context.Context, patch models.UserPatch) (models.User, error) {
	if err := patch.Validate(); err != nil {
		return models.User{}, err
	}

	updated, err := s.users.UserUpdate(ctx, patch)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.log.Debug().Int64("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete удаляет пользователя вместе с его связями: он пропадает
// из списков друзей и из лайков фильмов
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := models.ValidateID(id); err != nil {
		return err
	}

	err := s.users.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.users.UserGetByID(ctx, id)
		if err != nil {
			return err
		}

		for _, friendID := range user.Friends.Sorted() {
			err := s.users.UserFriendRemove(ctx, friendID, id)
			if err != nil && !errors.Is(err, models.ErrNotFound) {
				return err
			}
		}

		if err := s.likes.FilmLikeRemoveByUser(ctx, id); err != nil {
			return err
		}

		return s.users.UserDelete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// AddFriend связывает пользователей в обе стороны. Дружба с самим собой запрещена,
// но сначала проверяется существование: для неизвестного id ответ ErrNotFound.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	err := s.withBoth(ctx, userID, friendID, func(ctx context.Context) error {
		if userID == friendID {
			return fmt.Errorf("%w: user %d cannot befriend themselves", models.ErrInvalidData, userID)
		}
		if err := s.users.UserFriendAdd(ctx, userID, friendID); err != nil {
			return err
		}
		return s.users.UserFriendAdd(ctx, friendID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to add friend: %w", err)
	}

	s.log.Debug().
		Int64("user_id", userID).
		Int64("friend_id", friendID).
		Msg("friendship added")
	return nil
}

func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	err := s.withBoth(ctx, userID, friendID, func(ctx context.Context) error {
		if err := s.users.UserFriendRemove(ctx, userID, friendID); err != nil {
			return err
		}
		return s.users.UserFriendRemove(ctx, friendID, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove friend: %w", err)
	}

	s.log.Debug().
		Int64("user_id", userID).
		Int64("friend_id", friendID).
		Msg("friendship removed")
	return nil
}

// FindFriends возвращает друзей пользователя по возрастанию id
func (s *Service) FindFriends(ctx context.Context, userID int64) ([]models.User, error) {
	if err := models.ValidateID(userID); err != nil {
		return nil, err
	}

	user, err := s.users.UserGetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	friends, err := s.resolve(ctx, user.Friends)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	return friends, nil
}

// FindCommonFriends возвращает пересечение списков друзей двух пользователей
func (s *Service) FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	if err := errors.Join(models.ValidateID(userID), models.ValidateID(otherID)); err != nil {
		return nil, err
	}

	user, err := s.users.UserGetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	other, err := s.users.UserGetByID(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	common, err := s.resolve(ctx, user.Friends.Intersect(other.Friends))
	if err != nil {
		return nil, fmt.Errorf("failed to get common friends: %w", err)
	}
	return common, nil
}

// resolve превращает множество id в список пользователей.
// Висячий id (пользователь удален в обход сервиса) дает ErrNotFound.
func (s *Service) resolve(ctx context.Context, ids models.IDSet) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids.Sorted() {
		user, err := s.users.UserGetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Service) withBoth(ctx context.Context, userID, friendID int64, fn func(ctx context.Context) error) error {
	if err := errors.Join(models.ValidateID(userID), models.ValidateID(friendID)); err != nil {
		return err
	}

	return s.users.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.UserGetByID(ctx, userID); err != nil {
			return err
		}
		if _, err := s.users.UserGetByID(ctx, friendID); err != nil {
			return err
		}
		return fn(ctx)
	})
}
