package inmemory

import (
	"context"
	"fmt"

	"filmorate/internal/domain/models"
)

func (s *Storage) UserGetAll(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedValues(s.users, models.User.Clone), nil
}

func (s *Storage) UserGetByID(ctx context.Context, id int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, notFound("user", id)
	}
	return user.Clone(), nil
}

func (s *Storage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user = user.Clone()
	user.ID = nextID(s.users)
	s.users[user.ID] = user

	return user.Clone(), nil
}

func (s *Storage) UserUpdate(ctx context.Context, patch models.UserPatch) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if patch.ID == nil {
		return models.User{}, fmt.Errorf("%w: user id is required", models.ErrInvalidData)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[*patch.ID]
	if !ok {
		return models.User{}, notFound("user", *patch.ID)
	}

	user.Apply(patch)
	s.users[user.ID] = user

	return user.Clone(), nil
}

func (s *Storage) UserDelete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return notFound("user", id)
	}
	delete(s.users, id)
	return nil
}

// UserFriendAdd добавляет friendID в друзья userID (только в одну сторону)
func (s *Storage) UserFriendAdd(ctx context.Context, userID, friendID int64) error {
	return s.updateFriends(ctx, userID, func(friends models.IDSet) { friends.Add(friendID) })
}

func (s *Storage) UserFriendRemove(ctx context.Context, userID, friendID int64) error {
	return s.updateFriends(ctx, userID, func(friends models.IDSet) { friends.Remove(friendID) })
}

func (s *Storage) updateFriends(ctx context.Context, userID int64, fn func(models.IDSet)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return notFound("user", userID)
	}
	if user.Friends == nil {
		user.Friends = make(models.IDSet)
		s.users[userID] = user
	}

	fn(user.Friends)
	return nil
}
