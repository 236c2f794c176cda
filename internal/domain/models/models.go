package models

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrInvalidData = errors.New("invalid input data")
	ErrNotFound    = errors.New("entity not found")
)

// DateLayout - формат дат в запросах и ответах
const DateLayout = "2006-01-02"

type (
	Film struct {
		ID          int64
		Name        string
		Description string
		ReleaseDate *time.Time // nil - дата не указана
		Duration    int        // минуты, 0 - не указана
		UserLikes   IDSet
	}

	User struct {
		ID       int64
		Email    string
		Login    string
		Name     string
		Birthday *time.Time // nil - дата не указана
		Friends  IDSet
	}
)

// FilmPatch - частичное обновление фильма, nil означает "поле не передано"
type FilmPatch struct {
	ID          *int64
	Name        *string
	Description *string
	ReleaseDate *time.Time
	Duration    *int
}

// UserPatch - частичное обновление пользователя
type UserPatch struct {
	ID       *int64
	Email    *string
	Login    *string
	Name     *string
	Birthday *time.Time
}

// IDSet - множество идентификаторов (лайки, друзья)
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Add(id int64) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id int64) {
	delete(s, id)
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Sorted возвращает идентификаторы по возрастанию
func (s IDSet) Sorted() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Intersect возвращает идентификаторы, присутствующие в обоих множествах
func (s IDSet) Intersect(other IDSet) IDSet {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}

	res := make(IDSet)
	for id := range small {
		if big.Has(id) {
			res.Add(id)
		}
	}
	return res
}

// Clone возвращает копию фильма, не разделяющую множество лайков
func (f Film) Clone() Film {
	f.UserLikes = f.UserLikes.Clone()
	f.ReleaseDate = cloneTime(f.ReleaseDate)
	return f
}

func (u User) Clone() User {
	u.Friends = u.Friends.Clone()
	u.Birthday = cloneTime(u.Birthday)
	return u
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Apply переносит в фильм только переданные поля патча.
// Патч должен быть провалидирован заранее.
func (f *Film) Apply(p FilmPatch) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.ReleaseDate != nil {
		f.ReleaseDate = cloneTime(p.ReleaseDate)
	}
	if p.Duration != nil {
		f.Duration = *p.Duration
	}
}

// FillDefaults подставляет login вместо пустого имени при создании
func (u *User) FillDefaults() {
	if isBlank(u.Name) {
		u.Name = u.Login
	}
	if u.Friends == nil {
		u.Friends = make(IDSet)
	}
}

// Apply переносит в пользователя переданные поля патча.
// Пока имя совпадает с логином (не было изменено пользователем),
// оно следует за новым логином. Сравнение идет по значениям до обновления.
func (u *User) Apply(p UserPatch) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Login != nil {
		if u.Name == u.Login {
			u.Name = *p.Login
		}
		u.Login = *p.Login
	}
	if p.Birthday != nil {
		u.Birthday = cloneTime(p.Birthday)
	}
	if p.Name != nil && !isBlank(*p.Name) {
		u.Name = *p.Name
	}
}
