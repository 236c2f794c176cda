package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const MaxDescriptionLength = 200

// FilmBirthday - дата первого публичного киносеанса, раньше релиз быть не может
var FilmBirthday = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// now подменяется в тестах
var now = time.Now

// Validate проверяет фильм перед созданием.
// Возвращает все найденные нарушения, обернутые в ErrInvalidData.
func (f Film) Validate() error {
	var errs []error

	errs = appendErr(errs, validateFilmName(f.Name))
	errs = appendErr(errs, validateDescription(f.Description))
	if f.ReleaseDate != nil {
		errs = appendErr(errs, validateReleaseDate(*f.ReleaseDate))
	}
	if f.Duration != 0 {
		errs = appendErr(errs, validateDuration(f.Duration))
	}

	return joinInvalid(errs)
}

// Validate проверяет патч фильма: id обязателен, остальные поля - если переданы
func (p FilmPatch) Validate() error {
	var errs []error

	errs = appendErr(errs, validatePatchID(p.ID, "film"))
	if p.Name != nil {
		errs = appendErr(errs, validateFilmName(*p.Name))
	}
	if p.Description != nil {
		errs = appendErr(errs, validateDescription(*p.Description))
	}
	if p.ReleaseDate != nil {
		errs = appendErr(errs, validateReleaseDate(*p.ReleaseDate))
	}
	if p.Duration != nil {
		errs = appendErr(errs, validateDuration(*p.Duration))
	}

	return joinInvalid(errs)
}

func (u User) Validate() error {
	var errs []error

	errs = appendErr(errs, validateEmail(u.Email))
	errs = appendErr(errs, validateLogin(u.Login))
	if u.Birthday != nil {
		errs = appendErr(errs, validateBirthday(*u.Birthday))
	}

	return joinInvalid(errs)
}

func (p UserPatch) Validate() error {
	var errs []error

	errs = appendErr(errs, validatePatchID(p.ID, "user"))
	if p.Email != nil {
		errs = appendErr(errs, validateEmail(*p.Email))
	}
	if p.Login != nil {
		errs = appendErr(errs, validateLogin(*p.Login))
	}
	if p.Birthday != nil {
		errs = appendErr(errs, validateBirthday(*p.Birthday))
	}

	return joinInvalid(errs)
}

// ValidateID проверяет идентификатор из пути запроса
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidData, id)
	}
	return nil
}

func validatePatchID(id *int64, entity string) error {
	if id == nil {
		return fmt.Errorf("%s id is required", entity)
	}
	if *id <= 0 {
		return fmt.Errorf("%s id must be positive", entity)
	}
	return nil
}

func validateFilmName(name string) error {
	if isBlank(name) {
		return errors.New("film name must not be blank")
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description must be at most %d characters", MaxDescriptionLength)
	}
	return nil
}

func validateReleaseDate(date time.Time) error {
	if date.Before(FilmBirthday) {
		return fmt.Errorf("release date must not be before %s", FilmBirthday.Format(DateLayout))
	}
	return nil
}

func validateDuration(duration int) error {
	if duration <= 0 {
		return errors.New("duration must be positive")
	}
	return nil
}

func validateEmail(email string) error {
	if isBlank(email) {
		return errors.New("email must not be blank")
	}
	if !strings.Contains(email, "@") {
		return errors.New(`email must contain "@"`)
	}
	return nil
}

func validateLogin(login string) error {
	if isBlank(login) {
		return errors.New("login must not be blank")
	}
	if strings.IndexFunc(login, unicode.IsSpace) >= 0 {
		return errors.New("login must not contain whitespace")
	}
	return nil
}

func validateBirthday(birthday time.Time) error {
	y, m, d := now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if birthday.After(today) {
		return errors.New("birthday must not be in the future")
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func appendErr(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}

func joinInvalid(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidData, strings.Join(msgs, "; "))
}
