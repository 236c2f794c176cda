package dto

import (
	"fmt"
	"time"

	"filmorate/internal/domain/models"
)

// parseDate разбирает дату YYYY-MM-DD; nil и пустая строка - "не передано"
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	t, err := time.Parse(models.DateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a date in format YYYY-MM-DD, got %q",
			models.ErrInvalidData, field, *raw)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateLayout)
}

func valueOr[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
