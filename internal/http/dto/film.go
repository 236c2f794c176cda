package dto

import (
	"fmt"

	"filmorate/internal/domain/models"
)

// Request
type FilmRequest struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ReleaseDate *string `json:"releaseDate"`
	Duration    *int    `json:"duration"`
}

// Response
type FilmResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ReleaseDate string  `json:"releaseDate,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	UserLikes   []int64 `json:"userLikes"`
}

// Request → Domain. Переданный id при создании игнорируется хранилищем.
func FilmRequestToDomain(r FilmRequest) (models.Film, error) {
	releaseDate, err := parseDate("releaseDate", r.ReleaseDate)
	if err != nil {
		return models.Film{}, err
	}

	// нулевая длительность в модели значит "не задана", поэтому явный 0 отсекаем здесь
	if r.Duration != nil && *r.Duration <= 0 {
		return models.Film{}, fmt.Errorf("%w: duration must be positive, got %d",
			models.ErrInvalidData, *r.Duration)
	}

	return models.Film{
		ID:          valueOr(r.ID),
		Name:        valueOr(r.Name),
		Description: valueOr(r.Description),
		ReleaseDate: releaseDate,
		Duration:    valueOr(r.Duration),
	}, nil
}

func FilmRequestToPatch(r FilmRequest) (models.FilmPatch, error) {
	releaseDate, err := parseDate("releaseDate", r.ReleaseDate)
	if err != nil {
		return models.FilmPatch{}, err
	}

	return models.FilmPatch{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: releaseDate,
		Duration:    r.Duration,
	}, nil
}

// Domain → Response
func FilmResponseFromDomain(f models.Film) FilmResponse {
	return FilmResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		ReleaseDate: formatDate(f.ReleaseDate),
		Duration:    f.Duration,
		UserLikes:   f.UserLikes.Sorted(),
	}
}

func FilmResponsesFromDomains(films []models.Film) []FilmResponse {
	res := make([]FilmResponse, len(films))
	for i, f := range films {
		res[i] = FilmResponseFromDomain(f)
	}
	return res
}
