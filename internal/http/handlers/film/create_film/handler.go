package create_film

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	Create(ctx context.Context, film models.Film) (models.Film, error)
}

func HandlerCreateFilm(svc ServiceFilms, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.FilmRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		film, err := dto.FilmRequestToDomain(req)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		created, err := svc.Create(r.Context(), film)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.FilmResponseFromDomain(created))
	}
}
