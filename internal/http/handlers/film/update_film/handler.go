package update_film

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	Update(ctx context.Context, patch models.FilmPatch) (models.Film, error)
}

// HandlerUpdateFilm - частичное обновление: отсутствующие в теле поля не меняются
func HandlerUpdateFilm(svc ServiceFilms, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.FilmRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		patch, err := dto.FilmRequestToPatch(req)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		updated, err := svc.Update(r.Context(), patch)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmResponseFromDomain(updated))
	}
}
