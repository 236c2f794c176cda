package get_film

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	FindByID(ctx context.Context, id int64) (models.Film, error)
}

func HandlerGetFilm(svc ServiceFilms, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		film, err := svc.FindByID(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmResponseFromDomain(film))
	}
}
