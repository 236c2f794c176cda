package list_films

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	FindAll(ctx context.Context) ([]models.Film, error)
}

func HandlerListFilms(svc ServiceFilms, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		films, err := svc.FindAll(r.Context())
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmResponsesFromDomains(films))
	}
}
