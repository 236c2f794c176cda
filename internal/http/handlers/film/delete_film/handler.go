package delete_film

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	Delete(ctx context.Context, id int64) error
}

func HandlerDeleteFilm(svc ServiceFilms, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
