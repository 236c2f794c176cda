package popular

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFilms interface {
	FindPopular(ctx context.Context, count int) ([]models.Film, error)
}

// HandlerPopular - GET /films/popular?count=N, без count используется defaultCount
func HandlerPopular(svc ServiceFilms, defaultCount int, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := defaultCount

		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				httputils.WriteDomainError(w, log,
					fmt.Errorf("%w: count must be an integer, got %q", models.ErrInvalidData, raw))
				return
			}
			count = n
		}

		films, err := svc.FindPopular(r.Context(), count)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FilmResponsesFromDomains(films))
	}
}
