package like

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceLikes interface {
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
}

func HandlerAddLike(svc ServiceLikes, log *zerolog.Logger) http.HandlerFunc {
	return handle(log, svc.AddLike)
}

func HandlerRemoveLike(svc ServiceLikes, log *zerolog.Logger) http.HandlerFunc {
	return handle(log, svc.RemoveLike)
}

func handle(log *zerolog.Logger, op func(ctx context.Context, filmID, userID int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filmID, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}
		userID, err := httputils.PathID(r, "userId")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		if err := op(r.Context(), filmID, userID); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
