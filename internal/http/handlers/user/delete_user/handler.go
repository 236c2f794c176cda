package delete_user

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	Delete(ctx context.Context, id int64) error
}

// HandlerDeleteUser удаляет пользователя вместе с его дружбами и лайками
func HandlerDeleteUser(svc ServiceUsers, log *zerolog.Logger) http.HandlerFunc {
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
