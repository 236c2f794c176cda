package update_user

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	Update(ctx context.Context, patch models.UserPatch) (models.User, error)
}

func HandlerUpdateUser(svc ServiceUsers, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.UserRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		patch, err := dto.UserRequestToPatch(req)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		updated, err := svc.Update(r.Context(), patch)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserResponseFromDomain(updated))
	}
}
