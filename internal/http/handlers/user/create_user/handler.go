package create_user

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceUsers interface {
	Create(ctx context.Context, user models.User) (models.User, error)
}

func HandlerCreateUser(svc ServiceUsers, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.UserRequest
		if err := httputils.DecodeJSON(r, &req); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		user, err := dto.UserRequestToDomain(req)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		created, err := svc.Create(r.Context(), user)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusCreated, dto.UserResponseFromDomain(created))
	}
}
