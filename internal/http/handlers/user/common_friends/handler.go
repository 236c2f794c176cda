package common_friends

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFriends interface {
	FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

func HandlerCommonFriends(svc ServiceFriends, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}
		otherID, err := httputils.PathID(r, "otherId")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		common, err := svc.FindCommonFriends(r.Context(), userID, otherID)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserResponsesFromDomains(common))
	}
}
