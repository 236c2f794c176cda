package friends

import (
	"context"
	"net/http"

	"filmorate/internal/domain/models"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServiceFriends interface {
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	FindFriends(ctx context.Context, userID int64) ([]models.User, error)
}

func HandlerAddFriend(svc ServiceFriends, log *zerolog.Logger) http.HandlerFunc {
	return handlePair(log, svc.AddFriend)
}

func HandlerRemoveFriend(svc ServiceFriends, log *zerolog.Logger) http.HandlerFunc {
	return handlePair(log, svc.RemoveFriend)
}

func HandlerListFriends(svc ServiceFriends, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		friends, err := svc.FindFriends(r.Context(), id)
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.UserResponsesFromDomains(friends))
	}
}

func handlePair(log *zerolog.Logger, op func(ctx context.Context, userID, friendID int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.PathID(r, "id")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}
		friendID, err := httputils.PathID(r, "friendId")
		if err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		if err := op(r.Context(), userID, friendID); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
