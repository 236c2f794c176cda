package ping

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type ServicePing interface {
	PingDataBase(ctx context.Context) error
}

func HandlerPing(svc ServicePing, log *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.PingDataBase(r.Context()); err != nil {
			httputils.WriteDomainError(w, log, err)
			return
		}

		w.Header().Set(httputils.HeaderContentType, httputils.MIMETextPlain)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
