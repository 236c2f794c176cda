package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"filmorate/internal/http/httputils"

	"github.com/rs/zerolog"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}
			requestID := RequestIDFromContext(r.Context())

			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("request_id", requestID).
				Str("ip", r.RemoteAddr).
				Msg("request started")

			// Перехватываем паники, чтобы залогировать их
			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Str("panic", fmt.Sprintf("%v", err)).
						Str("stack", string(debug.Stack())).
						Str("request_id", requestID).
						Msg("request panic")
					if recorder.statusCode == 0 {
						httputils.WriteJSONError(recorder, http.StatusInternalServerError,
							httputils.SummaryInternal, "unexpected server failure")
					}
				}

				var logEvent *zerolog.Event
				switch {
				case recorder.statusCode >= 500:
					logEvent = log.Error()
				case recorder.statusCode >= 400:
					logEvent = log.Warn()
				default:
					logEvent = log.Info()
				}

				logEvent.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", recorder.statusCode).
					Dur("duration", time.Since(start)).
					Int("bytes", recorder.size).
					Str("request_id", requestID).
					Msg("request completed")
			}()

			next.ServeHTTP(recorder, r)
		})
	}
}
