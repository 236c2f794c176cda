package middlewares

import (
	"context"
	"net/http"

	"filmorate/internal/http/httputils"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// MiddlewareRequestID берет X-Request-ID из запроса или генерирует UUID v4,
// кладет его в контекст и в заголовок ответа
func MiddlewareRequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(httputils.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(httputils.HeaderRequestID, requestID)

			ctx := context.WithValue(r.Context(), requestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
