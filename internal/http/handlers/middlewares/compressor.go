package middlewares

import (
	"compress/gzip"
	"net/http"
	"strings"

	"filmorate/internal/http/httputils"
)

// MiddlewareCompressing возвращает middleware для gzip сжатия/распаковки
func MiddlewareCompressing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gz, err := decompressRequest(r)
			if err != nil {
				httputils.WriteJSONError(w, http.StatusBadRequest,
					httputils.SummaryValidation, "invalid gzip data")
				return
			}
			if gz != nil {
				defer gz.Close()
			}

			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.Close()

			next.ServeHTTP(gw, r)
		})
	}
}

// decompressRequest подменяет тело запроса распакованным; nil - тело не сжато
func decompressRequest(r *http.Request) (*gzip.Reader, error) {
	if !strings.Contains(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
		return nil, nil
	}

	gz, err := gzip.NewReader(r.Body)
	if err != nil {
		return nil, err
	}
	r.Body = gz
	r.Header.Del(httputils.HeaderContentEncoding)
	return gz, nil
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get(httputils.HeaderAcceptEncoding), httputils.EncodingGzip)
}

// gzipResponseWriter создает gzip.Writer только при первой записи тела,
// ответы без тела (204) уходят как есть
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w.Header().Del(httputils.HeaderContentLength)
		w.gz = gzip.NewWriter(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.gz == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	return w.gz.Close()
}
