package httputils

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderRequestID       = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

// Категории ошибок в теле ответа
const (
	SummaryValidation = "validation error"
	SummaryNotFound   = "entity not found"
	SummaryInternal   = "internal error"
)
