package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"filmorate/internal/domain/models"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Status  int    `json:"status"`
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteJSONError(w http.ResponseWriter, status int, summary, detail string) {
	WriteJSONResponse(w, status, ErrorResponse{
		Status:  status,
		Summary: summary,
		Detail:  detail,
	})
}

// WriteDomainError переводит ошибку сервиса в HTTP-статус:
// ErrInvalidData - 400, ErrNotFound - 404, все остальное - 500
func WriteDomainError(w http.ResponseWriter, log *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidData):
		log.Warn().Err(err).Msg(SummaryValidation)
		WriteJSONError(w, http.StatusBadRequest, SummaryValidation, err.Error())
	case errors.Is(err, models.ErrNotFound):
		log.Warn().Err(err).Msg(SummaryNotFound)
		WriteJSONError(w, http.StatusNotFound, SummaryNotFound, err.Error())
	default:
		log.Error().Err(err).Msg(SummaryInternal)
		WriteJSONError(w, http.StatusInternalServerError, SummaryInternal, err.Error())
	}
}

// DecodeJSON читает тело запроса; ошибки разбора считаются ошибками валидации
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", models.ErrInvalidData, err)
	}
	return nil
}

// PathID достает положительный int64 из переменной пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: path parameter %s must be an integer, got %q", models.ErrInvalidData, name, raw)
	}
	if err := models.ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}
