package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filmorate/internal/domain/models"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDomainError(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name    string
		err     error
		status  int
		summary string
	}{
		{"invalid", fmt.Errorf("%w: name is blank", models.ErrInvalidData), http.StatusBadRequest, SummaryValidation},
		{"not found", fmt.Errorf("wrap: %w", fmt.Errorf("%w: film 1", models.ErrNotFound)), http.StatusNotFound, SummaryNotFound},
		{"other", errors.New("connection refused"), http.StatusInternalServerError, SummaryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteDomainError(rec, &log, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, MIMEApplicationJSON, rec.Header().Get(HeaderContentType))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.summary, body.Summary)
			assert.Equal(t, tt.err.Error(), body.Detail)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Matrix"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Matrix", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.ErrorIs(t, DecodeJSON(r, &dst), models.ErrInvalidData)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "7", want: 7},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})

			id, err := PathID(r, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidData)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
