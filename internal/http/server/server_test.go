package server

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"filmorate/internal/config"
	"filmorate/internal/http/dto"
	"filmorate/internal/http/httputils"
	"filmorate/internal/repository/inmemory"
	"filmorate/internal/services/films"
	"filmorate/internal/services/users"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	log := zerolog.Nop()
	store := inmemory.NewStorage()
	cfg := config.Config{ServerAddress: "localhost:0", PopularDefaultCount: 10}

	srv, err := NewServer(&log, cfg, films.NewService(store, store, &log), users.NewService(store, store, &log))
	require.NoError(t, err)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createUser(t *testing.T, h http.Handler, login string) dto.UserResponse {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/users",
		`{"email":"`+login+`@mail.ru","login":"`+login+`","birthday":"1990-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.UserResponse](t, rec)
}

func createFilm(t *testing.T, h http.Handler, name string) dto.FilmResponse {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/films",
		`{"name":"`+name+`","description":"d","releaseDate":"2000-01-01","duration":100}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.FilmResponse](t, rec)
}

func TestNewServer_Validation(t *testing.T) {
	log := zerolog.Nop()
	store := inmemory.NewStorage()
	filmService := films.NewService(store, store, &log)
	userService := users.NewService(store, store, &log)

	_, err := NewServer(&log, config.Config{}, filmService, userService)
	assert.Error(t, err)

	_, err = NewServer(nil, config.Config{ServerAddress: "localhost:0"}, filmService, userService)
	assert.Error(t, err)

	_, err = NewServer(&log, config.Config{ServerAddress: "localhost:0"}, nil, userService)
	assert.Error(t, err)
}

func TestServer_FilmsCRUD(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/films", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	film := createFilm(t, h, "Matrix")
	assert.Equal(t, int64(1), film.ID)
	assert.Equal(t, "2000-01-01", film.ReleaseDate)
	assert.Empty(t, film.UserLikes)

	rec = do(t, h, http.MethodPut, "/films", `{"id":1,"description":"updated"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.FilmResponse](t, rec)
	assert.Equal(t, "Matrix", updated.Name)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, 100, updated.Duration)

	rec = do(t, h, http.MethodGet, "/films/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, updated, decode[dto.FilmResponse](t, rec))

	rec = do(t, h, http.MethodDelete, "/films/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/films/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_FilmValidation(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{name: "blank name", method: http.MethodPost, body: `{"name":"  "}`, status: http.StatusBadRequest},
		{name: "long description", method: http.MethodPost, body: `{"name":"a","description":"` + strings.Repeat("x", 201) + `"}`, status: http.StatusBadRequest},
		{name: "too early", method: http.MethodPost, body: `{"name":"a","releaseDate":"1895-12-27"}`, status: http.StatusBadRequest},
		{name: "first screening", method: http.MethodPost, body: `{"name":"a","releaseDate":"1895-12-28"}`, status: http.StatusCreated},
		{name: "zero duration", method: http.MethodPost, body: `{"name":"a","duration":0}`, status: http.StatusBadRequest},
		{name: "bad date format", method: http.MethodPost, body: `{"name":"a","releaseDate":"28.12.1895"}`, status: http.StatusBadRequest},
		{name: "malformed json", method: http.MethodPost, body: `{"name":`, status: http.StatusBadRequest},
		{name: "update without id", method: http.MethodPut, body: `{"name":"a"}`, status: http.StatusBadRequest},
		{name: "update unknown", method: http.MethodPut, body: `{"id":999,"name":"a"}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, "/films", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestServer_ErrorBody(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/films/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[httputils.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, httputils.SummaryNotFound, body.Summary)
	assert.Contains(t, body.Detail, "42")

	rec = do(t, h, http.MethodGet, "/films/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = decode[httputils.ErrorResponse](t, rec)
	assert.Equal(t, httputils.SummaryValidation, body.Summary)

	rec = do(t, h, http.MethodGet, "/users/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPatch, "/films", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body = decode[httputils.ErrorResponse](t, rec)
	assert.Equal(t, http.StatusMethodNotAllowed, body.Status)

	rec = do(t, h, http.MethodPost, "/users/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_FallbacksPassMiddlewares(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(httputils.HeaderRequestID))
	body := decode[httputils.ErrorResponse](t, rec)
	assert.Equal(t, httputils.SummaryNotFound, body.Summary)

	rec = do(t, h, http.MethodPatch, "/users", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(httputils.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/films/1/unknown", nil)
	req.Header.Set(httputils.HeaderAcceptEncoding, httputils.EncodingGzip)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, httputils.EncodingGzip, rec.Header().Get(httputils.HeaderContentEncoding))
}

func TestServer_ZeroDates(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/films", `{"name":"a","releaseDate":"0001-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	film := createFilm(t, h, "Matrix")
	rec = do(t, h, http.MethodPut, "/films", `{"id":`+strconv.FormatInt(film.ID, 10)+`,"releaseDate":"0001-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/users", `{"email":"old@mail.ru","login":"old","birthday":"0001-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	user := decode[dto.UserResponse](t, rec)
	assert.Equal(t, "0001-01-01", user.Birthday)

	rec = do(t, h, http.MethodGet, "/users/"+strconv.FormatInt(user.ID, 10), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0001-01-01", decode[dto.UserResponse](t, rec).Birthday)
}

func TestServer_Likes(t *testing.T) {
	h := newTestServer(t)

	film := createFilm(t, h, "Matrix")
	user := createUser(t, h, "neo")

	rec := do(t, h, http.MethodPut, "/films/1/like/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodPut, "/films/1/like/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/films/1", "")
	got := decode[dto.FilmResponse](t, rec)
	assert.Equal(t, []int64{user.ID}, got.UserLikes)

	rec = do(t, h, http.MethodPut, "/films/1/like/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodDelete, "/films/99/like/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/films/1/like/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/films/1", "")
	got = decode[dto.FilmResponse](t, rec)
	assert.Equal(t, film.ID, got.ID)
	assert.Empty(t, got.UserLikes)
}

func TestServer_Popular(t *testing.T) {
	h := newTestServer(t)

	for _, name := range []string{"A", "B", "C"} {
		createFilm(t, h, name)
	}
	for _, login := range []string{"u1", "u2"} {
		createUser(t, h, login)
	}

	// B: 2 лайка, C: 1, A: 0
	for _, path := range []string{"/films/2/like/1", "/films/2/like/2", "/films/3/like/1"} {
		require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, path, "").Code)
	}

	rec := do(t, h, http.MethodGet, "/films/popular", "")
	require.Equal(t, http.StatusOK, rec.Code)
	popular := decode[[]dto.FilmResponse](t, rec)
	require.Len(t, popular, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{popular[0].ID, popular[1].ID, popular[2].ID})

	rec = do(t, h, http.MethodGet, "/films/popular?count=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	popular = decode[[]dto.FilmResponse](t, rec)
	require.Len(t, popular, 1)
	assert.Equal(t, int64(2), popular[0].ID)

	for _, q := range []string{"0", "-1", "ten"} {
		rec = do(t, h, http.MethodGet, "/films/popular?count="+q, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestServer_UsersAndNameSync(t *testing.T) {
	h := newTestServer(t)

	user := createUser(t, h, "neo")
	assert.Equal(t, "neo", user.Name)
	assert.Empty(t, user.Friends)

	rec := do(t, h, http.MethodPut, "/users", `{"id":1,"login":"theone"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[dto.UserResponse](t, rec)
	assert.Equal(t, "theone", updated.Login)
	assert.Equal(t, "theone", updated.Name)

	rec = do(t, h, http.MethodPut, "/users", `{"id":1,"login":"anderson","name":"Thomas"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decode[dto.UserResponse](t, rec)
	assert.Equal(t, "Thomas", updated.Name)

	rec = do(t, h, http.MethodPut, "/users", `{"id":1,"login":"neo"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decode[dto.UserResponse](t, rec)
	assert.Equal(t, "Thomas", updated.Name)

	for _, body := range []string{
		`{"email":"mail.ru","login":"x"}`,
		`{"email":"x@mail.ru","login":"has space"}`,
		`{"email":"x@mail.ru","login":"x","birthday":"2999-01-01"}`,
	} {
		rec = do(t, h, http.MethodPost, "/users", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec = do(t, h, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.UserResponse](t, rec), 1)
}

func TestServer_Friends(t *testing.T) {
	h := newTestServer(t)

	for _, login := range []string{"neo", "trinity", "morpheus"} {
		createUser(t, h, login)
	}

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/users/1/friends/2", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/users/1/friends/3", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/users/2/friends/3", "").Code)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/users/1/friends/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/users/99/friends/99", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/users/1/friends/9", "").Code)

	rec := do(t, h, http.MethodGet, "/users/2/friends", "")
	require.Equal(t, http.StatusOK, rec.Code)
	friendsOf2 := decode[[]dto.UserResponse](t, rec)
	require.Len(t, friendsOf2, 2)
	assert.Equal(t, int64(1), friendsOf2[0].ID)
	assert.Equal(t, int64(3), friendsOf2[1].ID)

	rec = do(t, h, http.MethodGet, "/users/1/friends/common/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	common := decode[[]dto.UserResponse](t, rec)
	require.Len(t, common, 1)
	assert.Equal(t, "morpheus", common[0].Login)

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/users/1/friends/2", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/users/1/friends/2", "").Code)

	rec = do(t, h, http.MethodGet, "/users/2/friends", "")
	friendsOf2 = decode[[]dto.UserResponse](t, rec)
	require.Len(t, friendsOf2, 1)
	assert.Equal(t, int64(3), friendsOf2[0].ID)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/users/9/friends", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/users/1/friends/common/9", "").Code)
}

func TestServer_DeleteUserCascade(t *testing.T) {
	h := newTestServer(t)

	createFilm(t, h, "Matrix")
	createUser(t, h, "neo")
	createUser(t, h, "trinity")
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/users/1/friends/2", "").Code)
	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodPut, "/films/1/like/1", "").Code)

	require.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/users/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/users/1", "").Code)

	rec := do(t, h, http.MethodGet, "/users/2", "")
	assert.Empty(t, decode[dto.UserResponse](t, rec).Friends)

	rec = do(t, h, http.MethodGet, "/films/1", "")
	assert.Empty(t, decode[dto.FilmResponse](t, rec).UserLikes)
}

func TestServer_PingAndRequestID(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(httputils.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(httputils.HeaderRequestID, "trace-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "trace-1", rec.Header().Get(httputils.HeaderRequestID))
}

func TestServer_Gzip(t *testing.T) {
	h := newTestServer(t)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"name":"Matrix"}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/films", &buf)
	req.Header.Set(httputils.HeaderContentType, httputils.MIMEApplicationJSON)
	req.Header.Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
	req.Header.Set(httputils.HeaderAcceptEncoding, httputils.EncodingGzip)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, httputils.EncodingGzip, rec.Header().Get(httputils.HeaderContentEncoding))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var film dto.FilmResponse
	require.NoError(t, json.Unmarshal(raw, &film))
	assert.Equal(t, "Matrix", film.Name)
}
