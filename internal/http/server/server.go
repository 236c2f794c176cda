package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/domain/models"
	"filmorate/internal/http/handlers/film/create_film"
	"filmorate/internal/http/handlers/film/delete_film"
	"filmorate/internal/http/handlers/film/get_film"
	"filmorate/internal/http/handlers/film/like"
	"filmorate/internal/http/handlers/film/list_films"
	"filmorate/internal/http/handlers/film/popular"
	"filmorate/internal/http/handlers/film/update_film"
	"filmorate/internal/http/handlers/middlewares"
	"filmorate/internal/http/handlers/system/ping"
	"filmorate/internal/http/handlers/user/common_friends"
	"filmorate/internal/http/handlers/user/create_user"
	"filmorate/internal/http/handlers/user/delete_user"
	"filmorate/internal/http/handlers/user/friends"
	"filmorate/internal/http/handlers/user/get_user"
	"filmorate/internal/http/handlers/user/list_users"
	"filmorate/internal/http/handlers/user/update_user"
	"filmorate/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type FilmService interface {
	FindAll(ctx context.Context) ([]models.Film, error)
	FindByID(ctx context.Context, id int64) (models.Film, error)
	Create(ctx context.Context, film models.Film) (models.Film, error)
	Update(ctx context.Context, patch models.FilmPatch) (models.Film, error)
	Delete(ctx context.Context, id int64) error
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	FindPopular(ctx context.Context, count int) ([]models.Film, error)
	PingDataBase(ctx context.Context) error
}

type UserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int64) error
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
	FindFriends(ctx context.Context, userID int64) ([]models.User, error)
	FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	filmService FilmService
	userService UserService
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, films FilmService, users UserService) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if films == nil || users == nil {
		return nil, errors.New("service cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		filmService: films,
		userService: users,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

// Handler нужен для httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) middlewares() []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		middlewares.MiddlewareRequestID(),
		middlewares.MiddlewareLogging(s.log),
		middlewares.MiddlewareCompressing(),
	}
}

// withMiddlewares оборачивает обработчик в ту же цепочку, что router.Use:
// mux применяет ее только к найденным маршрутам
func (s *Server) withMiddlewares(h http.Handler) http.Handler {
	mws := s.middlewares()
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// setFallbacks задает JSON-ответы 404/405
func (s *Server) setFallbacks(router *mux.Router) {
	router.NotFoundHandler = s.withMiddlewares(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, httputils.SummaryNotFound, "no route for "+r.URL.Path)
	}))
	router.MethodNotAllowedHandler = s.withMiddlewares(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusMethodNotAllowed, httputils.SummaryValidation,
			r.Method+" is not allowed for "+r.URL.Path)
	}))
}

func (s *Server) setupRoutes() {
	s.router.Use(s.middlewares()...)
	s.setFallbacks(s.router)

	s.router.HandleFunc("/ping", ping.HandlerPing(s.filmService, s.log)).Methods(http.MethodGet)

	// /films/popular регистрируется раньше /films/{id}: mux проверяет маршруты по порядку
	s.router.HandleFunc("/films", list_films.HandlerListFilms(s.filmService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/films", create_film.HandlerCreateFilm(s.filmService, s.log)).Methods(http.MethodPost)    // 201
	s.router.HandleFunc("/films", update_film.HandlerUpdateFilm(s.filmService, s.log)).Methods(http.MethodPut)
	s.router.HandleFunc("/films/popular", popular.HandlerPopular(s.filmService, s.cfg.PopularDefaultCount, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/films/{id}", get_film.HandlerGetFilm(s.filmService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/films/{id}", delete_film.HandlerDeleteFilm(s.filmService, s.log)).Methods(http.MethodDelete) // 204
	s.router.HandleFunc("/films/{id}/like/{userId}", like.HandlerAddLike(s.filmService, s.log)).Methods(http.MethodPut)       // 204
	s.router.HandleFunc("/films/{id}/like/{userId}", like.HandlerRemoveLike(s.filmService, s.log)).Methods(http.MethodDelete) // 204

	s.router.HandleFunc("/users", list_users.HandlerListUsers(s.userService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/users", create_user.HandlerCreateUser(s.userService, s.log)).Methods(http.MethodPost) // 201
	s.router.HandleFunc("/users", update_user.HandlerUpdateUser(s.userService, s.log)).Methods(http.MethodPut)
	s.router.HandleFunc("/users/{id}", get_user.HandlerGetUser(s.userService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}", delete_user.HandlerDeleteUser(s.userService, s.log)).Methods(http.MethodDelete) // 204
	s.router.HandleFunc("/users/{id}/friends", friends.HandlerListFriends(s.userService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}/friends/common/{otherId}", common_friends.HandlerCommonFriends(s.userService, s.log)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}/friends/{friendId}", friends.HandlerAddFriend(s.userService, s.log)).Methods(http.MethodPut)       // 204
	s.router.HandleFunc("/users/{id}/friends/{friendId}", friends.HandlerRemoveFriend(s.userService, s.log)).Methods(http.MethodDelete) // 204
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
