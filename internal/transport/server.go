package transport

import (
	"net/http"
	"team_word/internal/app"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultMaxUploadBytes = 1024 * 1024

type Server struct {
	Service        *app.Service
	Router         *chi.Mux
	MaxUploadBytes int64
}

func NewServer(svc *app.Service, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	s := &Server{
		Service:        svc,
		Router:         chi.NewRouter(),
		MaxUploadBytes: maxUploadBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.Router.Get("/", s.handleHome)
	s.Router.Get("/stream", s.handleStream)

	s.Router.Post("/puzzle", s.handleLoadPuzzle)

	// Play
	s.Router.Post("/keys", s.handleKey)
	s.Router.Post("/letters", s.handleLetter)
	s.Router.Post("/cells/{index}/focus", s.handleFocusCell)
	s.Router.Post("/clues/{dir}/{idx}", s.handleClueClick)
	s.Router.Post("/check", s.handleCheck)

	// Teams
	s.Router.Post("/teams", s.handleAddTeam)
	s.Router.Post("/teams/{id}/select", s.handleSelectTeam)
	s.Router.Post("/teams/{id}/delete", s.handleRemoveTeam)
}
