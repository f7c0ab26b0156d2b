package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

func (s *Server) handleAddTeam(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TeamName string `json:"teamName"`
	}
	if err := datastar.ReadSignals(r, &payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.Service.AddTeam(payload.TeamName)
	s.renderBoard(w, r)
}

func (s *Server) handleSelectTeam(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.Service.SelectTeam(chi.URLParam(r, "id")))
}

func (s *Server) handleRemoveTeam(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.Service.RemoveTeam(chi.URLParam(r, "id")))
}
