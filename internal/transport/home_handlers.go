package transport

import (
	"log"
	"net/http"
	"team_word/internal/web/components"

	"github.com/starfederation/datastar-go/datastar"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	components.Layout(components.Board(s.Service.Snapshot())).Render(r.Context(), w)
}

// handleStream keeps one SSE connection open and re-renders the board after
// every change announced on the event bus.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	updates, cancel, err := s.Service.Subscribe()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer cancel()

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(components.Board(s.Service.Snapshot())); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-updates:
			if err := sse.PatchElementTempl(components.Board(s.Service.Snapshot())); err != nil {
				log.Printf("Stream closed: %v", err)
				return
			}
		}
	}
}
