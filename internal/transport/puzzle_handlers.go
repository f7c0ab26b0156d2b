package transport

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"team_word/internal/app"
	"team_word/internal/web/components"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

// handleLoadPuzzle accepts the file either as the multipart field "puzzle" or
// as the raw request body.
func (s *Server) handleLoadPuzzle(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(r)
	if err != nil {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	if _, err := s.Service.LoadPuzzle(filename, data); err != nil {
		log.Printf("Puzzle load failed: %v", err)
		if isDatastar(r) {
			datastar.NewSSE(w, r).PatchElementTempl(components.Upload(err.Error()))
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if isDatastar(r) {
		s.renderBoard(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func readUpload(r *http.Request) (string, []byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, header, err := r.FormFile("puzzle")
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		return header.Filename, data, err
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "upload.puz"
	}
	return filename, data, nil
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key   string `json:"key"`
		Shift bool   `json:"shift"`
	}
	if err := datastar.ReadSignals(r, &payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.respond(w, r, s.Service.Key(app.Key(payload.Key), payload.Shift))
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Letter string `json:"letter"`
	}
	if err := datastar.ReadSignals(r, &payload); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.respond(w, r, s.Service.Input(payload.Letter))
}

func (s *Server) handleFocusCell(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad cell", http.StatusBadRequest)
		return
	}

	s.respond(w, r, s.Service.FocusCell(index))
}

func (s *Server) handleClueClick(w http.ResponseWriter, r *http.Request) {
	dir, err := app.ParseDirection(chi.URLParam(r, "dir"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil {
		http.Error(w, "bad clue", http.StatusBadRequest)
		return
	}

	s.respond(w, r, s.Service.ClickClue(app.EntryRef{Direction: dir, Index: idx}))
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.Service.Check())
}

// respond maps a service error to a status code, or patches the board.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case err == nil:
		s.renderBoard(w, r)
	case errors.Is(err, app.ErrNoPuzzle):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, app.ErrTeamNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("Event failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) renderBoard(w http.ResponseWriter, r *http.Request) {
	datastar.NewSSE(w, r).PatchElementTempl(components.Board(s.Service.Snapshot()))
}

func isDatastar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}
