package transport

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"team_word/internal/app"
	"testing"
	"time"
)

func setupTestServer(t *testing.T) *Server {
	svc := app.SetupTestService(t)
	return NewServer(svc, 0)
}

func loadABC(t *testing.T, server *Server) {
	t.Helper()
	if _, err := server.Service.LoadPuzzle("abc.puz", app.BuildTestPuz(3, 1, "ABC", "First three")); err != nil {
		t.Fatal(err)
	}
}

func datastarPost(server *Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func TestHomeWithoutPuzzle(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No puzzle loaded") {
		t.Errorf("expected empty board, got: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `id="upload"`) {
		t.Error("expected upload form on empty board")
	}
}

func TestLoadPuzzle_RawBody(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("POST", "/puzzle?filename=abc.puz", bytes.NewReader(app.BuildTestPuz(3, 1, "ABC", "First three")))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rr.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	rr = httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	body := rr.Body.String()
	if !strings.Contains(body, `id="grid"`) {
		t.Errorf("expected grid after load, got: %s", body)
	}
	if !strings.Contains(body, `id="cell-2"`) {
		t.Error("expected three cells")
	}
	if strings.Contains(body, "First three") {
		t.Error("clue text should be hidden until clicked")
	}
}

func TestLoadPuzzle_Multipart(t *testing.T) {
	server := setupTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("puzzle", "abc.puz")
	if err != nil {
		t.Fatal(err)
	}
	part.Write(app.BuildTestPuz(3, 1, "ABC", "First three"))
	mw.Close()

	req := httptest.NewRequest("POST", "/puzzle", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Datastar-Request", "true")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `id="grid"`) {
		t.Errorf("expected board patch, got: %s", rr.Body.String())
	}
}

func TestLoadPuzzle_Invalid(t *testing.T) {
	server := setupTestServer(t)

	req := httptest.NewRequest("POST", "/puzzle?filename=bad.puz", strings.NewReader("not a puzzle"))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}

	req = httptest.NewRequest("POST", "/puzzle?filename=bad.ipuz", strings.NewReader("{}"))
	req.Header.Set("Datastar-Request", "true")
	rr = httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if !strings.Contains(rr.Body.String(), `class="error"`) {
		t.Errorf("expected upload error patch, got: %s", rr.Body.String())
	}
	if server.Service.Snapshot().Session != nil {
		t.Error("failed upload must not install a session")
	}
}

func TestLoadPuzzle_TooLarge(t *testing.T) {
	svc := app.SetupTestService(t)
	server := NewServer(svc, 16)

	req := httptest.NewRequest("POST", "/puzzle", bytes.NewReader(app.BuildTestPuz(3, 1, "ABC", "First three")))
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rr.Code)
	}
}

func TestEventsWithoutPuzzle(t *testing.T) {
	server := setupTestServer(t)

	for _, path := range []string{"/keys", "/letters", "/cells/0/focus", "/clues/across/0", "/check"} {
		rr := datastarPost(server, path, `{"key":"ArrowRight","letter":"A"}`)
		if rr.Code != http.StatusConflict {
			t.Errorf("%s: expected 409, got %d", path, rr.Code)
		}
	}
}

func TestBadRouteParams(t *testing.T) {
	server := setupTestServer(t)
	loadABC(t, server)

	for _, path := range []string{"/cells/x/focus", "/clues/diagonal/0", "/clues/across/x"} {
		rr := datastarPost(server, path, `{}`)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rr.Code)
		}
	}
}

func TestStream(t *testing.T) {
	server := setupTestServer(t)
	loadABC(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest("GET", "/stream", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	if !strings.Contains(rr.Header().Get("Content-Type"), "text/event-stream") {
		t.Errorf("expected event stream, got %q", rr.Header().Get("Content-Type"))
	}
	if !strings.Contains(rr.Body.String(), `id="grid"`) {
		t.Errorf("expected initial board patch, got: %s", rr.Body.String())
	}
}
