package livereload

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func dialReloader(t *testing.T, lr *Reloader) (*websocket.Conn, func()) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(lr.Handler))
	url := "ws" + server.URL[len("http"):]

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("failed to connect websocket: %v", err)
	}

	return ws, func() {
		ws.Close()
		server.Close()
	}
}

func TestClientReceivesBroadcast(t *testing.T) {
	lr := New()
	ws, cleanup := dialReloader(t, lr)
	defer cleanup()

	time.Sleep(50 * time.Millisecond)
	lr.Broadcast()

	ws.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read reload message: %v", err)
	}
	if string(msg) != "reload" {
		t.Errorf("expected 'reload' message, got %q", msg)
	}
}

func TestBroadcastSurvivesDisconnectedClient(t *testing.T) {
	lr := New()
	ws, cleanup := dialReloader(t, lr)
	defer cleanup()

	_ = ws.Close()
	time.Sleep(100 * time.Millisecond)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Broadcast panicked after client disconnect: %v", r)
		}
	}()

	lr.Broadcast()
}

func TestHandlerIgnoresUpgradeError(t *testing.T) {
	lr := New()

	rec := httptest.NewRecorder()
	lr.Handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected HTTP 400 on upgrade failure, got %d", rec.Code)
	}
}

func TestWatchBroadcastsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "page.html"), []byte("before"), 0644); err != nil {
		t.Fatal(err)
	}

	lr := New()
	logger := zerolog.Nop()
	if err := lr.Watch(&logger, dir); err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	ws, cleanup := dialReloader(t, lr)
	defer cleanup()
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "page.html"), []byte("after"), 0644); err != nil {
		t.Fatal(err)
	}

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("expected reload after file change: %v", err)
	}
	if string(msg) != "reload" {
		t.Errorf("expected 'reload' message, got %q", msg)
	}
}
