// Package livereload pushes reload notifications to connected browsers while
// templates or static assets change on disk. It is only wired up in debug mode.
package livereload

import (
	"io/fs"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Reloader tracks connected websocket clients and broadcasts reload messages
type Reloader struct {
	clients  map[*websocket.Conn]bool
	mu       sync.Mutex
	upgrader websocket.Upgrader
}

// New creates a Reloader with no connected clients
func New() *Reloader {
	return &Reloader{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler upgrades the request to a websocket and registers the client
func (lr *Reloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = true
	lr.mu.Unlock()

	go func() {
		defer func() {
			lr.mu.Lock()
			delete(lr.clients, conn)
			lr.mu.Unlock()
			conn.Close()
		}()

		for {
			if _, _, err := conn.NextReader(); err != nil {
				break
			}
		}
	}()
}

// Broadcast sends a reload message to every connected client, dropping any
// connection that fails to accept the write.
func (lr *Reloader) Broadcast() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			delete(lr.clients, conn)
		}
	}
}

// Watch observes the given directories (recursively) and broadcasts a reload
// whenever a file changes. It runs until the watcher fails.
func (lr *Reloader) Watch(logger *zerolog.Logger, dirs ...string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			return watcher.Add(path)
		})
		if err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("livereload: watch failed")
		}
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					logger.Debug().Str("file", event.Name).Msg("livereload: change detected")
					lr.Broadcast()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("livereload: watcher error")
			}
		}
	}()

	return nil
}
