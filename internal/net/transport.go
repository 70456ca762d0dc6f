// Package net mirrors the canvas to read-only viewers on the local network.
package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// LivePath is the websocket endpoint viewers connect to.
const LivePath = "/live"

const writeWait = 5 * time.Second

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Mirror is used by the HOST to push every document revision to all
// connected viewers. Slow viewers only ever get the newest revision.
type Mirror struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	latest  []byte
}

// NewMirror creates a new mirror with no viewers.
func NewMirror() *Mirror {
	return &Mirror{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		viewers: make(map[*viewer]struct{}),
	}
}

// Handler serves the mirror at LivePath.
func (m *Mirror) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(LivePath, m)
	return mux
}

// ServeHTTP upgrades the request and registers the viewer. The newest
// document, if any, is sent straight away.
func (m *Mirror) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[MIRROR] Upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	v := &viewer{conn: conn, send: make(chan []byte, 1)}

	m.mu.Lock()
	m.viewers[v] = struct{}{}
	if m.latest != nil {
		v.send <- m.latest
	}
	m.mu.Unlock()
	log.Printf("[MIRROR] Viewer connected from %s", conn.RemoteAddr())

	go v.writeLoop()
	// viewers never send; reading only notices the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	m.drop(v)
}

func (m *Mirror) drop(v *viewer) {
	m.mu.Lock()
	if _, ok := m.viewers[v]; ok {
		delete(m.viewers, v)
		close(v.send)
	}
	m.mu.Unlock()
	v.conn.Close()
	log.Printf("[MIRROR] Viewer %s left", v.conn.RemoteAddr())
}

func (v *viewer) writeLoop() {
	for doc := range v.send {
		v.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := v.conn.WriteMessage(websocket.TextMessage, doc); err != nil {
			v.conn.Close()
			return
		}
	}
}

// Publish hands doc to every viewer. It never blocks on the network.
func (m *Mirror) Publish(doc []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest = doc
	for v := range m.viewers {
		select {
		case <-v.send:
		default:
		}
		select {
		case v.send <- doc:
		default:
		}
	}
}

// Viewers returns the number of connected viewers.
func (m *Mirror) Viewers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.viewers)
}

// Close disconnects every viewer.
func (m *Mirror) Close() {
	m.mu.Lock()
	vs := make([]*viewer, 0, len(m.viewers))
	for v := range m.viewers {
		vs = append(vs, v)
	}
	m.mu.Unlock()
	for _, v := range vs {
		v.conn.Close()
	}
}

// Serve listens on port until ctx is done.
func (m *Mirror) Serve(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	srv := &http.Server{Handler: m.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		m.Close()
		srv.Close()
	}()
	log.Printf("[MIRROR] Serving on port %d", port)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve mirror: %w", err)
	}
	return nil
}

// Watch connects to a mirror at url and calls onDoc with every document
// received, until ctx is done or the host goes away.
func Watch(ctx context.Context, url string, onDoc func([]byte)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, doc, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("read from %s: %w", url, err)
		}
		onDoc(doc)
	}
}
