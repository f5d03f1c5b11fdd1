// Package server exposes the game session over HTTP: a JSON poll API
// mirroring the engine boundary (new_game, tick, state) and a WebSocket
// stream that pushes every new snapshot to subscribers.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"botwars/internal/engine"
	"botwars/internal/game"
)

const snapshotBuffer = 8

// Server routes transport requests into a game session.
type Server struct {
	addr     string
	session  *game.Session
	hub      *hub[engine.Snapshot]
	upgrader websocket.Upgrader
}

// New creates a server for addr backed by session.
func New(addr string, session *game.Session) *Server {
	return &Server{
		addr:    addr,
		session: session,
		hub:     newHub[engine.Snapshot](),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/new_game", s.handleNewGame)
	mux.HandleFunc("/api/tick", s.handleTick)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe blocks serving the API.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.Routes())
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	snap := s.session.NewGame()
	s.hub.Broadcast(snap)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	snap, err := s.session.Tick()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	s.hub.Broadcast(snap)
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	snap, err := s.session.State()
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type outboundMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}

	sub := s.hub.Subscribe(snapshotBuffer)
	defer s.hub.Unsubscribe(sub)

	// Send the current state immediately so late joiners aren't blank
	// until the next tick.
	if snap, err := s.session.State(); err == nil {
		if err := writeWS(conn, snap); err != nil {
			conn.Close()
			return
		}
	}

	// Reader goroutine: we never expect client messages, but reading is
	// what surfaces the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			conn.Close()
			return
		case snap, ok := <-sub.ch:
			if !ok {
				conn.Close()
				return
			}
			if err := writeWS(conn, snap); err != nil {
				conn.Close()
				return
			}
		}
	}
}

func writeWS(conn *websocket.Conn, snap engine.Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(outboundMessage{Type: "state", Data: snap})
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrNoGame) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
