package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"pass-the-page/internal/config"
)

type Server struct {
	cfg    config.Config
	store  *Store
	hub    *wsHub
	clocks *clockService
}

func New(cfg config.Config) *Server {
	return &Server{
		cfg:    cfg,
		store:  NewStore(),
		hub:    newWSHub(),
		clocks: newClockService(),
	}
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.corsMiddleware)

	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/rooms/{code}", s.handleGetRoom).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWebsocket)

	return r
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")

		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			next.ServeHTTP(w, r)
			return
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rooms":  s.store.Count(),
	})
}

// handleGetRoom exposes the sanitized room view over plain HTTP, which is
// how revealed books can be fetched without holding a socket open.
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(mux.Vars(r)["code"])
	room, ok := s.store.Get(code)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	room.mu.Lock()
	view := roomView(room)
	room.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}

// startClockLocked arms the countdown for the room's current phase. The
// phase and round captured here let a late expiry detect that the room has
// moved on. Caller holds room.mu; the clock callbacks run on their own
// goroutine and take the lock themselves.
func (s *Server) startClockLocked(room *Room) {
	seconds := room.phaseSeconds()
	if seconds <= 0 {
		return
	}
	code, phase, round := room.Code, room.Phase, room.Round
	s.clocks.Start(code, seconds,
		func(remaining int) { s.broadcastTime(code, remaining) },
		func() { s.sweepTimeout(code, phase, round) },
	)
}

func (s *Server) broadcastTime(code string, remaining int) {
	room, ok := s.store.Get(code)
	if !ok {
		return
	}
	room.mu.Lock()
	ids := make([]string, 0, len(room.Players))
	for _, p := range room.Players {
		ids = append(ids, p.ID)
	}
	room.mu.Unlock()
	for _, playerID := range ids {
		s.hub.SendTo(playerID, outEvent{Type: "time-update", Data: remaining})
	}
}
