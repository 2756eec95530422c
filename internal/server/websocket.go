package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// envelope is the inbound wire format: {"type": ..., "data": {...}}.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outEvent struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// wsHub maps connection-scoped player ids to their sockets. Writes are
// serialized under the hub mutex; gorilla connections allow only one
// concurrent writer.
type wsHub struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func newWSHub() *wsHub {
	return &wsHub{conns: make(map[string]*websocket.Conn)}
}

func (h *wsHub) Add(playerID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[playerID] = conn
}

func (h *wsHub) Remove(playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.conns[playerID]; ok {
		delete(h.conns, playerID)
		_ = conn.Close()
	}
}

func (h *wsHub) SendTo(playerID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	conn, ok := h.conns[playerID]
	if !ok {
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		delete(h.conns, playerID)
		_ = conn.Close()
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	playerID := uuid.NewString()
	log.Printf("ws connected player_id=%s remote=%s", playerID, r.RemoteAddr)
	s.hub.Add(playerID, conn)
	s.hub.SendTo(playerID, outEvent{Type: "welcome", Data: map[string]string{"player_id": playerID}})
	go s.readWS(playerID, conn)
}

func (s *Server) readWS(playerID string, conn *websocket.Conn) {
	defer func() {
		s.hub.Remove(playerID)
		s.disconnect(playerID)
	}()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Printf("ws disconnected player_id=%s error=%v", playerID, err)
			return
		}
		s.dispatch(playerID, raw)
	}
}

func (s *Server) dispatch(playerID string, raw []byte) {
	var msg envelope
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.sendError(playerID, "malformed message")
		return
	}

	switch msg.Type {
	case "create-game":
		var req createGamePayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid create-game payload")
			return
		}
		name, err := normalizeName(req.PlayerName)
		if err != nil {
			s.sendError(playerID, err.Error())
			return
		}
		s.createGame(playerID, name)

	case "join-game":
		var req joinGamePayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid join-game payload")
			return
		}
		name, err := normalizeName(req.PlayerName)
		if err != nil {
			s.sendError(playerID, err.Error())
			return
		}
		s.joinGame(playerID, req.GameCode, name)

	case "start-game":
		var req startGamePayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid start-game payload")
			return
		}
		s.startGame(playerID, req.GameCode, req.TimerSettings)

	case "submit-prompt":
		var req submitPromptPayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid submit-prompt payload")
			return
		}
		s.submit(playerID, req.GameCode, req.BookID, req.Prompt, pagePrompt)

	case "submit-drawing":
		var req submitDrawingPayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid submit-drawing payload")
			return
		}
		s.submit(playerID, req.GameCode, req.BookID, req.Drawing, pageDrawing)

	case "submit-description":
		var req submitDescriptionPayload
		if err := decodePayload(msg.Data, &req); err != nil {
			s.sendError(playerID, "invalid submit-description payload")
			return
		}
		s.submit(playerID, req.GameCode, req.BookID, req.Description, pageDescribing)

	default:
		s.sendError(playerID, "unknown event type")
	}
}
