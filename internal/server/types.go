package server

import "sync"

const (
	phaseLobby      = "LOBBY"
	phasePrompt     = "PROMPT_PHASE"
	phaseDrawing    = "DRAWING_PHASE"
	phaseDescribing = "DESCRIBING_PHASE"
	phaseReveal     = "REVEAL_PHASE"
)

const (
	pagePrompt     = "PROMPT"
	pageDrawing    = "DRAWING"
	pageDescribing = "DESCRIBING"
)

// Placeholder payloads appended on behalf of players who miss the clock.
const (
	placeholderDrawing = "data:image/gif;base64,R0lGODlhAQABAAD/ACwAAAAAAQABAAACADs="
	placeholderText    = "Timeout"
)

type TimerSettings struct {
	DrawingSeconds    int `json:"drawing_seconds"`
	DescribingSeconds int `json:"describing_seconds"`
}

type Player struct {
	ID     string
	Name   string
	IsHost bool
}

// Page is one immutable contribution to a Book. Exactly one of Text or
// ImageData is set, according to Type.
type Page struct {
	Type      string
	AuthorID  string
	Text      string
	ImageData string
}

// Book is identified by its original owner; pages only grow, one per round.
type Book struct {
	OwnerID   string
	OwnerName string
	Pages     []Page
}

// Task is the per-player instruction for the active phase. It is derived
// from the assigned book at assignment time, never stored.
type Task struct {
	Type      string `json:"type"`
	BookID    string `json:"book_id"`
	BookOwner string `json:"book_owner,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	Drawing   string `json:"drawing,omitempty"`
}

// Room holds all state for one game. Every field except Code is guarded by
// mu; handlers and clock callbacks both go through it.
type Room struct {
	mu sync.Mutex

	Code    string
	Phase   string
	Round   int
	Players []Player
	Timers  TimerSettings

	Books      map[string]*Book
	BookHolder map[string]string // player id -> id of the book they work on

	// TurnOrder is snapshotted from the roster when the game starts and
	// never re-derived, so departures cannot drift the rotation.
	TurnOrder []string

	Submitted map[string]struct{}
}

// playerCount is the denominator of the round-completion predicate: the
// start-time snapshot once the game is running, the live roster before.
func (r *Room) playerCount() int {
	if len(r.TurnOrder) > 0 {
		return len(r.TurnOrder)
	}
	return len(r.Players)
}

func (r *Room) player(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) hasPlayer(id string) bool {
	return r.player(id) != nil
}

func (r *Room) inProgress() bool {
	switch r.Phase {
	case phasePrompt, phaseDrawing, phaseDescribing:
		return true
	}
	return false
}

func (r *Room) phaseSeconds() int {
	switch r.Phase {
	case phaseDrawing:
		return r.Timers.DrawingSeconds
	case phaseDescribing:
		return r.Timers.DescribingSeconds
	default:
		return 0
	}
}
