package server

import (
	"errors"
	"log"
)

var (
	errNotHost        = errors.New("only the host can start the game")
	errGameInProgress = errors.New("game already in progress")
	errRoomFull       = errors.New("room is full")
)

// startGameLocked moves a lobby into the prompt phase: one book per player,
// identity book assignment, round counter at 2, turn order snapshotted from
// the roster. The first phase runs no clock and no rotation; every player
// prompts into their own book.
func (s *Server) startGameLocked(room *Room, playerID string, settings TimerSettings) error {
	if room.Phase != phaseLobby {
		return errGameInProgress
	}
	player := room.player(playerID)
	if player == nil || !player.IsHost {
		return errNotHost
	}

	if settings.DrawingSeconds > 0 {
		room.Timers.DrawingSeconds = settings.DrawingSeconds
	}
	if settings.DescribingSeconds > 0 {
		room.Timers.DescribingSeconds = settings.DescribingSeconds
	}

	room.Phase = phasePrompt
	room.Round = 2
	room.Books = make(map[string]*Book, len(room.Players))
	room.BookHolder = make(map[string]string, len(room.Players))
	room.TurnOrder = make([]string, 0, len(room.Players))
	room.Submitted = make(map[string]struct{})
	for _, p := range room.Players {
		room.Books[p.ID] = &Book{OwnerID: p.ID, OwnerName: p.Name}
		room.BookHolder[p.ID] = p.ID
		room.TurnOrder = append(room.TurnOrder, p.ID)
	}

	log.Printf("game started room_code=%s players=%d drawing_seconds=%d describing_seconds=%d",
		room.Code, len(room.Players), room.Timers.DrawingSeconds, room.Timers.DescribingSeconds)
	return nil
}

// completeRoundLocked runs the phase transition once the submission set
// covers every player. The caller holds room.mu. A round completed by the
// timeout sweep (forced) never arms the next clock; the sweep that fired is
// already driving the game forward.
func (s *Server) completeRoundLocked(room *Room, forced bool, eff *effects) {
	s.clocks.Cancel(room.Code)

	switch room.Phase {
	case phasePrompt:
		room.Phase = phaseDrawing
	case phaseDrawing, phaseDescribing:
		room.Round++
		if room.Round > len(room.TurnOrder) {
			room.Phase = phaseReveal
		} else if room.Phase == phaseDrawing {
			room.Phase = phaseDescribing
		} else {
			room.Phase = phaseDrawing
		}
	default:
		return
	}

	if room.Phase == phaseReveal {
		log.Printf("game revealed room_code=%s rounds=%d", room.Code, room.Round-1)
		eff.snapshotRoom(room)
		return
	}

	room.BookHolder = rotateHolders(room.TurnOrder, room.BookHolder)
	room.Submitted = make(map[string]struct{})
	assignTasks(room, eff)
	if !forced {
		s.startClockLocked(room)
	}
	log.Printf("phase advanced room_code=%s phase=%s round=%d", room.Code, room.Phase, room.Round)
	s.forceDepartedLocked(room, eff)
	eff.snapshotRoom(room)
}

// forceDepartedLocked appends placeholder pages for snapshot players who
// have left the room, so their assigned book still gains its page and the
// round can close. May re-enter completeRoundLocked.
func (s *Server) forceDepartedLocked(room *Room, eff *effects) {
	if !room.inProgress() {
		return
	}
	for _, playerID := range room.TurnOrder {
		if room.hasPlayer(playerID) {
			continue
		}
		if _, done := room.Submitted[playerID]; done {
			continue
		}
		payload, pageType := placeholderFor(room.Phase)
		s.submitLocked(room, playerID, room.BookHolder[playerID], payload, pageType, false, eff)
		if !room.inProgress() {
			return
		}
	}
}
