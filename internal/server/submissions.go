package server

import "log"

// submitLocked records one contribution. Duplicate submissions within a
// round and submissions against unknown books are silent no-ops, so retried
// deliveries and overlapping timeout sweeps cannot double-append a page.
// The caller holds room.mu.
func (s *Server) submitLocked(room *Room, playerID, bookID, payload, pageType string, forced bool, eff *effects) {
	if !room.inProgress() {
		return
	}
	if _, dup := room.Submitted[playerID]; dup {
		return
	}
	book := room.Books[bookID]
	if book == nil {
		return
	}

	page := Page{Type: pageType, AuthorID: playerID}
	if pageType == pageDrawing {
		page.ImageData = payload
	} else {
		page.Text = payload
	}
	book.Pages = append(book.Pages, page)
	room.Submitted[playerID] = struct{}{}

	if len(room.Submitted) == room.playerCount() {
		s.completeRoundLocked(room, forced, eff)
	}
}

// placeholderFor returns the synthetic payload appended when a player does
// not submit before the clock runs out.
func placeholderFor(phase string) (payload, pageType string) {
	switch phase {
	case phaseDrawing:
		return placeholderDrawing, pageDrawing
	case phasePrompt:
		return placeholderText, pagePrompt
	}
	return placeholderText, pageDescribing
}

// sweepTimeout is the clock expiry callback: it forces a placeholder
// submission for every player still missing from the round. The phase and
// round captured at clock start guard against a stale clock firing after
// the room has already moved on.
func (s *Server) sweepTimeout(code, expectedPhase string, expectedRound int) {
	room, ok := s.store.Get(code)
	if !ok {
		return
	}
	eff := newEffects()
	room.mu.Lock()
	if room.Phase == expectedPhase && room.Round == expectedRound {
		log.Printf("phase timed out room_code=%s phase=%s round=%d", code, expectedPhase, expectedRound)
		for _, playerID := range room.TurnOrder {
			if _, done := room.Submitted[playerID]; done {
				continue
			}
			payload, pageType := placeholderFor(room.Phase)
			s.submitLocked(room, playerID, room.BookHolder[playerID], payload, pageType, true, eff)
			if room.Phase != expectedPhase || room.Round != expectedRound {
				break
			}
		}
	}
	room.mu.Unlock()
	s.deliver(eff)
}
