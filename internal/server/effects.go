package server

// effects collects outbound messages produced while a room lock is held, so
// websocket writes happen after the lock is released. Task entries are keyed
// by player; when forced submissions cascade through several transitions in
// one call, only the latest task and room view survive, which is what the
// clients should act on.
type effects struct {
	recipients []string
	view       map[string]any
	tasks      map[string]Task
}

func newEffects() *effects {
	return &effects{tasks: make(map[string]Task)}
}

func (e *effects) task(playerID string, t Task) {
	e.tasks[playerID] = t
}

// snapshotRoom records the sanitized view and its audience. Must be called
// with room.mu held, as the last step before unlocking.
func (e *effects) snapshotRoom(room *Room) {
	e.view = roomView(room)
	e.recipients = e.recipients[:0]
	for _, p := range room.Players {
		e.recipients = append(e.recipients, p.ID)
	}
}

func (s *Server) deliver(eff *effects) {
	for playerID, task := range eff.tasks {
		s.hub.SendTo(playerID, outEvent{Type: "new-task", Data: task})
	}
	if eff.view != nil {
		for _, playerID := range eff.recipients {
			s.hub.SendTo(playerID, outEvent{Type: "lobby-update", Data: eff.view})
		}
	}
}
