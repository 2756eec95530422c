package server

import "log"

func (s *Server) sendError(playerID, message string) {
	s.hub.SendTo(playerID, outEvent{Type: "error", Data: map[string]string{"message": message}})
}

func (s *Server) createGame(playerID, name string) {
	if _, member := s.store.FindRoomByPlayer(playerID); member {
		s.sendError(playerID, "already in a game")
		return
	}
	defaults := TimerSettings{
		DrawingSeconds:    s.cfg.DrawingDurationSeconds,
		DescribingSeconds: s.cfg.DescribingDurationSeconds,
	}
	room, err := s.store.CreateRoom(playerID, name, defaults)
	if err != nil {
		log.Printf("create room failed player_id=%s error=%v", playerID, err)
		s.sendError(playerID, "could not create game")
		return
	}
	log.Printf("room created room_code=%s host=%s", room.Code, name)

	eff := newEffects()
	room.mu.Lock()
	eff.snapshotRoom(room)
	room.mu.Unlock()
	s.deliver(eff)
}

func (s *Server) joinGame(playerID, code, name string) {
	if _, member := s.store.FindRoomByPlayer(playerID); member {
		s.sendError(playerID, "already in a game")
		return
	}
	room, ok := s.store.Get(code)
	if !ok {
		s.sendError(playerID, "game not found")
		return
	}

	eff := newEffects()
	room.mu.Lock()
	if room.Phase != phaseLobby {
		room.mu.Unlock()
		s.sendError(playerID, errGameInProgress.Error())
		return
	}
	if len(room.Players) >= s.cfg.MaxPlayersPerRoom {
		room.mu.Unlock()
		s.sendError(playerID, errRoomFull.Error())
		return
	}
	room.Players = append(room.Players, Player{ID: playerID, Name: name})
	eff.snapshotRoom(room)
	room.mu.Unlock()

	log.Printf("player joined room_code=%s player=%s", code, name)
	s.deliver(eff)
}

func (s *Server) startGame(playerID, code string, settings TimerSettings) {
	room, ok := s.store.Get(code)
	if !ok {
		s.sendError(playerID, "game not found")
		return
	}

	eff := newEffects()
	room.mu.Lock()
	if err := s.startGameLocked(room, playerID, settings); err != nil {
		room.mu.Unlock()
		s.sendError(playerID, err.Error())
		return
	}
	assignTasks(room, eff)
	eff.snapshotRoom(room)
	room.mu.Unlock()
	s.deliver(eff)
}

func (s *Server) submit(playerID, code, bookID, payload, pageType string) {
	room, ok := s.store.Get(code)
	if !ok {
		s.sendError(playerID, "game not found")
		return
	}

	eff := newEffects()
	room.mu.Lock()
	s.submitLocked(room, playerID, bookID, payload, pageType, false, eff)
	room.mu.Unlock()
	s.deliver(eff)
}

// disconnect handles connection loss: the player leaves their room, the
// room's clock is cancelled, host moves to the first remaining player, and
// an empty room is destroyed. If a game is running, the departed player's
// pending contribution is forced so the round can still close.
func (s *Server) disconnect(playerID string) {
	room, ok := s.store.FindRoomByPlayer(playerID)
	if !ok {
		return
	}
	s.clocks.Cancel(room.Code)

	eff := newEffects()
	room.mu.Lock()
	wasHost := false
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			wasHost = room.Players[i].IsHost
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}

	if len(room.Players) == 0 {
		code := room.Code
		room.mu.Unlock()
		s.store.Delete(code)
		log.Printf("room deleted room_code=%s reason=empty", code)
		return
	}

	if wasHost {
		room.Players[0].IsHost = true
		log.Printf("host reassigned room_code=%s host=%s", room.Code, room.Players[0].Name)
	}
	if room.inProgress() {
		s.forceDepartedLocked(room, eff)
	}
	eff.snapshotRoom(room)
	room.mu.Unlock()

	log.Printf("player left room_code=%s player_id=%s", room.Code, playerID)
	s.deliver(eff)
}
