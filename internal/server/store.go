package server

import (
	"crypto/rand"
	"errors"
	"sync"
)

const roomCodeLength = 4

var errCodeSpaceExhausted = errors.New("could not allocate an unused room code")

// Store is the room registry: it owns the code->Room map and nothing else.
// Room contents are guarded by each Room's own mutex; the store mutex only
// covers the map. Lock order is always store before room.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*Room),
	}
}

func newRoomCode() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, roomCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf)
}

// CreateRoom allocates a lobby with the given player as host. Code
// collisions are retried; exhausting the retries is reported as an error
// rather than handing out a duplicate code.
func (s *Store) CreateRoom(hostID, hostName string, timers TimerSettings) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code := ""
	for attempt := 0; attempt < 100; attempt++ {
		candidate := newRoomCode()
		if candidate == "" {
			continue
		}
		if _, taken := s.rooms[candidate]; !taken {
			code = candidate
			break
		}
	}
	if code == "" {
		return nil, errCodeSpaceExhausted
	}

	room := &Room{
		Code:      code,
		Phase:     phaseLobby,
		Players:   []Player{{ID: hostID, Name: hostName, IsHost: true}},
		Timers:    timers,
		Submitted: make(map[string]struct{}),
	}
	s.rooms[code] = room
	return room, nil
}

func (s *Store) Get(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[code]
	return room, ok
}

// FindRoomByPlayer returns the room whose roster contains the given player.
// Connections belong to at most one room, so the first hit wins.
func (s *Store) FindRoomByPlayer(playerID string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		room.mu.Lock()
		member := room.hasPlayer(playerID)
		room.mu.Unlock()
		if member {
			return room, true
		}
	}
	return nil, false
}

func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
