package realtime

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one connected study-room client
type Session struct {
	ID       string
	Username string
	Room     string

	conn sender
	mu   sync.Mutex
}

// sender is the session's write side; satisfied by *websocket.Conn
type sender interface {
	WriteJSON(v interface{}) error
}

func (s *Session) send(msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(msg)
}

// Message is the wire frame exchanged with study-room clients
type Message struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// Hub is the session registry for realtime study rooms. All membership
// state lives here, guarded by the mutex; nothing is package-global.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   *zap.Logger
}

// NewHub creates an empty hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Register adds a connection and returns its session
func (h *Hub) Register(conn sender) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		conn: conn,
	}

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	return s
}

// Unregister drops a session; returns the room it was in, if any
func (h *Hub) Unregister(s *Session) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, s.ID)
	return s.Room
}

// Join puts a session into a room and returns the room's user count
func (h *Hub) Join(s *Session, room, username string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	s.Room = room
	s.Username = username
	return h.countInRoomLocked(room)
}

// Leave removes a session from its room and returns the remaining
// user count
func (h *Hub) Leave(s *Session) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := s.Room
	s.Room = ""
	return h.countInRoomLocked(room)
}

// CountInRoom returns the number of sessions in a room
func (h *Hub) CountInRoom(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countInRoomLocked(room)
}

func (h *Hub) countInRoomLocked(room string) int {
	if room == "" {
		return 0
	}

	count := 0
	for _, s := range h.sessions {
		if s.Room == room {
			count++
		}
	}
	return count
}

// Broadcast sends a message to every session in the room, optionally
// excluding one (usually the sender)
func (h *Hub) Broadcast(room string, msg Message, exclude *Session) {
	h.mu.RLock()
	targets := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		if s.Room == room && s != exclude {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if err := s.send(msg); err != nil {
			h.logger.Warn("Failed to deliver room message",
				zap.String("session_id", s.ID),
				zap.String("room", room),
				zap.Error(err),
			)
		}
	}
}
