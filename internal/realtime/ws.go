package realtime

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin policy is enforced by the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and runs the session's event loop
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade websocket", zap.Error(err))
		return
	}

	s := h.Register(conn)
	h.logger.Info("Client connected", zap.String("session_id", s.ID))

	if err := s.send(Message{Event: "connected", Data: map[string]interface{}{
		"message": "Connected to server",
	}}); err != nil {
		h.logger.Warn("Failed to greet client", zap.Error(err))
	}

	h.readLoop(s, conn)
}

func (h *Hub) readLoop(s *Session, conn *websocket.Conn) {
	defer func() {
		room := s.Room
		username := s.Username
		h.Unregister(s)
		conn.Close()

		if room != "" {
			h.Broadcast(room, Message{Event: "user_left", Data: map[string]interface{}{
				"username":   username,
				"user_count": h.CountInRoom(room),
			}}, nil)
		}

		h.logger.Info("Client disconnected", zap.String("session_id", s.ID))
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		h.dispatch(s, msg)
	}
}

func (h *Hub) dispatch(s *Session, msg Message) {
	switch msg.Event {
	case "join_study_room":
		room := stringField(msg.Data, "room", "default")
		username := stringField(msg.Data, "username", "Anonymous")

		count := h.Join(s, room, username)
		h.Broadcast(room, Message{Event: "user_joined", Data: map[string]interface{}{
			"username":   username,
			"user_count": count,
		}}, nil)

	case "leave_study_room":
		room := s.Room
		if room == "" {
			return
		}
		username := s.Username

		count := h.Leave(s)
		h.Broadcast(room, Message{Event: "user_left", Data: map[string]interface{}{
			"username":   username,
			"user_count": count,
		}}, nil)

	case "sync_progress":
		if s.Room == "" {
			return
		}
		h.Broadcast(s.Room, Message{Event: "progress_updated", Data: map[string]interface{}{
			"user":     s.Username,
			"progress": msg.Data["progress"],
		}}, s)

	case "send_message":
		if s.Room == "" {
			return
		}
		h.Broadcast(s.Room, Message{Event: "receive_message", Data: map[string]interface{}{
			"user":      s.Username,
			"message":   msg.Data["message"],
			"timestamp": time.Now().Format(time.RFC3339),
		}}, nil)

	case "request_help":
		if s.Room == "" {
			return
		}
		h.Broadcast(s.Room, Message{Event: "help_requested", Data: map[string]interface{}{
			"user": s.Username,
			"word": msg.Data["word"],
		}}, s)

	default:
		h.logger.Debug("Unknown event", zap.String("event", msg.Event))
	}
}

func stringField(data map[string]interface{}, key, fallback string) string {
	if v, ok := data[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
