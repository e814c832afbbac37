package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type    string `json:"type"` // "message"
	Content string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type      string `json:"type"` // "user", "assistant" or "error"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	Place     string `json:"place,omitempty"`
}

// chatConn serializes writes: assistant frames come from timer goroutines
// while the read loop may be sending errors.
type chatConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
	log  *zap.Logger
}

func (c *chatConn) send(resp chatResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(resp); err != nil {
		c.log.Debug("websocket write", zap.Error(err))
	}
}

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.log.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	// Transcript writes outlive the request, so they do not use its context.
	ctx := context.Background()

	sess, err := d.store.CreateSession(ctx)
	if err != nil {
		d.log.Error("creating chat session", zap.Error(err))
		conn.WriteJSON(chatResponse{Type: "error", Content: "failed to create session: " + err.Error()})
		return
	}
	log := d.log.With(zap.String("session_id", sess.ID))
	d.recordSessions(ctx)
	cc := &chatConn{conn: conn, log: log}

	transcript := chat.NewTranscript(d.delay, log)
	transcript.OnAppend(func(m chat.Message) {
		if err := d.store.AddMessage(ctx, sess.ID, m); err != nil {
			log.Error("storing chat message", zap.Error(err))
		}
		cc.send(chatResponse{
			Type:      string(m.Sender),
			SessionID: sess.ID,
			Content:   m.Text,
			Place:     string(m.Place),
		})
	})

	defer func() {
		transcript.Wait()
		log.Debug("chat session closed", zap.Int("messages", transcript.Len()))
		if err := d.store.DeleteSession(ctx, sess.ID); err != nil {
			log.Error("deleting chat session", zap.Error(err))
		}
		d.recordSessions(ctx)
	}()

	log.Debug("chat session opened")
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			cc.send(chatResponse{Type: "error", SessionID: sess.ID, Content: "invalid message format"})
			continue
		}

		if strings.TrimSpace(req.Content) == "" {
			cc.send(chatResponse{Type: "error", SessionID: sess.ID, Content: "content is required"})
			continue
		}

		switch req.Type {
		case "message":
			transcript.Submit(req.Content)
		default:
			cc.send(chatResponse{Type: "error", SessionID: sess.ID, Content: "unknown message type: " + req.Type})
		}
	}
}

// recordSessions publishes the live session count.
func (d *Dashboard) recordSessions(ctx context.Context) {
	n, err := d.store.CountSessions(ctx)
	if err != nil {
		d.log.Warn("counting chat sessions", zap.Error(err))
		return
	}
	metrics.ChatSessions.Set(float64(n))
}
