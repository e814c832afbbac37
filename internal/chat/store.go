package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wilbanksalexis/Powering/internal/db"
)

// ErrSessionNotFound is returned for an unknown session ID.
var ErrSessionNotFound = errors.New("chat session not found")

// Session is one live chat connection.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store keeps the transcripts of live sessions in an in-memory database.
type Store struct {
	db *db.DB
}

// NewStore creates a store backed by database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateSession starts a new session.
func (s *Store) CreateSession(ctx context.Context) (*Session, error) {
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, created_at, updated_at) VALUES (?, ?, ?)`,
		sess.ID, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// AddMessage appends msg to a session's transcript.
func (s *Store) AddMessage(ctx context.Context, sessionID string, msg Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, sender, content, place, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, sessionID, string(msg.Sender), msg.Text, string(msg.Place), msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("adding message: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE chat_sessions SET updated_at = ? WHERE id = ?`, msg.CreatedAt, sessionID,
	); err != nil {
		return fmt.Errorf("touching session: %w", err)
	}
	return nil
}

// GetMessages returns a session's messages in the order they were added.
func (s *Store) GetMessages(ctx context.Context, sessionID string) ([]Message, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM chat_sessions WHERE id = ?`, sessionID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sender, content, place, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		var (
			m             Message
			sender, place string
		)
		if err := rows.Scan(&m.ID, &sender, &m.Text, &place, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Sender = Sender(sender)
		m.Place = Place(place)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// DeleteSession drops a session and its messages.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting messages: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// CountSessions returns the number of live sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&count)
	return count, err
}
