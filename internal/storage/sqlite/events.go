package sqlite

import (
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/models"
)

// eventTimeLayout is fixed width so created_at sorts lexically.
const eventTimeLayout = "2006-01-02T15:04:05.000000000Z"

func (s *Store) AppendEvent(event models.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO events (id, user_id, event_type, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		event.ID, event.UserID, event.Type, string(event.Payload),
		createdAt.UTC().Format(eventTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.Type, err)
	}
	return nil
}

func (s *Store) GetEvents(userID, eventType string) ([]models.Event, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, event_type, payload, created_at
		FROM events
		WHERE user_id = ? AND event_type = ?
		ORDER BY created_at, rowid`, userID, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var payload, createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &payload, &createdAt); err != nil {
			return nil, err
		}
		e.Payload = []byte(payload)
		e.CreatedAt, err = time.Parse(eventTimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at on event %s: %w", e.ID, err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
