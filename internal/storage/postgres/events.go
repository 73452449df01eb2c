package postgres

import (
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/models"
)

func (s *Store) AppendEvent(event models.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO events (id, user_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.UserID, event.Type, string(event.Payload), createdAt.UTC(),
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
		WHERE user_id = $1 AND event_type = $2
		ORDER BY created_at, seq`, userID, eventType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Type, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt = e.CreatedAt.UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}
