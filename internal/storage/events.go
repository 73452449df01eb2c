package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/models"
)

// StoredProposal is a persisted plan along with the inputs it was built for.
type StoredProposal struct {
	Proposal        models.ScheduleProposal `json:"proposal"`
	CurrentDay      int                     `json:"current_day"`
	PomodoroMinutes int                     `json:"pomodoro_minutes"`
	CreatedAt       time.Time               `json:"-"`
}

// LoggedSession is a completed session as read back from the event log.
type LoggedSession struct {
	models.CompletedSession
	LoggedAt time.Time
}

// NewEvent wraps payload as a JSON event for userID.
func NewEvent(userID, eventType string, payload any) (models.Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	return models.Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      eventType,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// RecordCompletedSession appends a completed session to the user's log.
func RecordCompletedSession(log EventLog, userID string, session models.CompletedSession) error {
	event, err := NewEvent(userID, constants.EventSessionCompleted, session)
	if err != nil {
		return err
	}
	if err := log.AppendEvent(event); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}

// LoadLoggedSessions returns every completed session the user logged, oldest first.
func LoadLoggedSessions(log EventLog, userID string) ([]LoggedSession, error) {
	events, err := log.GetEvents(userID, constants.EventSessionCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	sessions := make([]LoggedSession, 0, len(events))
	for _, e := range events {
		var s models.CompletedSession
		if err := json.Unmarshal(e.Payload, &s); err != nil {
			return nil, fmt.Errorf("failed to decode session event %s: %w", e.ID, err)
		}
		sessions = append(sessions, LoggedSession{CompletedSession: s, LoggedAt: e.CreatedAt})
	}
	return sessions, nil
}

// LoadCompletedSessions returns the sessions logged at or after since. A zero
// since returns the whole history.
func LoadCompletedSessions(log EventLog, userID string, since time.Time) ([]models.CompletedSession, error) {
	logged, err := LoadLoggedSessions(log, userID)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.CompletedSession, 0, len(logged))
	for _, s := range logged {
		if s.LoggedAt.Before(since) {
			continue
		}
		sessions = append(sessions, s.CompletedSession)
	}
	return sessions, nil
}

// SaveProposal appends a plan to the user's log.
func SaveProposal(log EventLog, userID string, proposal StoredProposal) error {
	event, err := NewEvent(userID, constants.EventScheduleProposed, proposal)
	if err != nil {
		return err
	}
	if err := log.AppendEvent(event); err != nil {
		return fmt.Errorf("failed to save proposal: %w", err)
	}
	return nil
}

// LatestProposal returns the most recently saved plan, or an error wrapping
// ErrNotFound when the user never planned.
func LatestProposal(log EventLog, userID string) (StoredProposal, error) {
	events, err := log.GetEvents(userID, constants.EventScheduleProposed)
	if err != nil {
		return StoredProposal{}, fmt.Errorf("failed to load proposals: %w", err)
	}
	if len(events) == 0 {
		return StoredProposal{}, fmt.Errorf("no saved plan: %w", ErrNotFound)
	}

	latest := events[len(events)-1]
	var stored StoredProposal
	if err := json.Unmarshal(latest.Payload, &stored); err != nil {
		return StoredProposal{}, fmt.Errorf("failed to decode proposal event %s: %w", latest.ID, err)
	}
	stored.CreatedAt = latest.CreatedAt
	return stored, nil
}
