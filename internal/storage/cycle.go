package storage

import (
	"errors"
	"fmt"

	"github.com/julianstephens/pomoplan/internal/models"
)

// Cycle is a snapshot of everything needed to evaluate or re-plan the
// current planning cycle. A cycle starts when a plan is saved.
type Cycle struct {
	Tasks       []models.Task
	Settings    models.Settings
	Slots       []models.UnavailableSlot
	Proposal    StoredProposal
	HasProposal bool
	// Earlier holds sessions logged before the current plan was saved.
	Earlier []models.CompletedSession
	// Current holds sessions logged since the current plan was saved.
	Current []models.CompletedSession
}

// History returns every logged session, oldest first.
func (c Cycle) History() []models.CompletedSession {
	all := make([]models.CompletedSession, 0, len(c.Earlier)+len(c.Current))
	all = append(all, c.Earlier...)
	return append(all, c.Current...)
}

// Preferences combines the stored settings and slots.
func (c Cycle) Preferences() (models.UserPreferences, error) {
	return c.Settings.Preferences(c.Slots)
}

// LoadCycle reads the user's tasks, settings, slots, latest plan, and
// session history from store.
func LoadCycle(store Provider, userID string) (Cycle, error) {
	var c Cycle
	var err error

	if c.Tasks, err = store.GetAllTasks(); err != nil {
		return Cycle{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	if c.Settings, err = store.GetSettings(); err != nil {
		return Cycle{}, fmt.Errorf("failed to load settings: %w", err)
	}
	models.ApplyDefaultSettings(&c.Settings)
	if c.Slots, err = store.GetUnavailableSlots(); err != nil {
		return Cycle{}, fmt.Errorf("failed to load unavailable slots: %w", err)
	}

	c.Proposal, err = LatestProposal(store, userID)
	switch {
	case err == nil:
		c.HasProposal = true
	case errors.Is(err, ErrNotFound):
	default:
		return Cycle{}, err
	}

	logged, err := LoadLoggedSessions(store, userID)
	if err != nil {
		return Cycle{}, err
	}
	for _, s := range logged {
		if c.HasProposal && s.LoggedAt.Before(c.Proposal.CreatedAt) {
			c.Earlier = append(c.Earlier, s.CompletedSession)
			continue
		}
		c.Current = append(c.Current, s.CompletedSession)
	}

	return c, nil
}
