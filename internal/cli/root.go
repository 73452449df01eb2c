package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/backup"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/scheduler"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Scheduler *scheduler.Scheduler
	UserID    string
	// Now is the clock used to pick the current planning day.
	Now func() time.Time
}

// NewContext builds a Context with the default clock.
func NewContext(store storage.Provider, userID string) *Context {
	return &Context{
		Store:     store,
		Scheduler: scheduler.New(),
		UserID:    userID,
		Now:       time.Now,
	}
}

// CurrentTime reads the context clock.
func (c *Context) CurrentTime() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today returns the current planning day (0 = Monday).
func (c *Context) Today() int {
	return utils.TodayIndex(c.CurrentTime())
}

// Settings returns the stored settings with defaults filled in.
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// TaskNames maps task ids to names for display.
func (c *Context) TaskNames() map[string]string {
	tasks, err := c.Store.GetAllTasks()
	if err != nil {
		logger.Warn("Failed to load task names", "error", err)
		return map[string]string{}
	}
	names := make(map[string]string, len(tasks))
	for _, t := range tasks {
		names[t.ID] = t.Name
	}
	return names
}

// PerformAutomaticBackup backs up a sqlite database and only logs failures.
// Other stores are left to their own backup tooling.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
