package storage

import (
	"errors"

	"github.com/julianstephens/pomoplan/internal/models"
)

// ErrNotFound is wrapped by stores when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error
	RestoreTask(id string) error

	// Availability
	AddUnavailableSlot(models.UnavailableSlot) error
	GetUnavailableSlots() ([]models.UnavailableSlot, error)
	DeleteUnavailableSlot(id string) error

	EventLog

	// Utils
	GetConfigPath() string
}

// EventLog is the append-only per-user event store. GetEvents returns events
// oldest first.
type EventLog interface {
	AppendEvent(models.Event) error
	GetEvents(userID, eventType string) ([]models.Event, error)
}
