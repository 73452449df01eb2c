// Package planfile reads stateless planning requests from YAML documents.
package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/utils"
)

// ErrInvalidRequest is wrapped by every validation failure.
var ErrInvalidRequest = errors.New("invalid plan request")

// Document is the on-disk shape of a plan request.
type Document struct {
	CurrentDay      string      `yaml:"current_day"`
	PomodoroMinutes int         `yaml:"pomodoro_minutes"`
	Preferences     Preferences `yaml:"preferences"`
	Tasks           []TaskEntry `yaml:"tasks"`
}

type Preferences struct {
	WakeTime                string      `yaml:"wake_time"`
	SleepTime               string      `yaml:"sleep_time"`
	PreferredActivityTime   string      `yaml:"preferred_activity_time"`
	MaxConsecutivePomodoros int         `yaml:"max_consecutive_pomodoros"`
	UnavailableSlots        []SlotEntry `yaml:"unavailable_slots"`
}

type SlotEntry struct {
	Day   string `yaml:"day"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Type  string `yaml:"type"`
}

type TaskEntry struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	EstimatedHours float64 `yaml:"estimated_hours"`
	Urgency        float64 `yaml:"urgency"`
	Deadline       string  `yaml:"deadline"`
}

// Request is a validated plan request ready for the scheduler.
type Request struct {
	Tasks           []models.Task
	Preferences     models.UserPreferences
	CurrentDay      int
	PomodoroMinutes int
}

// Settings renders the request's preferences as persisted settings.
func (r Request) Settings() models.Settings {
	return models.Settings{
		WakeTime:                utils.FormatMinutes(r.Preferences.WakeMinutes),
		SleepTime:               utils.FormatMinutes(r.Preferences.SleepMinutes),
		PreferredActivityTime:   string(r.Preferences.PreferredActivityTime),
		MaxConsecutivePomodoros: r.Preferences.MaxConsecutivePomodoros,
		PomodoroMin:             r.PomodoroMinutes,
	}
}

// Load reads and validates the request at path.
func Load(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read plan file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a request. Unknown fields are rejected.
// A missing current_day means today.
func Parse(data []byte) (Request, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return doc.Request(time.Now())
}

// Request validates the document and fills defaults. now decides the
// current day when the document does not name one.
func (d Document) Request(now time.Time) (Request, error) {
	req := Request{
		CurrentDay:      utils.TodayIndex(now),
		PomodoroMinutes: d.PomodoroMinutes,
	}

	if d.CurrentDay != "" {
		day, err := utils.ParseDay(d.CurrentDay)
		if err != nil {
			return Request{}, invalid("current_day: %v", err)
		}
		req.CurrentDay = day
	}

	switch {
	case req.PomodoroMinutes == 0:
		req.PomodoroMinutes = constants.DefaultPomodoroMin
	case req.PomodoroMinutes < 0:
		return Request{}, invalid("pomodoro_minutes must be positive, got %d", req.PomodoroMinutes)
	}

	prefs, err := d.Preferences.resolve()
	if err != nil {
		return Request{}, err
	}
	req.Preferences = prefs

	seen := make(map[string]bool, len(d.Tasks))
	for i, entry := range d.Tasks {
		task, err := entry.resolve()
		if err != nil {
			return Request{}, fmt.Errorf("task %d: %w", i+1, err)
		}
		if seen[task.ID] {
			return Request{}, invalid("task %d: duplicate id %q", i+1, task.ID)
		}
		seen[task.ID] = true
		req.Tasks = append(req.Tasks, task)
	}

	return req, nil
}

func (p Preferences) resolve() (models.UserPreferences, error) {
	settings := models.Settings{
		WakeTime:                p.WakeTime,
		SleepTime:               p.SleepTime,
		PreferredActivityTime:   strings.ToLower(p.PreferredActivityTime),
		MaxConsecutivePomodoros: p.MaxConsecutivePomodoros,
	}
	models.ApplyDefaultSettings(&settings)

	if settings.MaxConsecutivePomodoros < 1 {
		return models.UserPreferences{}, invalid("max_consecutive_pomodoros must be at least 1, got %d", settings.MaxConsecutivePomodoros)
	}
	if !models.TimeOfDay(settings.PreferredActivityTime).Valid() {
		return models.UserPreferences{}, invalid("unknown preferred_activity_time %q", p.PreferredActivityTime)
	}

	slots := make([]models.UnavailableSlot, 0, len(p.UnavailableSlots))
	for i, entry := range p.UnavailableSlots {
		slot, err := entry.resolve()
		if err != nil {
			return models.UserPreferences{}, fmt.Errorf("unavailable slot %d: %w", i+1, err)
		}
		slots = append(slots, slot)
	}

	prefs, err := settings.Preferences(slots)
	if err != nil {
		return models.UserPreferences{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if prefs.WakeMinutes >= prefs.SleepMinutes {
		return models.UserPreferences{}, invalid("wake_time %s must be before sleep_time %s", settings.WakeTime, settings.SleepTime)
	}
	return prefs, nil
}

func (s SlotEntry) resolve() (models.UnavailableSlot, error) {
	day, err := utils.ParseDay(s.Day)
	if err != nil {
		return models.UnavailableSlot{}, invalid("%v", err)
	}
	start, err := utils.ParseTimeToMinutes(s.Start)
	if err != nil {
		return models.UnavailableSlot{}, invalid("invalid start %q", s.Start)
	}
	end, err := utils.ParseTimeToMinutes(s.End)
	if err != nil {
		return models.UnavailableSlot{}, invalid("invalid end %q", s.End)
	}

	slotType := models.SlotTypeUnavailable
	if s.Type != "" {
		slotType = models.SlotType(strings.ToLower(s.Type))
	}
	if slotType != models.SlotTypeUnavailable && slotType != models.SlotTypeNotPreferred {
		return models.UnavailableSlot{}, invalid("unknown slot type %q", s.Type)
	}

	slot := models.UnavailableSlot{
		ID:           uuid.NewString(),
		DayOfWeek:    day,
		StartMinutes: start,
		EndMinutes:   end,
		Type:         slotType,
	}
	if !slot.Valid() {
		return models.UnavailableSlot{}, invalid("start %s must be before end %s", s.Start, s.End)
	}
	return slot, nil
}

func (t TaskEntry) resolve() (models.Task, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return models.Task{}, invalid("name is required")
	}
	if t.EstimatedHours < 0 {
		return models.Task{}, invalid("estimated_hours must not be negative, got %v", t.EstimatedHours)
	}

	task := models.Task{
		ID:             strings.TrimSpace(t.ID),
		Name:           name,
		EstimatedHours: t.EstimatedHours,
		Urgency:        t.Urgency,
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if t.Deadline != "" {
		day, err := utils.ParseDay(t.Deadline)
		if err != nil {
			return models.Task{}, invalid("deadline: %v", err)
		}
		task.DeadlineDayIndex = &day
	}
	return task, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
