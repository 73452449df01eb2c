package plans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
)

const request = `pomodoro_minutes: 30
preferences:
  wake_time: "07:00"
  sleep_time: "21:00"
  preferred_activity_time: evening
  max_consecutive_pomodoros: 2
  unavailable_slots:
    - {day: mon, start: "12:00", end: "13:00"}
tasks:
  - {id: essay, name: Essay, estimated_hours: 3, urgency: 1, deadline: thu}
  - {id: slides, name: Slides, estimated_hours: 1}
`

func setupImport(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dir := t.TempDir()

	store := sqlite.NewStore(filepath.Join(dir, "pomoplan.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	path := filepath.Join(dir, "week.yaml")
	if err := os.WriteFile(path, []byte(request), 0o644); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}
	return cli.NewContext(store, constants.DefaultUserID), path
}

func TestImportStoresRequest(t *testing.T) {
	ctx, path := setupImport(t)

	if err := (&ImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	settings, err := ctx.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if settings.WakeTime != "07:00" || settings.SleepTime != "21:00" {
		t.Errorf("unexpected wake/sleep %s/%s", settings.WakeTime, settings.SleepTime)
	}
	if settings.MaxConsecutivePomodoros != 2 || settings.PomodoroMin != 30 {
		t.Errorf("unexpected settings %+v", settings)
	}
	if settings.PlanningTimeoutSec != constants.DefaultPlanningTimeoutSec {
		t.Errorf("expected planning timeout to be kept, got %d", settings.PlanningTimeoutSec)
	}

	slots, err := ctx.Store.GetUnavailableSlots()
	if err != nil {
		t.Fatalf("GetUnavailableSlots failed: %v", err)
	}
	if len(slots) != 1 || slots[0].StartMinutes != 720 {
		t.Errorf("unexpected slots %+v", slots)
	}

	essay, err := ctx.Store.GetTask("essay")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if essay.EstimatedHours != 3 || essay.DeadlineDayIndex == nil || *essay.DeadlineDayIndex != 3 {
		t.Errorf("unexpected task %+v", essay)
	}
}

func TestImportUpdatesExistingTasks(t *testing.T) {
	ctx, path := setupImport(t)
	if err := ctx.Store.AddTask(models.Task{ID: "essay", Name: "Old essay", EstimatedHours: 10}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	cmd := &ImportCmd{File: path, SkipSettings: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	essay, err := ctx.Store.GetTask("essay")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if essay.Name != "Essay" || essay.EstimatedHours != 3 {
		t.Errorf("expected task to be updated, got %+v", essay)
	}
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(tasks))
	}

	settings, err := ctx.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if settings.WakeTime != constants.DefaultWakeTime {
		t.Errorf("expected stored settings to be kept, got wake %s", settings.WakeTime)
	}
}

func TestImportReplaceSlots(t *testing.T) {
	ctx, path := setupImport(t)
	if err := ctx.Store.AddUnavailableSlot(models.UnavailableSlot{
		ID: "old", DayOfWeek: 4, StartMinutes: 600, EndMinutes: 660, Type: models.SlotTypeUnavailable,
	}); err != nil {
		t.Fatalf("AddUnavailableSlot failed: %v", err)
	}

	if err := (&ImportCmd{File: path, ReplaceSlots: true}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	slots, err := ctx.Store.GetUnavailableSlots()
	if err != nil {
		t.Fatalf("GetUnavailableSlots failed: %v", err)
	}
	if len(slots) != 1 || slots[0].ID == "old" {
		t.Errorf("expected only the imported slot, got %+v", slots)
	}
}
