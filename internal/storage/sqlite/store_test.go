package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/storage"
)

var _ storage.Provider = (*Store)(nil)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitAppliesDefaultSettings(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.WakeTime != constants.DefaultWakeTime || settings.PomodoroMin != constants.DefaultPomodoroMin {
		t.Errorf("expected default settings, got %+v", settings)
	}
}

func TestInitIsIdempotentAndKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	settings, _ := store.GetSettings()
	settings.MaxConsecutivePomodoros = 2
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.MaxConsecutivePomodoros != 2 {
		t.Errorf("expected saved max consecutive 2, got %d", got.MaxConsecutivePomodoros)
	}
}

func TestLoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail before Init")
	}
}

func TestLoadAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	store.Close()

	loaded := NewStore(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer loaded.Close()

	if loaded.GetConfigPath() != path {
		t.Errorf("expected config path %s, got %s", path, loaded.GetConfigPath())
	}
}

func TestTaskLifecycle(t *testing.T) {
	store := setupTestStore(t)
	deadline := 3

	task := models.Task{ID: "task-1", Name: "Thesis", EstimatedHours: 6, Urgency: 4, DeadlineDayIndex: &deadline}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	if err := store.AddTask(task); err == nil {
		t.Error("expected duplicate add to fail")
	}

	got, err := store.GetTask("task-1")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if got.Name != "Thesis" || got.EstimatedHours != 6 || got.DeadlineDayIndex == nil || *got.DeadlineDayIndex != 3 {
		t.Errorf("unexpected task: %+v", got)
	}

	got.EstimatedHours = 4.5
	got.DeadlineDayIndex = nil
	if err := store.UpdateTask(got); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}
	updated, _ := store.GetTask("task-1")
	if updated.EstimatedHours != 4.5 || updated.HasDeadline() {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := store.UpdateTask(models.Task{ID: "nope"}); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating a missing task, got %v", err)
	}
	if _, err := store.GetTask("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskSoftDelete(t *testing.T) {
	store := setupTestStore(t)

	for _, id := range []string{"task-1", "task-2"} {
		if err := store.AddTask(models.Task{ID: id, Name: id, EstimatedHours: 1}); err != nil {
			t.Fatalf("failed to add task: %v", err)
		}
	}

	if err := store.DeleteTask("task-1"); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	if _, err := store.GetTask("task-1"); err == nil {
		t.Error("expected error when getting deleted task, got nil")
	}

	all, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("failed to get all tasks: %v", err)
	}
	if len(all) != 1 || all[0].ID != "task-2" {
		t.Errorf("deleted task should not appear in GetAllTasks: %+v", all)
	}

	if err := store.DeleteTask("task-1"); err == nil {
		t.Error("expected error deleting an already deleted task")
	}
	if err := store.DeleteTask("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskRestore(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{ID: "task-2", Name: "Review", EstimatedHours: 2}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if err := store.RestoreTask(task.ID); err == nil {
		t.Error("expected error restoring a live task")
	}
	if err := store.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if err := store.RestoreTask(task.ID); err != nil {
		t.Fatalf("failed to restore task: %v", err)
	}

	restored, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("failed to get restored task: %v", err)
	}
	if restored.Name != task.Name {
		t.Errorf("expected task name %s, got %s", task.Name, restored.Name)
	}
}

func TestUnavailableSlots(t *testing.T) {
	store := setupTestStore(t)

	slots := []models.UnavailableSlot{
		{ID: "s2", DayOfWeek: 1, StartMinutes: 720, EndMinutes: 780, Type: models.SlotTypeNotPreferred},
		{ID: "s1", DayOfWeek: 0, StartMinutes: 600, EndMinutes: 660},
	}
	for _, slot := range slots {
		if err := store.AddUnavailableSlot(slot); err != nil {
			t.Fatalf("failed to add slot: %v", err)
		}
	}

	if err := store.AddUnavailableSlot(models.UnavailableSlot{ID: "bad", DayOfWeek: 0, StartMinutes: 700, EndMinutes: 600}); err == nil {
		t.Error("expected invalid slot to be rejected")
	}

	got, err := store.GetUnavailableSlots()
	if err != nil {
		t.Fatalf("failed to get slots: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(got))
	}
	if got[0].ID != "s1" || got[0].Type != models.SlotTypeUnavailable {
		t.Errorf("expected s1 first with default type, got %+v", got[0])
	}
	if got[1].Type != models.SlotTypeNotPreferred {
		t.Errorf("expected not_preferred type, got %s", got[1].Type)
	}

	if err := store.DeleteUnavailableSlot("s1"); err != nil {
		t.Fatalf("failed to delete slot: %v", err)
	}
	if err := store.DeleteUnavailableSlot("s1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEventsAreOrderedAndScoped(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	events := []models.Event{
		{ID: "e2", UserID: "u", Type: constants.EventSessionCompleted, Payload: []byte(`{"task_id":"b"}`), CreatedAt: base.Add(time.Minute)},
		{ID: "e1", UserID: "u", Type: constants.EventSessionCompleted, Payload: []byte(`{"task_id":"a"}`), CreatedAt: base},
		{ID: "e3", UserID: "other", Type: constants.EventSessionCompleted, Payload: []byte(`{}`), CreatedAt: base},
		{ID: "e4", UserID: "u", Type: constants.EventScheduleProposed, Payload: []byte(`{}`), CreatedAt: base},
	}
	for _, e := range events {
		if err := store.AppendEvent(e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	got, err := store.GetEvents("u", constants.EventSessionCompleted)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "e1" || got[1].ID != "e2" {
		t.Fatalf("expected e1, e2 in order, got %+v", got)
	}
	if !got[0].CreatedAt.Equal(base) {
		t.Errorf("expected created_at %v, got %v", base, got[0].CreatedAt)
	}
	if string(got[1].Payload) != `{"task_id":"b"}` {
		t.Errorf("unexpected payload %s", got[1].Payload)
	}
}

func TestProposalRoundTripThroughEventLog(t *testing.T) {
	store := setupTestStore(t)

	proposal := storage.StoredProposal{
		CurrentDay:      1,
		PomodoroMinutes: 25,
		Proposal: models.ScheduleProposal{
			Sessions: []models.ScheduledSession{
				{ID: "session-1", TaskID: "a", DayOfWeek: 1, StartMinutes: 480, EndMinutes: 505},
			},
			TotalPlannedHours: 25.0 / 60,
			CapacityMinutes:   3000,
		},
	}
	if err := storage.SaveProposal(store, constants.DefaultUserID, proposal); err != nil {
		t.Fatalf("SaveProposal failed: %v", err)
	}
	if err := storage.RecordCompletedSession(store, constants.DefaultUserID, models.CompletedSession{
		TaskID: "a", DurationMinutes: 25, FocusRating: 4, DayOfWeek: 1, TimeOfDay: models.TimeOfDayDawn,
	}); err != nil {
		t.Fatalf("RecordCompletedSession failed: %v", err)
	}

	latest, err := storage.LatestProposal(store, constants.DefaultUserID)
	if err != nil {
		t.Fatalf("LatestProposal failed: %v", err)
	}
	if len(latest.Proposal.Sessions) != 1 || latest.CurrentDay != 1 {
		t.Errorf("unexpected proposal: %+v", latest)
	}

	sessions, err := storage.LoadCompletedSessions(store, constants.DefaultUserID, latest.CreatedAt)
	if err != nil {
		t.Fatalf("LoadCompletedSessions failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].TaskID != "a" {
		t.Errorf("expected the session logged after the plan, got %+v", sessions)
	}
}

func TestLoadCycleSplitsSessionsAtLatestPlan(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	if err := store.AddTask(models.Task{ID: "a", Name: "Read", EstimatedHours: 3}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := store.AddUnavailableSlot(models.UnavailableSlot{
		ID: "s1", DayOfWeek: 2, StartMinutes: 600, EndMinutes: 660, Type: models.SlotTypeUnavailable,
	}); err != nil {
		t.Fatalf("AddUnavailableSlot failed: %v", err)
	}

	appendAt := func(id, eventType string, payload any, at time.Time) {
		t.Helper()
		e, err := storage.NewEvent(constants.DefaultUserID, eventType, payload)
		if err != nil {
			t.Fatalf("NewEvent failed: %v", err)
		}
		e.ID = id
		e.CreatedAt = at
		if err := store.AppendEvent(e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	session := models.CompletedSession{TaskID: "a", DurationMinutes: 25, FocusRating: 4, TimeOfDay: models.TimeOfDayDawn}
	appendAt("before", constants.EventSessionCompleted, session, base)
	appendAt("plan", constants.EventScheduleProposed, storage.StoredProposal{PomodoroMinutes: 25}, base.Add(time.Hour))
	appendAt("after-1", constants.EventSessionCompleted, session, base.Add(2*time.Hour))
	appendAt("after-2", constants.EventSessionCompleted, session, base.Add(3*time.Hour))

	cycle, err := storage.LoadCycle(store, constants.DefaultUserID)
	if err != nil {
		t.Fatalf("LoadCycle failed: %v", err)
	}
	if !cycle.HasProposal {
		t.Fatal("expected a saved plan")
	}
	if len(cycle.Earlier) != 1 || len(cycle.Current) != 2 {
		t.Errorf("expected 1 earlier and 2 current sessions, got %d and %d", len(cycle.Earlier), len(cycle.Current))
	}
	if len(cycle.History()) != 3 {
		t.Errorf("expected 3 sessions in history, got %d", len(cycle.History()))
	}
	if len(cycle.Tasks) != 1 || len(cycle.Slots) != 1 {
		t.Errorf("expected 1 task and 1 slot, got %d and %d", len(cycle.Tasks), len(cycle.Slots))
	}

	prefs, err := cycle.Preferences()
	if err != nil {
		t.Fatalf("Preferences failed: %v", err)
	}
	if prefs.WakeMinutes != 480 || prefs.SleepMinutes != 1320 {
		t.Errorf("expected default wake/sleep 480/1320, got %d/%d", prefs.WakeMinutes, prefs.SleepMinutes)
	}
}

func TestLoadCycleWithoutPlan(t *testing.T) {
	store := setupTestStore(t)
	if err := storage.RecordCompletedSession(store, constants.DefaultUserID, models.CompletedSession{
		TaskID: "a", DurationMinutes: 25, FocusRating: 3, TimeOfDay: models.TimeOfDayNight,
	}); err != nil {
		t.Fatalf("RecordCompletedSession failed: %v", err)
	}

	cycle, err := storage.LoadCycle(store, constants.DefaultUserID)
	if err != nil {
		t.Fatalf("LoadCycle failed: %v", err)
	}
	if cycle.HasProposal {
		t.Error("expected no plan")
	}
	if len(cycle.Earlier) != 0 || len(cycle.Current) != 1 {
		t.Errorf("expected every session in the current cycle, got %d earlier and %d current", len(cycle.Earlier), len(cycle.Current))
	}
}
