package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := cli.NewContext(store, constants.DefaultUserID)

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("settings list failed: %v", err)
	}
}

func TestSettingsCmd_Update(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		WakeTime:                strPtr("06:30"),
		PreferredActivityTime:   strPtr("evening"),
		MaxConsecutivePomodoros: intPtr(3),
		PomodoroMin:             intPtr(50),
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	settings, err := ctx.Settings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.WakeTime != "06:30" || settings.PreferredActivityTime != "evening" {
		t.Errorf("unexpected settings %+v", settings)
	}
	if settings.MaxConsecutivePomodoros != 3 || settings.PomodoroMin != 50 {
		t.Errorf("unexpected settings %+v", settings)
	}
	if settings.SleepTime != constants.DefaultSleepTime {
		t.Errorf("expected untouched sleep time, got %s", settings.SleepTime)
	}
}

func TestSettingsCmd_RejectsWakeAfterSleep(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{WakeTime: strPtr("23:00")}
	if err := cmd.Run(ctx); err == nil {
		t.Fatal("expected error when wake time is after sleep time")
	}

	settings, err := ctx.Settings()
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.WakeTime != constants.DefaultWakeTime {
		t.Errorf("expected settings to be unchanged, got wake %s", settings.WakeTime)
	}
}

func TestSettingsCmd_Validate(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"bad wake", SettingsCmd{WakeTime: strPtr("7am")}},
		{"bad sleep", SettingsCmd{SleepTime: strPtr("late")}},
		{"unknown time of day", SettingsCmd{PreferredActivityTime: strPtr("lunch")}},
		{"zero max consecutive", SettingsCmd{MaxConsecutivePomodoros: intPtr(0)}},
		{"zero pomodoro", SettingsCmd{PomodoroMin: intPtr(0)}},
		{"zero timeout", SettingsCmd{PlanningTimeoutSec: intPtr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
