package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/storage/postgres"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting an existing sqlite database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		source, err := openSource(c.Source)
		if err != nil {
			return err
		}
		defer source.Close()

		if err := copyData(source, ctx.Store, ctx.UserID); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return errors.New("--force only supports sqlite databases")
	}

	dbPath := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSource := filepath.Abs(c.Source)
		if errDB == nil && errSource == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	var store storage.Provider
	if postgres.IsConnString(source) {
		if valid, err := postgres.ValidateConnString(source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use %s or .pgpass instead", constants.ConnectionEnvVar)
			}
			return nil, err
		}
		store = postgres.New(source)
	} else {
		store = sqlite.NewStore(source)
	}

	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load source database: %w", err)
	}
	return store, nil
}

// copyData copies settings, active tasks, slots, and userID's event log
// from src into dst.
func copyData(src, dst storage.Provider, userID string) error {
	fmt.Println("  Copying settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Copying tasks...")
	tasks, err := src.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, task := range tasks {
		if err := dst.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task %s: %w", task.ID, err)
		}
	}
	fmt.Printf("    Copied %d tasks\n", len(tasks))

	fmt.Println("  Copying slots...")
	slots, err := src.GetUnavailableSlots()
	if err != nil {
		return fmt.Errorf("failed to get slots from source: %w", err)
	}
	for _, slot := range slots {
		if err := dst.AddUnavailableSlot(slot); err != nil {
			return fmt.Errorf("failed to add slot %s: %w", slot.ID, err)
		}
	}
	fmt.Printf("    Copied %d slots\n", len(slots))

	fmt.Println("  Copying events...")
	copied := 0
	for _, eventType := range []string{constants.EventSessionCompleted, constants.EventScheduleProposed} {
		events, err := src.GetEvents(userID, eventType)
		if err != nil {
			return fmt.Errorf("failed to get %s events from source: %w", eventType, err)
		}
		for _, e := range events {
			if err := dst.AppendEvent(e); err != nil {
				return fmt.Errorf("failed to append event %s: %w", e.ID, err)
			}
		}
		copied += len(events)
	}
	fmt.Printf("    Copied %d events\n", copied)

	return nil
}
