package backups

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/pomoplan/internal/backup"
	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/constants"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/storage/sqlite"
)

var errNotSqlite = errors.New("backups are only supported for sqlite databases")

var processesFunc = ps.Processes

// runningInstances lists other pomoplan processes that may hold the
// database open.
func runningInstances() ([]ps.Process, error) {
	procs, err := processesFunc()
	if err != nil {
		return nil, err
	}
	self := os.Getpid()
	var out []ps.Process
	for _, p := range procs {
		if p == nil || p.Pid() == self {
			continue
		}
		if p.Executable() == constants.AppName || strings.HasPrefix(p.Executable(), constants.AppName+".") {
			out = append(out, p)
		}
	}
	return out, nil
}

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil, errNotSqlite
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backupPath, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		fmt.Printf("  %s  %s  (%.1f KB)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			float64(b.Size)/1024.0,
		)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Restore without asking for confirmation."`
	Force      bool   `help:"Restore even if other pomoplan processes are running."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backupPath, err := resolveBackupPath(c.BackupFile, mgr.Dir())
	if err != nil {
		return err
	}

	if !c.Force {
		others, err := runningInstances()
		if err != nil {
			logger.Warn("Failed to check for running instances", "error", err)
		}
		if len(others) > 0 {
			pids := make([]string, len(others))
			for i, p := range others {
				pids[i] = fmt.Sprintf("%d", p.Pid())
			}
			return fmt.Errorf("other %s processes are running (pid %s); stop them or pass --force",
				constants.AppName, strings.Join(pids, ", "))
		}
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current database with the backup.")
		fmt.Println("A backup of your current database will be created before restoring.")

		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Restore from %s?", backupPath)).
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close database connection", "error", err)
	}

	previous, err := mgr.Restore(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully!")
	if previous != "" {
		fmt.Printf("  Previous database saved as: %s\n", filepath.Base(previous))
	}
	return nil
}

// resolveBackupPath accepts an absolute path, a path relative to the working
// directory, or a file name inside the backup directory.
func resolveBackupPath(name, backupDir string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}

	if _, err := os.Stat(name); err == nil {
		abs, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return abs, nil
	}

	candidate := filepath.Join(backupDir, name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", backupDir)
}
