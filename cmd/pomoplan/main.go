package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/cli/backups"
	"github.com/julianstephens/pomoplan/internal/cli/optimize"
	"github.com/julianstephens/pomoplan/internal/cli/plans"
	"github.com/julianstephens/pomoplan/internal/cli/sessions"
	"github.com/julianstephens/pomoplan/internal/cli/settings"
	"github.com/julianstephens/pomoplan/internal/cli/slots"
	"github.com/julianstephens/pomoplan/internal/cli/system"
	"github.com/julianstephens/pomoplan/internal/cli/tasks"
	"github.com/julianstephens/pomoplan/internal/constants"
	errs "github.com/julianstephens/pomoplan/internal/errors"
	"github.com/julianstephens/pomoplan/internal/logger"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use ${env_var}, the OS keyring, or .pgpass instead." type:"string" default:"${default_config}"`
	User    string `help:"User whose sessions and plans are read and written." default:"${default_user}"`
	Debug   bool   `help:"Mirror debug logs to stderr."`

	Init      system.InitCmd        `cmd:"" help:"Initialize pomoplan storage."`
	Tui       system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Plan      plans.PlanCmd         `cmd:"" help:"Plan the week from stored tasks, or from a request file."`
	Replan    plans.ReplanCmd       `cmd:"" help:"Re-plan the rest of the week from logged progress."`
	Week      plans.WeekCmd         `cmd:"" help:"Show the latest plan."`
	Import    plans.ImportCmd       `cmd:"" help:"Import tasks and preferences from a request file."`
	Metrics   optimize.MetricsCmd   `cmd:"" help:"Show metrics for the current plan."`
	Recommend optimize.RecommendCmd `cmd:"" help:"Suggest tuning changes from logged sessions."`
	Session   struct {
		Log  sessions.SessionLogCmd  `cmd:"" help:"Log a completed pomodoro."`
		List sessions.SessionListCmd `cmd:"" help:"List logged sessions."`
	} `cmd:"" help:"Log and review completed sessions."`
	Task struct {
		Add     tasks.TaskAddCmd     `cmd:"" help:"Add a new task."`
		Edit    tasks.TaskEditCmd    `cmd:"" help:"Edit an existing task."`
		Delete  tasks.TaskDeleteCmd  `cmd:"" help:"Delete a task."`
		Restore tasks.TaskRestoreCmd `cmd:"" help:"Restore a deleted task."`
		List    tasks.TaskListCmd    `cmd:"" help:"List all tasks."`
	} `cmd:"" help:"Manage tasks."`
	Slot struct {
		Add    slots.SlotAddCmd    `cmd:"" help:"Block out time on a day."`
		List   slots.SlotListCmd   `cmd:"" help:"List blocked time."`
		Delete slots.SlotDeleteCmd `cmd:"" help:"Remove blocked time."`
	} `cmd:"" help:"Manage unavailable and not-preferred time."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	ConfigCmds struct {
		SetConnection   system.SetConnectionCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		ClearConnection system.ClearConnectionCmd `cmd:"" help:"Remove the stored connection string."`
		Show            system.ShowConnectionCmd  `cmd:"" help:"Show where the connection string comes from."`
	} `cmd:"" name:"config" help:"Manage database credentials."`
}

func newParser(app *CLI) (*kong.Kong, error) {
	return kong.New(app,
		kong.Name(constants.AppName),
		kong.Description("Adaptive pomodoro planner for the week"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"default_user":   constants.DefaultUserID,
			"env_var":        constants.ConnectionEnvVar,
		},
	)
}

func main() {
	var app CLI
	parser, err := newParser(&app)
	if err != nil {
		errs.Fatal(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := run(ctx, &app); err != nil {
		errs.Fatal(err)
	}
}

// run sets up logging and storage for the parsed command and executes it.
func run(ctx *kong.Context, app *CLI) error {
	configDir, err := logDir(app.Config)
	if err != nil {
		return err
	}
	if err := logger.Init(logger.Config{Debug: app.Debug, ConfigDir: configDir}); err != nil {
		return err
	}

	store, err := openStore(app.Config)
	if err != nil {
		return err
	}
	defer store.Close()

	command := ctx.Command()
	if needsStore(command, app.Plan.File) {
		if err := store.Load(); err != nil {
			return err
		}
	}
	logger.Debug("Running command", "command", command, "store", store.GetConfigPath(), "user", app.User)

	return ctx.Run(cli.NewContext(store, app.User))
}

// needsStore reports whether command reads an existing database. init
// creates one, credential commands only touch the keyring, and planning
// from a request file is stateless.
func needsStore(command, planFile string) bool {
	switch {
	case command == "init":
		return false
	case strings.HasPrefix(command, "config "):
		return false
	case command == "plan" && planFile != "":
		return false
	}
	return true
}

// logDir places logs next to a sqlite database, or in the default config
// directory for PostgreSQL.
func logDir(config string) (string, error) {
	path := config
	if isPostgres(config) {
		path = constants.DefaultConfigPath
	}
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return "", err
	}
	return filepath.Dir(expanded), nil
}
