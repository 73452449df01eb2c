package sessions

import (
	"fmt"
	"time"

	"github.com/julianstephens/pomoplan/internal/cli"
	"github.com/julianstephens/pomoplan/internal/models"
	"github.com/julianstephens/pomoplan/internal/storage"
	"github.com/julianstephens/pomoplan/internal/utils"
)

type SessionLogCmd struct {
	TaskID   string  `arg:"" help:"ID of the task worked on."`
	Focus    float64 `short:"f" help:"Focus rating from 0 to 5." required:""`
	Minutes  int     `short:"m" help:"Minutes worked. Defaults to the pomodoro length."`
	Day      string  `short:"d" help:"Day worked (mon-sun or 0-6). Defaults to today."`
	At       string  `help:"Start time (HH:MM) used to bucket focus. Defaults to now."`
	Sequence *int    `short:"s" help:"0-based position of the session within an unbroken run."`
}

func (c *SessionLogCmd) Validate() error {
	if c.Focus < 0 || c.Focus > 5 {
		return fmt.Errorf("focus must be between 0 and 5")
	}
	if c.Minutes < 0 {
		return fmt.Errorf("minutes must not be negative")
	}
	if c.Day != "" {
		if _, err := utils.ParseDay(c.Day); err != nil {
			return err
		}
	}
	if c.At != "" && !utils.ValidateTimeFormat(c.At) {
		return fmt.Errorf("invalid --at time format (expected HH:MM): %s", c.At)
	}
	if c.Sequence != nil && *c.Sequence < 0 {
		return fmt.Errorf("sequence must not be negative")
	}
	return nil
}

// Session builds the completed session, filling defaults from now and the
// configured pomodoro length.
func (c *SessionLogCmd) Session(now time.Time, pomodoroMinutes int) (models.CompletedSession, error) {
	session := models.CompletedSession{
		TaskID:          c.TaskID,
		DurationMinutes: c.Minutes,
		FocusRating:     c.Focus,
		DayOfWeek:       utils.TodayIndex(now),
		SequenceNumber:  c.Sequence,
	}
	if session.DurationMinutes == 0 {
		session.DurationMinutes = pomodoroMinutes
	}

	if c.Day != "" {
		day, err := utils.ParseDay(c.Day)
		if err != nil {
			return models.CompletedSession{}, err
		}
		session.DayOfWeek = day
	}

	minutes := now.Hour()*60 + now.Minute()
	if c.At != "" {
		m, err := utils.ParseTimeToMinutes(c.At)
		if err != nil {
			return models.CompletedSession{}, err
		}
		minutes = m
	}
	session.TimeOfDay = models.TimeOfDayFor(minutes)

	return session, nil
}

func (c *SessionLogCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(c.TaskID)
	if err != nil {
		return fmt.Errorf("failed to find task with ID %s: %w", c.TaskID, err)
	}
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	session, err := c.Session(ctx.CurrentTime(), settings.PomodoroMin)
	if err != nil {
		return err
	}
	if err := storage.RecordCompletedSession(ctx.Store, ctx.UserID, session); err != nil {
		return err
	}

	fmt.Printf("Logged %d min on %s (%s %s, focus %.1f)\n", session.DurationMinutes, task.Name,
		utils.DayName(session.DayOfWeek), session.TimeOfDay, session.FocusRating)
	return nil
}

type SessionListCmd struct {
	All bool `help:"Show the whole history instead of the current plan's cycle."`
}

func (c *SessionListCmd) Run(ctx *cli.Context) error {
	logged, err := storage.LoadLoggedSessions(ctx.Store, ctx.UserID)
	if err != nil {
		return err
	}

	var since time.Time
	if !c.All {
		latest, err := storage.LatestProposal(ctx.Store, ctx.UserID)
		if err == nil {
			since = latest.CreatedAt
		}
	}

	names := ctx.TaskNames()
	shown := 0
	for _, s := range logged {
		if s.LoggedAt.Before(since) {
			continue
		}
		if shown == 0 {
			fmt.Println("Sessions:")
		}
		seq := "-"
		if s.SequenceNumber != nil {
			seq = fmt.Sprintf("#%d", *s.SequenceNumber+1)
		}
		fmt.Printf("  %s  %s %-8s %3d min  focus %.1f  %-3s %s\n",
			s.LoggedAt.Local().Format("2006-01-02 15:04"),
			utils.DayName(s.DayOfWeek), s.TimeOfDay, s.DurationMinutes, s.FocusRating, seq,
			cli.TaskLabel(names, s.TaskID))
		shown++
	}

	if shown == 0 {
		fmt.Println("No sessions found")
	}
	return nil
}
