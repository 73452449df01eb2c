package metrics

import (
	"math"
	"testing"

	"github.com/julianstephens/pomoplan/internal/models"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func session(day, start, end int) models.ScheduledSession {
	return models.ScheduledSession{TaskID: "a", DayOfWeek: day, StartMinutes: start, EndMinutes: end}
}

func completedOn(day, minutes int, focus float64) models.CompletedSession {
	return models.CompletedSession{
		TaskID:          "a",
		DurationMinutes: minutes,
		FocusRating:     focus,
		DayOfWeek:       day,
		TimeOfDay:       models.TimeOfDayDawn,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		adherence float64
		focus     float64
		want      models.DailyStatus
	}{
		{name: "low adherence", adherence: 0.3, focus: 0.9, want: models.StatusFatigued},
		{name: "low focus", adherence: 1.0, focus: 0.3, want: models.StatusFatigued},
		{name: "behind", adherence: 0.6, focus: 0.8, want: models.StatusBehind},
		{name: "overperforming", adherence: 1.2, focus: 0.8, want: models.StatusOverperforming},
		{name: "on track", adherence: 0.9, focus: 0.8, want: models.StatusOnTrack},
		{name: "boundary on track", adherence: 1.1, focus: 0.4, want: models.StatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.adherence, tt.focus); got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.adherence, tt.focus, got, tt.want)
			}
		})
	}
}

func TestAdjustmentFactor(t *testing.T) {
	tests := []struct {
		status models.DailyStatus
		focus  float64
		want   float64
	}{
		{status: models.StatusFatigued, focus: 0.9, want: 0.7},
		{status: models.StatusBehind, focus: 0.8, want: 0.9},
		{status: models.StatusBehind, focus: 0.5, want: 1.0},
		{status: models.StatusOnTrack, focus: 0.8, want: 1.0},
		{status: models.StatusOverperforming, focus: 1.0, want: 1.0},
	}

	for _, tt := range tests {
		if got := AdjustmentFactor(tt.status, tt.focus); got != tt.want {
			t.Errorf("AdjustmentFactor(%s, %v) = %v, want %v", tt.status, tt.focus, got, tt.want)
		}
	}
}

func TestDaily(t *testing.T) {
	scheduled := []models.ScheduledSession{
		session(1, 480, 505),
		session(1, 505, 530),
		session(1, 530, 555),
		session(1, 555, 580),
		session(2, 480, 505),
	}
	completed := []models.CompletedSession{
		completedOn(1, 25, 4),
		completedOn(1, 25, 5),
		completedOn(1, 25, 3),
		completedOn(2, 25, 1),
	}

	d := Daily(1, scheduled, completed)

	if d.PlannedMinutes != 100 || d.ActualMinutes != 75 {
		t.Errorf("expected 100 planned / 75 actual, got %d / %d", d.PlannedMinutes, d.ActualMinutes)
	}
	if !approxEqual(d.AdherenceScore, 0.75) {
		t.Errorf("expected adherence 0.75, got %f", d.AdherenceScore)
	}
	if !approxEqual(d.FocusScore, 0.8) {
		t.Errorf("expected focus 0.8, got %f", d.FocusScore)
	}
	if d.Status != models.StatusOnTrack || d.AdjustmentFactor != 1.0 {
		t.Errorf("expected on-track day with factor 1.0, got %s / %v", d.Status, d.AdjustmentFactor)
	}
}

func TestDaily_NothingPlanned(t *testing.T) {
	completed := []models.CompletedSession{completedOn(3, 50, 5)}

	d := Daily(3, nil, completed)
	if d.AdherenceScore != 0 || d.Status != models.StatusFatigued {
		t.Errorf("expected zero adherence and fatigued status, got %+v", d)
	}

	r := RollingDaily(3, nil, completed)
	if r.AdherenceScore != 1.0 || r.Status != models.StatusOnTrack {
		t.Errorf("expected ad-hoc work to count as adherent, got %+v", r)
	}
}

func TestDaily_EmptyDayIsFatigued(t *testing.T) {
	d := RollingDaily(5, nil, nil)

	if d.AdherenceScore != 0 || d.FocusScore != 0 {
		t.Errorf("expected zero scores, got %+v", d)
	}
	if d.Status != models.StatusFatigued || d.AdjustmentFactor != 0.7 {
		t.Errorf("expected fatigued day with factor 0.7, got %s / %v", d.Status, d.AdjustmentFactor)
	}
}

func TestWeek_CoversEveryDay(t *testing.T) {
	week := Week([]models.ScheduledSession{session(6, 600, 625)}, []models.CompletedSession{completedOn(6, 25, 4)})

	for i, d := range week {
		if d.DayOfWeek != i {
			t.Errorf("position %d holds day %d", i, d.DayOfWeek)
		}
	}
	if week[6].AdherenceScore != 1.0 {
		t.Errorf("expected Sunday adherence 1.0, got %f", week[6].AdherenceScore)
	}
}
