package optimize

import (
	"errors"
	"testing"

	"github.com/julianstephens/pomoplan/internal/models"
)

type fakeApplier struct {
	calls []models.Recommendation
	fail  models.RecommendationType
}

func (f *fakeApplier) Apply(rec models.Recommendation) (bool, error) {
	f.calls = append(f.calls, rec)
	if rec.Type == f.fail {
		return false, errors.New("store unavailable")
	}
	return rec.Type != models.RecommendLoadReduction, nil
}

func TestApplyAllCountsChanges(t *testing.T) {
	recs := []models.Recommendation{
		{Type: models.RecommendConsecutiveLimit, Value: 2},
		{Type: models.RecommendEstimateAdjustment, TaskID: "a", Value: 1.5},
		{Type: models.RecommendLoadReduction, Value: 0.8},
	}

	f := &fakeApplier{}
	if got := applyAll(f, recs); got != 2 {
		t.Errorf("expected 2 applied, got %d", got)
	}
	if len(f.calls) != 3 {
		t.Errorf("expected every recommendation to be offered, got %d", len(f.calls))
	}
}

func TestApplyAllContinuesAfterFailure(t *testing.T) {
	recs := []models.Recommendation{
		{Type: models.RecommendEstimateAdjustment, TaskID: "a", Value: 1.5},
		{Type: models.RecommendConsecutiveLimit, Value: 2},
	}

	f := &fakeApplier{fail: models.RecommendEstimateAdjustment}
	if got := applyAll(f, recs); got != 1 {
		t.Errorf("expected 1 applied, got %d", got)
	}
	if len(f.calls) != 2 {
		t.Errorf("expected both recommendations to be tried, got %d", len(f.calls))
	}
}
