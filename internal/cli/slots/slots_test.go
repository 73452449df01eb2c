package slots

import (
	"testing"

	"github.com/julianstephens/pomoplan/internal/models"
)

func TestSlotAddParsesArguments(t *testing.T) {
	cmd := &SlotAddCmd{Day: "wed", Start: "09:00", End: "10:30", NotPreferred: true}
	slot, err := cmd.Slot()
	if err != nil {
		t.Fatalf("Slot failed: %v", err)
	}
	want := models.UnavailableSlot{DayOfWeek: 2, StartMinutes: 540, EndMinutes: 630, Type: models.SlotTypeNotPreferred}
	if slot != want {
		t.Errorf("expected %+v, got %+v", want, slot)
	}
}

func TestSlotAddValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     SlotAddCmd
		wantErr bool
	}{
		{"valid", SlotAddCmd{Day: "0", Start: "12:00", End: "13:00"}, false},
		{"bad day", SlotAddCmd{Day: "someday", Start: "12:00", End: "13:00"}, true},
		{"bad start", SlotAddCmd{Day: "mon", Start: "noon", End: "13:00"}, true},
		{"bad end", SlotAddCmd{Day: "mon", Start: "12:00", End: "25:00"}, true},
		{"end before start", SlotAddCmd{Day: "mon", Start: "13:00", End: "12:00"}, true},
		{"empty span", SlotAddCmd{Day: "mon", Start: "13:00", End: "13:00"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
