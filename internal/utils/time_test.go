package utils

import (
	"testing"
	"time"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "08:00", want: 480},
		{name: "late evening", input: "22:00", want: 1320},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "invalid hour", input: "25:00", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeToMinutes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(505); got != "08:25" {
		t.Errorf("FormatMinutes(505) = %q, want 08:25", got)
	}
	if got := FormatMinutes(0); got != "00:00" {
		t.Errorf("FormatMinutes(0) = %q, want 00:00", got)
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "mon", want: 0},
		{input: "Sunday", want: 6},
		{input: " wed ", want: 2},
		{input: "4", want: 4},
		{input: "7", wantErr: true},
		{input: "someday", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDay(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDay(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestTodayIndex(t *testing.T) {
	// 2025-12-29 is a Monday
	monday := time.Date(2025, 12, 29, 9, 0, 0, 0, time.UTC)
	if got := TodayIndex(monday); got != 0 {
		t.Errorf("TodayIndex(Monday) = %d, want 0", got)
	}
	if got := TodayIndex(monday.AddDate(0, 0, 6)); got != 6 {
		t.Errorf("TodayIndex(Sunday) = %d, want 6", got)
	}
}
