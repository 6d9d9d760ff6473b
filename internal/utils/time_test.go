package utils

import (
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/London", timezone: "Europe/London", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestToday(t *testing.T) {
	got := Today("UTC")
	if !ValidateDateFormat(got) {
		t.Errorf("Today() = %q, not a YYYY-MM-DD date", got)
	}

	// unknown zones fall back to local time instead of failing
	if fallback := Today("Not/AZone"); !ValidateDateFormat(fallback) {
		t.Errorf("Today() fallback = %q", fallback)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "06:00", want: 360},
		{in: "22:30", want: 1350},
		{in: " 23:59 ", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "7pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeToMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		1350: "22:30",
		1440: "00:00",
		1500: "01:00",
		-30:  "23:30",
	}
	for in, want := range tests {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(300); got != "5:00" {
		t.Errorf("FormatClock(300) = %q", got)
	}
	if got := FormatClock(65); got != "1:05" {
		t.Errorf("FormatClock(65) = %q", got)
	}
	if got := FormatClock(-3); got != "0:00" {
		t.Errorf("FormatClock(-3) = %q", got)
	}
}

func TestWeekdayKey(t *testing.T) {
	if got := WeekdayKey(time.Sunday); got != "sun" {
		t.Errorf("WeekdayKey(Sunday) = %q", got)
	}
	if got := WeekdayKey(time.Saturday); got != "sat" {
		t.Errorf("WeekdayKey(Saturday) = %q", got)
	}

	keys := WeekdayKeys()
	keys[0] = "mutated"
	if WeekdayKeys()[0] != "sun" {
		t.Error("WeekdayKeys() must return a copy")
	}
}

func TestValidateDateFormat(t *testing.T) {
	if !ValidateDateFormat("2024-02-29") {
		t.Error("leap day should be valid")
	}
	if ValidateDateFormat("2023-02-29") {
		t.Error("2023-02-29 should be invalid")
	}
	if ValidateDateFormat("03/01/2024") {
		t.Error("US-style dates should be invalid")
	}
}

func TestValidateTimezone(t *testing.T) {
	if !ValidateTimezone("") || !ValidateTimezone("Local") || !ValidateTimezone("UTC") {
		t.Error("expected empty, Local and UTC to be valid")
	}
	if ValidateTimezone("Mars/Olympus") {
		t.Error("expected Mars/Olympus to be invalid")
	}
}
