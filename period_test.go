package tracker

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods() {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePeriod(%q) = %v, want %v", p, got, p)
		}
	}
	if got, err := ParsePeriod(" YTD "); err != nil || got != YearToDate {
		t.Errorf("ParsePeriod(\" YTD \") = %v, %v, want %v", got, err, YearToDate)
	}
	if _, err := ParsePeriod("2w"); err == nil {
		t.Errorf("ParsePeriod(\"2w\") expected an error")
	}
}

func TestPeriod_Start(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		p    Period
		want time.Time
	}{
		{OneDay, time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)},
		{FiveDays, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)},
		{ThreeMonths, time.Date(2024, time.December, 15, 10, 0, 0, 0, time.UTC)},
		{OneYear, time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{TenYears, time.Date(2015, time.March, 15, 10, 0, 0, 0, time.UTC)},
		{YearToDate, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Max, time.Time{}},
	}
	for _, tt := range tests {
		if got := tt.p.Start(now); !got.Equal(tt.want) {
			t.Errorf("%v.Start() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
