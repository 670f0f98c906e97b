package tracker

import (
	"fmt"
	"strings"
	"time"
)

// Period is the time window of a price history request.
type Period int

const (
	OneDay Period = iota
	FiveDays
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	TwoYears
	FiveYears
	TenYears
	YearToDate
	Max
)

// DefaultPeriod is the period used when none is specified.
const DefaultPeriod = OneYear

var periodNames = [...]string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// Periods returns all the periods, from the shortest to the longest.
func Periods() []Period {
	return []Period{OneDay, FiveDays, OneMonth, ThreeMonths, SixMonths, OneYear, TwoYears, FiveYears, TenYears, YearToDate, Max}
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// ParsePeriod parses one of 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd or max.
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range periodNames {
		if s == name {
			return Period(i), nil
		}
	}
	return DefaultPeriod, fmt.Errorf("unknown period %q (valid: %s)", s, strings.Join(periodNames[:], ", "))
}

// Start returns the beginning of the window ending at 'now'.
// Max returns the zero time.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case OneDay:
		return now.AddDate(0, 0, -1)
	case FiveDays:
		return now.AddDate(0, 0, -5)
	case OneMonth:
		return now.AddDate(0, -1, 0)
	case ThreeMonths:
		return now.AddDate(0, -3, 0)
	case SixMonths:
		return now.AddDate(0, -6, 0)
	case OneYear:
		return now.AddDate(-1, 0, 0)
	case TwoYears:
		return now.AddDate(-2, 0, 0)
	case FiveYears:
		return now.AddDate(-5, 0, 0)
	case TenYears:
		return now.AddDate(-10, 0, 0)
	case YearToDate:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// Intraday returns true for periods short enough to be sampled within the day.
func (p Period) Intraday() bool { return p == OneDay || p == FiveDays }
