package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"jan31-to-feb", day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{"jan31-to-leap-feb", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"mar31-back-to-feb", day(2023, time.March, 31), -1, day(2023, time.February, 28)},
		{"dec-to-jan", day(2023, time.December, 15), 1, day(2024, time.January, 15)},
		{"jan-to-dec", day(2023, time.January, 15), -1, day(2022, time.December, 15)},
		{"plain", day(2023, time.February, 11), 1, day(2023, time.March, 11)},
		{"many", day(2023, time.May, 31), -15, day(2022, time.February, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.in, tt.n); !got.Equal(tt.want) {
				t.Fatalf("AddMonths(%v, %d)=%v want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	got := AddYears(day(2024, time.February, 29), 1)
	if want := day(2025, time.February, 28); !got.Equal(want) {
		t.Fatalf("AddYears=%v want %v", got, want)
	}
}

func TestWeekBoundaries(t *testing.T) {
	first := day(2023, time.February, 1)
	if got, want := StartOfWeek(first), day(2023, time.January, 29); !got.Equal(want) {
		t.Fatalf("StartOfWeek=%v want %v", got, want)
	}
	if got, want := EndOfWeek(EndOfMonth(first)), day(2023, time.March, 4); !got.Equal(want) {
		t.Fatalf("EndOfWeek=%v want %v", got, want)
	}
	sunday := day(2023, time.January, 1)
	if got := StartOfWeek(sunday); !got.Equal(sunday) {
		t.Fatalf("StartOfWeek on a Sunday should be identity, got %v", got)
	}
	if got := EndOfWeek(day(2023, time.January, 7)); !got.Equal(day(2023, time.January, 7)) {
		t.Fatalf("EndOfWeek on a Saturday should be identity, got %v", got)
	}
}

func TestMonthBoundaries(t *testing.T) {
	tests := []struct {
		in    time.Time
		first time.Time
		last  time.Time
	}{
		{day(2023, time.February, 11), day(2023, time.February, 1), day(2023, time.February, 28)},
		{day(2024, time.February, 11), day(2024, time.February, 1), day(2024, time.February, 29)},
		{day(1900, time.February, 3), day(1900, time.February, 1), day(1900, time.February, 28)},
		{day(2023, time.December, 31), day(2023, time.December, 1), day(2023, time.December, 31)},
	}
	for _, tt := range tests {
		if got := StartOfMonth(tt.in); !got.Equal(tt.first) {
			t.Errorf("StartOfMonth(%v)=%v want %v", tt.in, got, tt.first)
		}
		if got := EndOfMonth(tt.in); !got.Equal(tt.last) {
			t.Errorf("EndOfMonth(%v)=%v want %v", tt.in, got, tt.last)
		}
	}
}

func TestFromComponentsRollsOver(t *testing.T) {
	if got, want := FromComponents(2023, 13, 1), day(2024, time.January, 1); !got.Equal(want) {
		t.Fatalf("month 13: got %v want %v", got, want)
	}
	if got, want := FromComponents(2023, time.March, 0), day(2023, time.February, 28); !got.Equal(want) {
		t.Fatalf("day 0: got %v want %v", got, want)
	}
	if got, want := FromComponents(2023, time.February, 30), day(2023, time.March, 2); !got.Equal(want) {
		t.Fatalf("day 30: got %v want %v", got, want)
	}
}

func TestComparisons(t *testing.T) {
	a := time.Date(2023, time.February, 11, 23, 59, 0, 0, time.Local)
	b := day(2023, time.February, 11)
	if !SameDay(a, b) {
		t.Fatalf("expected same day")
	}
	if SameDay(b, day(2022, time.February, 11)) {
		t.Fatalf("different years must not be the same day")
	}
	if !SameMonth(a, day(2023, time.February, 1)) {
		t.Fatalf("expected same month")
	}
	if SameMonth(a, day(2024, time.February, 1)) {
		t.Fatalf("same month in a different year must not match")
	}
}

func TestDisplayStrings(t *testing.T) {
	d := day(2023, time.February, 11)
	if got := YearString(d); got != "2023" {
		t.Errorf("YearString=%q", got)
	}
	if got := ShortYearString(d); got != "23" {
		t.Errorf("ShortYearString=%q", got)
	}
	if got := ShortYearString(day(2005, time.May, 1)); got != "05" {
		t.Errorf("ShortYearString(2005)=%q", got)
	}
	if got := MonthName(d); got != "February" {
		t.Errorf("MonthName=%q", got)
	}
	if got := ShortMonthName(d); got != "Feb" {
		t.Errorf("ShortMonthName=%q", got)
	}
}

func TestClockToday(t *testing.T) {
	now := time.Date(2025, time.November, 18, 10, 30, 0, 0, time.Local)
	c := Clock(func() time.Time { return now })
	if got, want := c.Today(), day(2025, time.November, 18); !got.Equal(want) {
		t.Fatalf("Today=%v want %v", got, want)
	}
}
