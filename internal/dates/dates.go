// Package dates supplies the day and month arithmetic the calendar is built
// on. All results are local-midnight time.Time values in the location of
// their input; weeks start on Sunday.
package dates

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// WeekStart is the first day of every week produced by this package.
const WeekStart = time.Sunday

// Clock reports the current wall-clock time.
type Clock func() time.Time

// Today returns the clock's current date normalized to midnight.
func (c Clock) Today() time.Time {
	if c == nil {
		return Midnight(time.Now())
	}
	return Midnight(c())
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FromComponents builds a local-midnight date. Out-of-range months and days
// roll over into the adjacent month or year exactly as time.Date does.
func FromComponents(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// AddDays shifts t by n calendar days, keeping it at midnight across
// daylight-saving transitions.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// AddMonths shifts t by n calendar months. The day of month is clamped to
// the length of the target month, so Jan 31 plus one month is the last day
// of February.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, t.Location())
}

// AddYears shifts t by n years with the same clamping as AddMonths.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// StartOfWeek returns the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(WeekStart) + 7) % 7
	return AddDays(t, -offset)
}

// EndOfWeek returns the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return AddDays(StartOfWeek(t), 6)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, daysIn(t), 0, 0, 0, 0, t.Location())
}

func daysIn(t time.Time) int {
	return datetime.DaysInMonth(t.Year(), datetime.Month(t.Month()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameMonth reports whether a and b fall in the same month of the same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// CalendarDate converts t into its year/month/day triple.
func CalendarDate(t time.Time) datetime.CalendarDate {
	y, m, d := t.Date()
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: d}
}

// YearString formats the year as four digits.
func YearString(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// ShortYearString formats the year as its last two digits.
func ShortYearString(t time.Time) string {
	return fmt.Sprintf("%02d", t.Year()%100)
}

// MonthName returns the full English month name.
func MonthName(t time.Time) string {
	return t.Month().String()
}

// ShortMonthName returns the three-letter English month abbreviation.
func ShortMonthName(t time.Time) string {
	return t.Month().String()[:3]
}
