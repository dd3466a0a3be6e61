// Package calendar models a month view for a date picker: a fixed grid of
// day cells, the month in view and a single selected date.
package calendar

import (
	"time"

	"github.com/lululau/fastcal/internal/dates"
	"github.com/lululau/fastcal/internal/holidays"
)

type options struct {
	date     *time.Time
	now      dates.Clock
	lunar    bool
	holidays holidays.Table
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) generator() *Generator {
	return &Generator{now: o.now, lunar: o.lunar, holidays: o.holidays}
}

// Option configures a FastCalendar or Generator.
type Option func(*options)

// WithDate sets the initial date in view. It defaults to today.
func WithDate(t time.Time) Option {
	return func(o *options) {
		o.date = &t
	}
}

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLunar enables lunar day, lunar month and solar term labels.
func WithLunar(enabled bool) Option {
	return func(o *options) {
		o.lunar = enabled
	}
}

// WithHolidays sets the holiday data used to annotate cells.
func WithHolidays(data holidays.Table) Option {
	return func(o *options) {
		o.holidays = data
	}
}

// FastCalendar holds the month in view and the current selection. Every
// mutation rebuilds the display strings and the grid before returning.
// A FastCalendar is not safe for concurrent use.
type FastCalendar struct {
	gen      *Generator
	now      dates.Clock
	date     time.Time
	selected *time.Time

	year       string
	yearShort  string
	month      string
	monthShort string
	days       Grid
}

// New returns a calendar showing the month of WithDate, or of today.
// No date is selected.
func New(opts ...Option) *FastCalendar {
	o := newOptions(opts)
	c := &FastCalendar{gen: o.generator(), now: o.now}
	start := c.now.Today()
	if o.date != nil {
		start = *o.date
	}
	c.SetDate(start.Year(), start.Month(), start.Day())
	return c
}

// MonthsOf returns one calendar per month of year.
func MonthsOf(year int, opts ...Option) []*FastCalendar {
	months := make([]*FastCalendar, 0, 12)
	for m := time.January; m <= time.December; m++ {
		c := New(opts...)
		c.SetMonth(year, m)
		months = append(months, c)
	}
	return months
}

// SetDate replaces the date in view. Out-of-range months and days roll
// over as time.Date does. The selection is left alone.
func (c *FastCalendar) SetDate(year int, month time.Month, day int) {
	c.date = dates.FromComponents(year, month, day)
	c.generate()
}

// SetMonth shows the first day of the given month.
func (c *FastCalendar) SetMonth(year int, month time.Month) {
	c.SetDate(year, month, 1)
}

// PrevMonth moves back one calendar month.
func (c *FastCalendar) PrevMonth() {
	c.date = dates.AddMonths(c.date, -1)
	c.generate()
}

// NextMonth moves forward one calendar month.
func (c *FastCalendar) NextMonth() {
	c.date = dates.AddMonths(c.date, 1)
	c.generate()
}

// PrevYear moves back one calendar year.
func (c *FastCalendar) PrevYear() {
	c.date = dates.AddYears(c.date, -1)
	c.generate()
}

// NextYear moves forward one calendar year.
func (c *FastCalendar) NextYear() {
	c.date = dates.AddYears(c.date, 1)
	c.generate()
}

// Today moves the view to the current date.
func (c *FastCalendar) Today() {
	c.date = c.now.Today()
	c.generate()
}

// SetSelectedDate selects t. It need not lie in the month in view.
func (c *FastCalendar) SetSelectedDate(t time.Time) {
	c.selected = &t
	c.generate()
}

// SelectedDate returns the selection, if any.
func (c *FastCalendar) SelectedDate() (time.Time, bool) {
	if c.selected == nil {
		return time.Time{}, false
	}
	return *c.selected, true
}

// Date returns the date in view.
func (c *FastCalendar) Date() time.Time { return c.date }

// Year returns the four digit year in view.
func (c *FastCalendar) Year() string { return c.year }

// YearShort returns the two digit year in view.
func (c *FastCalendar) YearShort() string { return c.yearShort }

// Month returns the English name of the month in view.
func (c *FastCalendar) Month() string { return c.month }

// MonthShort returns the three letter month abbreviation.
func (c *FastCalendar) MonthShort() string { return c.monthShort }

// Days returns the grid. Callers must not modify it.
func (c *FastCalendar) Days() Grid { return c.days }

func (c *FastCalendar) generate() {
	c.year = dates.YearString(c.date)
	c.yearShort = dates.ShortYearString(c.date)
	c.month = dates.MonthName(c.date)
	c.monthShort = dates.ShortMonthName(c.date)
	c.days = c.gen.Generate(c.date, c.selected)
}
