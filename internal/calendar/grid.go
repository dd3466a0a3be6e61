package calendar

import (
	"fmt"
	"time"

	calendarlib "github.com/Lofanmi/chinese-calendar-golang/calendar"

	"github.com/lululau/fastcal/internal/dates"
	"github.com/lululau/fastcal/internal/holidays"
)

// Supported Gregorian year range for lunar metadata, enforced by the
// upstream library.
const (
	MinLunarYear = 1900
	MaxLunarYear = 3000
)

// Grid dimensions.
const (
	DaysPerWeek   = 7
	WeeksPerMonth = 5
	GridSize      = DaysPerWeek * WeeksPerMonth
)

// Day is a single cell of the month grid.
type Day struct {
	Date        time.Time // midnight, local time
	Day         int
	IsSameMonth bool
	IsToday     bool
	IsSelected  bool

	LunarDayAlias   string
	LunarMonthAlias string
	SolarTerm       string
	HolidayInfo     *holidays.Info
	hasLunarData    bool
}

// SecondaryLabel selects the string that should be rendered beneath the
// Gregorian date. Holiday names win, then solar terms, then the lunar month
// name on the first day of a lunar month.
func (d Day) SecondaryLabel() string {
	if d.HolidayInfo != nil && d.HolidayInfo.IsHoliday && d.HolidayInfo.Name != "" {
		return d.HolidayInfo.Name
	}
	if d.SolarTerm != "" {
		return d.SolarTerm
	}
	if d.LunarDayAlias == "初一" && d.LunarMonthAlias != "" {
		return d.LunarMonthAlias
	}
	return d.LunarDayAlias
}

// HasLunarData reports whether lunar metadata was calculated for the cell.
func (d Day) HasLunarData() bool {
	return d.hasLunarData
}

// Grid is the fixed 35 cell window for one month.
type Grid []Day

// Weeks splits the grid into rows of DaysPerWeek cells.
func (g Grid) Weeks() [][]Day {
	weeks := make([][]Day, 0, WeeksPerMonth)
	for i := 0; i+DaysPerWeek <= len(g); i += DaysPerWeek {
		weeks = append(weeks, g[i:i+DaysPerWeek])
	}
	return weeks
}

// Selected returns the index of the selected cell, or -1.
func (g Grid) Selected() int {
	for i, d := range g {
		if d.IsSelected {
			return i
		}
	}
	return -1
}

// Today returns the index of today's cell, or -1.
func (g Grid) Today() int {
	for i, d := range g {
		if d.IsToday {
			return i
		}
	}
	return -1
}

// Index returns the position of t in the grid, or -1.
func (g Grid) Index(t time.Time) int {
	for i, d := range g {
		if dates.SameDay(d.Date, t) {
			return i
		}
	}
	return -1
}

// Generator lays out month grids.
type Generator struct {
	now      dates.Clock
	lunar    bool
	holidays holidays.Table
}

// NewGenerator constructs a Generator. WithDate is ignored.
func NewGenerator(opts ...Option) *Generator {
	o := newOptions(opts)
	return o.generator()
}

// Generate produces the grid for anchor's month. The grid starts on the
// Sunday on or before the first of the month and always holds GridSize
// cells: a month that needs six weeks loses its last week, and a
// four-week February is followed by the first week of March.
// Cells matching selected, if non-nil, are marked as selected.
func (g *Generator) Generate(anchor time.Time, selected *time.Time) Grid {
	start := dates.StartOfWeek(dates.StartOfMonth(anchor))
	end := dates.EndOfWeek(dates.EndOfMonth(anchor))
	if last := dates.AddDays(start, GridSize-1); last.After(end) {
		end = last
	}
	today := g.now.Today()

	days := make(Grid, 0, GridSize+DaysPerWeek)
	for cursor := start; !cursor.After(end); cursor = dates.AddDays(cursor, 1) {
		days = append(days, g.buildDay(cursor, anchor, today, selected))
	}
	if len(days) < GridSize {
		panic(fmt.Sprintf("calendar: grid for %s has %d cells", anchor.Format("2006-01"), len(days)))
	}
	return days[:GridSize:GridSize]
}

func (g *Generator) buildDay(day, anchor, today time.Time, selected *time.Time) Day {
	d := Day{
		Date:        day,
		Day:         day.Day(),
		IsSameMonth: dates.SameMonth(day, anchor),
		IsToday:     dates.SameDay(day, today),
		IsSelected:  selected != nil && dates.SameDay(day, *selected),
	}
	if g.holidays != nil {
		d.HolidayInfo = g.holidays.Lookup(dates.CalendarDate(day))
	}
	if !g.lunar || day.Year() < MinLunarYear || day.Year() > MaxLunarYear {
		return d
	}

	cal := calendarlib.BySolar(
		int64(day.Year()),
		int64(day.Month()),
		int64(day.Day()),
		12, 0, 0,
	)
	d.LunarDayAlias = cal.Lunar.DayAlias()
	d.LunarMonthAlias = cal.Lunar.MonthAlias()
	d.hasLunarData = true
	if solarterm := cal.Solar.CurrentSolarterm; solarterm != nil {
		if solarterm.IsInDay(&day) {
			d.SolarTerm = solarterm.Alias()
		}
	}
	return d
}
