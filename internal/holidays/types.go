// Package holidays loads public holiday and adjusted-workday data used to
// annotate calendar cells.
package holidays

import (
	"encoding/json"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Entry is a single date in the holiday file.
type Entry struct {
	Holiday bool   `json:"holiday"`
	Name    string `json:"name"`
	Wage    int    `json:"wage"`
	Date    string `json:"date"`
	After   *bool  `json:"after,omitempty"`
	Target  string `json:"target,omitempty"`
	Rest    *int   `json:"rest,omitempty"`
}

// UnmarshalJSON accepts holiday as either a boolean or a string; a
// non-empty string counts as a holiday.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	aux := &struct {
		Holiday interface{} `json:"holiday"`
		*alias
	}{
		alias: (*alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch v := aux.Holiday.(type) {
	case bool:
		e.Holiday = v
	case string:
		e.Holiday = v != ""
	default:
		e.Holiday = false
	}
	return nil
}

// File is the on-disk layout: one element per year, keyed by "MM-DD".
type File []struct {
	Year    string            `json:"year"`
	Holiday map[string]*Entry `json:"holiday"`
}

// Info describes the holiday status of one date.
type Info struct {
	IsHoliday bool // false means an adjusted workday
	Name      string
}

// Table maps a year ("2024") to its entries keyed by "MM-DD".
type Table map[string]map[string]*Entry

// Lookup returns the holiday status of d, or nil if d is an ordinary day.
func (t Table) Lookup(d datetime.CalendarDate) *Info {
	if t == nil {
		return nil
	}
	year, ok := t[fmt.Sprintf("%d", d.Year)]
	if !ok {
		return nil
	}
	entry, ok := year[fmt.Sprintf("%02d-%02d", time.Month(d.Month), d.Day)]
	if !ok || entry == nil {
		return nil
	}
	return &Info{
		IsHoliday: entry.Holiday,
		Name:      entry.Name,
	}
}
