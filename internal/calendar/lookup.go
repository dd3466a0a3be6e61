package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

// ErrInvalidYear indicates a year bound that is not an integer.
var ErrInvalidYear = errors.New("invalid year")

var (
	weekDays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	months   = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// WeekDays returns the English weekday names starting on Sunday. Short
// names are the first three letters.
func WeekDays(short bool) []string {
	return names(weekDays, short)
}

// Months returns the English month names. Short names are the first three
// letters.
func Months(short bool) []string {
	return names(months, short)
}

func names(full []string, short bool) []string {
	out := make([]string, len(full))
	for i, n := range full {
		if short {
			n = n[:3]
		}
		out[i] = n
	}
	return out
}

// YearValue is a year given either as a number or as a numeric string.
type YearValue interface {
	int | string
}

// Years returns the four digit years from start to end inclusive, or their
// last two digits when short is set. An end before start yields an empty
// list.
func Years[S, E YearValue](start S, end E, short bool) ([]string, error) {
	from, errFrom := parseYear(start)
	to, errTo := parseYear(end)
	if err := errors.NewM(errFrom, errTo); err != nil {
		return nil, err
	}
	if to < from {
		return []string{}, nil
	}
	years := make([]string, 0, to-from+1)
	for y := from; y <= to; y++ {
		s := fmt.Sprintf("%04d", y)
		if short {
			s = s[len(s)-2:]
		}
		years = append(years, s)
	}
	return years, nil
}

func parseYear[T YearValue](v T) (int, error) {
	switch v := any(v).(type) {
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidYear, v)
		}
		return n, nil
	}
	return 0, ErrInvalidYear
}
