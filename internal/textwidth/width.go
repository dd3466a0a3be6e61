// Package textwidth measures the terminal display width of labels that mix
// ASCII digits with CJK lunar and holiday names.
package textwidth

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the widest line of s in monospace columns. Wide and
// fullwidth runes take two columns; ANSI color sequences take none.
func StringWidth(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// RuneWidth returns the columns occupied by r.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	if r < 0x20 || r == 0x7f {
		return 0
	}
	return 1
}

// PadRight appends spaces until s is target columns wide.
func PadRight(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// Center pads s on both sides to target columns, favoring the right.
func Center(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	left := diff / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", diff-left)
}

func lineWidth(s string) int {
	n := 0
	for _, r := range ansiRegexp.ReplaceAllString(s, "") {
		n += RuneWidth(r)
	}
	return n
}
