package render

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/fastcal/internal/calendar"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer    io.Writer
	Calendars []*calendar.FastCalendar
	Width     int
	Legend    bool
	Holidays  bool
}

// RunPlain renders the calendars exactly once.
func RunPlain(opts PlainOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if len(opts.Calendars) == 0 {
		opts.Calendars = []*calendar.FastCalendar{calendar.New()}
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	output := Layout(BuildBlocks(opts.Calendars), width)
	if _, err := fmt.Fprintln(opts.Writer, output); err != nil {
		return err
	}
	if opts.Legend {
		if _, err := fmt.Fprintln(opts.Writer, "\n"+ColorLegend(opts.Holidays)); err != nil {
			return err
		}
	}
	return nil
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
