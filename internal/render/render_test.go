package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lululau/fastcal/internal/calendar"
	"github.com/lululau/fastcal/internal/textwidth"
)

var now = calendar.WithNow(func() time.Time {
	return time.Date(2025, 11, 18, 10, 0, 0, 0, time.Local)
})

func february() *calendar.FastCalendar {
	return calendar.New(calendar.WithDate(time.Date(2023, time.February, 11, 0, 0, 0, 0, time.Local)), now)
}

func TestMonthBlockContainsGrid(t *testing.T) {
	block := BuildMonthBlock(february())
	output := strings.Join(block.Lines, "\n")
	for _, want := range []string{"February 2023", "Sun", "Sat", "29", "28", " 4"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in block:\n%s", want, output)
		}
	}
	if block.Height != len(block.Lines) {
		t.Fatalf("Height=%d, lines=%d", block.Height, len(block.Lines))
	}
	for _, line := range block.Lines {
		if w := textwidth.StringWidth(line); w > block.Width {
			t.Fatalf("line wider than block: %d > %d", w, block.Width)
		}
	}
}

func TestMonthBlockContainsLunarLabels(t *testing.T) {
	c := calendar.New(calendar.WithDate(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.Local)), calendar.WithLunar(true), now)
	output := strings.Join(BuildMonthBlock(c).Lines, "\n")
	if !strings.Contains(output, "初") && !strings.Contains(output, "廿") {
		t.Fatalf("expected lunar labels in layout, got:\n%s", output)
	}
}

func TestNoColorMarksSelection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)
	c := february()
	c.SetSelectedDate(time.Date(2023, time.February, 14, 0, 0, 0, 0, time.Local))
	output := strings.Join(BuildMonthBlock(c).Lines, "\n")
	if !strings.Contains(output, "[14]") {
		t.Fatalf("expected selection marker, got:\n%s", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Fatalf("no-color output must not contain escape sequences")
	}
}

func TestLayoutWrapsBlocks(t *testing.T) {
	blocks := BuildBlocks(calendar.MonthsOf(2024, now))
	if len(blocks) != 12 {
		t.Fatalf("expected 12 blocks, got %d", len(blocks))
	}
	narrow := Layout(blocks, blocks[0].Width)
	wide := Layout(blocks, 3*blocks[0].Width+2*blockGap+10)
	if got := strings.Count(narrow, "January 2024"); got != 1 {
		t.Fatalf("expected January once, got %d", got)
	}
	if strings.Count(narrow, "\n") <= strings.Count(wide, "\n") {
		t.Fatalf("narrow layout should be taller than wide layout")
	}
	firstLine := strings.SplitN(wide, "\n", 2)[0]
	if !strings.Contains(firstLine, "January") || !strings.Contains(firstLine, "February") || !strings.Contains(firstLine, "March") {
		t.Fatalf("expected three months side by side, got %q", firstLine)
	}
}

func TestRunPlain(t *testing.T) {
	var buf bytes.Buffer
	err := RunPlain(PlainOptions{
		Writer:    &buf,
		Calendars: []*calendar.FastCalendar{february()},
		Width:     80,
		Legend:    true,
		Holidays:  true,
	})
	if err != nil {
		t.Fatalf("RunPlain failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "February 2023") || !strings.Contains(out, "blue=holiday") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestLayoutEmpty(t *testing.T) {
	if got := Layout(nil, 80); got != "" {
		t.Fatalf("expected empty layout, got %q", got)
	}
}
