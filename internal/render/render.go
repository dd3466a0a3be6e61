package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lululau/fastcal/internal/calendar"
	"github.com/lululau/fastcal/internal/textwidth"
)

const (
	cellPadding = 1
	blockGap    = 2
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	cellStyle     = lipgloss.NewStyle().Padding(0, cellPadding).Align(lipgloss.Center)
	dimCellStyle  = cellStyle.Foreground(lipgloss.Color("#6B7280"))
	todayStyle    = cellStyle.Foreground(lipgloss.Color("#34D399"))
	holidayStyle  = cellStyle.Foreground(lipgloss.Color("#3B82F6"))
	workdayStyle  = cellStyle.Foreground(lipgloss.Color("#F97316"))
	selectedStyle = cellStyle.Bold(true).
			Foreground(lipgloss.Color("#0F172A")).
			Background(lipgloss.Color("#FEC260"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
)

// MonthBlock packages rendered lines with their visual width/height.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// BuildBlocks renders one block per calendar.
func BuildBlocks(cals []*calendar.FastCalendar) []MonthBlock {
	blocks := make([]MonthBlock, len(cals))
	for i, c := range cals {
		blocks[i] = BuildMonthBlock(c)
	}
	return blocks
}

// Layout places blocks side by side, as many per row as fit in width.
func Layout(blocks []MonthBlock, width int) string {
	if len(blocks) == 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(blocks); {
		end := start + 1
		used := blocks[start].Width
		for end < len(blocks) && used+blockGap+blocks[end].Width <= width {
			used += blockGap + blocks[end].Width
			end++
		}
		rows = append(rows, joinBlocks(blocks[start:end]))
		start = end
	}
	return strings.Join(rows, "\n\n")
}

func joinBlocks(blocks []MonthBlock) string {
	height := 0
	for _, b := range blocks {
		height = max(height, b.Height)
	}
	lines := make([]string, height)
	for i := range lines {
		parts := make([]string, len(blocks))
		for j, b := range blocks {
			line := ""
			if i < len(b.Lines) {
				line = b.Lines[i]
			}
			if j < len(blocks)-1 {
				line = textwidth.PadRight(line, b.Width+blockGap)
			}
			parts[j] = line
		}
		lines[i] = strings.TrimRight(strings.Join(parts, ""), " ")
	}
	return strings.Join(lines, "\n")
}

// BuildMonthBlock renders the title, weekday header and grid of c.
func BuildMonthBlock(c *calendar.FastCalendar) MonthBlock {
	grid := c.Days()
	colWidth := determineColumnWidth(grid)

	headers := calendar.WeekDays(true)
	for i, h := range headers {
		headers[i] = textwidth.Center(h, colWidth)
	}
	weeks := grid.Weeks()
	rows := make([][]string, len(weeks))
	for i, week := range weeks {
		row := make([]string, len(week))
		for j, day := range week {
			row[j] = renderCell(day, colWidth)
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader()
			}
			if row < 0 || row >= len(weeks) || col >= len(weeks[row]) {
				return cellStyle
			}
			return styleDay(weeks[row][col])
		})
	if !noColorMode {
		t = t.BorderStyle(borderStyle)
	}

	title := Title(c)
	if !noColorMode {
		title = titleStyle.Render(title)
	}
	lines := append([]string{title, ""}, strings.Split(strings.TrimRight(t.String(), "\n"), "\n")...)

	width := 0
	for _, line := range lines {
		width = max(width, textwidth.StringWidth(line))
	}
	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}
}

// Title is the heading of a month block, e.g. "February 2023".
func Title(c *calendar.FastCalendar) string {
	return c.Month() + " " + c.Year()
}

func determineColumnWidth(grid calendar.Grid) int {
	width := 4
	for _, day := range grid {
		width = max(width, textwidth.StringWidth(day.SecondaryLabel()))
	}
	return width
}

func renderCell(day calendar.Day, width int) string {
	label := fmt.Sprintf("%2d", day.Day)
	if noColorMode && day.IsSelected {
		label = fmt.Sprintf("[%d]", day.Day)
	}
	cell := textwidth.Center(label, width)
	if !day.HasLunarData() && day.HolidayInfo == nil {
		return cell
	}
	return cell + "\n" + textwidth.Center(day.SecondaryLabel(), width)
}

func styleHeader() lipgloss.Style {
	if noColorMode {
		return cellStyle
	}
	return headerStyle.Padding(0, cellPadding).Align(lipgloss.Center)
}

// styleDay picks the cell style. Selection wins over holidays, holidays
// over today, and days outside the month are dimmed.
func styleDay(day calendar.Day) lipgloss.Style {
	if noColorMode {
		return cellStyle
	}
	switch {
	case day.IsSelected:
		return selectedStyle
	case !day.IsSameMonth:
		return dimCellStyle
	case day.HolidayInfo != nil && day.HolidayInfo.IsHoliday:
		return holidayStyle
	case day.HolidayInfo != nil:
		return workdayStyle
	case day.IsToday:
		return todayStyle
	}
	return cellStyle
}

// ColorLegend explains the color coding.
func ColorLegend(holidays bool) string {
	legend := "green=today  highlighted=selected  gray=adjacent month"
	if holidays {
		legend += "  blue=holiday  orange=adjusted workday"
	}
	if noColorMode {
		return legend
	}
	return helpStyle.Render(legend)
}
