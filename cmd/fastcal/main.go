package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lululau/fastcal/internal/calendar"
	"github.com/lululau/fastcal/internal/config"
	"github.com/lululau/fastcal/internal/holidays"
	"github.com/lululau/fastcal/internal/render"
	"github.com/lululau/fastcal/internal/tui"
)

var (
	yearFlag         = flag.Bool("y", false, "show the whole year")
	plain            = flag.Bool("n", false, "render once and exit (non-interactive)")
	holidaysFile     = flag.String("h", "", "holiday data file")
	holidaysFileLong = flag.String("holidays-file", "", "holiday data file")
	noColor          = flag.Bool("N", false, "disable all color output")
	noColorLong      = flag.Bool("no-color", false, "disable all color output")
	lunar            = flag.Bool("l", false, "show lunar dates and solar terms")
	lunarLong        = flag.Bool("lunar", false, "show lunar dates and solar terms")
	selectFlag       = flag.String("s", "", "preselect a date (YYYY-MM-DD)")
	configFile       = flag.String("c", "", "config file (default $XDG_CONFIG_HOME/fastcal/config.yaml)")
	yearsFlag        = flag.String("years", "", "print the years START:END and exit")
	shortYears       = flag.Bool("short", false, "with -years, print two digit years")
	verbose          = flag.Bool("v", false, "verbose logging")
)

// Mode indicates whether we display a single month or an entire year.
type Mode int

const (
	ModeMonth Mode = iota
	ModeYear
)

// Request captures the initial year/month/mode that should be rendered.
type Request struct {
	Year  int
	Month time.Month
	Mode  Mode
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] [year] [month]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), `
  no arguments  current month
  -y            current year
  9             September of this year
  1983          the whole of 1983
  2012 12       December 2012
  -y 9          the whole of year 9

options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if *yearsFlag != "" {
		return printYears(*yearsFlag, *shortYears)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if *noColor || *noColorLong || cfg.NoColor {
		render.SetNoColor(true)
		tui.SetNoColor(true)
	}

	holidayData, err := loadHolidays(logger, cfg)
	if err != nil {
		logger.Warn("holiday data not loaded", "error", err)
	}

	req, err := parseRequest(*yearFlag, flag.Args(), time.Now())
	if err != nil {
		return err
	}
	logger.Debug("request", "year", req.Year, "month", req.Month, "mode", req.Mode)

	opts := []calendar.Option{calendar.WithLunar(*lunar || *lunarLong || cfg.Lunar)}
	if holidayData != nil {
		opts = append(opts, calendar.WithHolidays(holidayData))
	}

	var sel *time.Time
	if *selectFlag != "" {
		t, err := time.ParseInLocation("2006-01-02", *selectFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -s date %q: %w", *selectFlag, err)
		}
		sel = &t
	}

	if req.Mode == ModeYear {
		cals := calendar.MonthsOf(req.Year, opts...)
		if sel != nil {
			for _, c := range cals {
				c.SetSelectedDate(*sel)
			}
		}
		return render.RunPlain(render.PlainOptions{
			Calendars: cals,
			Legend:    true,
			Holidays:  holidayData != nil,
		})
	}

	cal := calendar.New(opts...)
	cal.SetMonth(req.Year, req.Month)
	if sel != nil {
		cal.SetSelectedDate(*sel)
	}

	if *plain {
		return render.RunPlain(render.PlainOptions{
			Calendars: []*calendar.FastCalendar{cal},
			Legend:    true,
			Holidays:  holidayData != nil,
		})
	}

	years, err := cfg.YearRange(time.Now())
	if err != nil {
		return err
	}
	chosen, ok, err := tui.Run(cal, tui.Options{Years: years})
	if err != nil {
		return err
	}
	if ok {
		fmt.Println(chosen.Format("2006-01-02"))
	}
	return nil
}

func loadConfig(logger *slog.Logger) (*config.Config, error) {
	path := *configFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no config directory", "error", err)
			return &config.Config{}, nil
		}
		path = p
	}
	logger.Debug("loading config", "path", path)
	return config.LoadFromFile(path)
}

func loadHolidays(logger *slog.Logger, cfg *config.Config) (holidays.Table, error) {
	path := *holidaysFile
	if path == "" {
		path = *holidaysFileLong
	}
	if path == "" {
		path = cfg.HolidaysFile
	}
	if path == "" {
		logger.Debug("loading cached holiday data")
		return holidays.LoadDefault()
	}
	logger.Debug("loading holiday data", "path", path)
	return holidays.LoadFromFile(path)
}

func printYears(bounds string, short bool) error {
	start, end, found := strings.Cut(bounds, ":")
	if !found {
		return fmt.Errorf("-years expects START:END, got %q", bounds)
	}
	years, err := calendar.Years(start, end, short)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(years, "\n"))
	return nil
}

func parseRequest(showYear bool, args []string, now time.Time) (Request, error) {
	year := now.Year()
	month := int(now.Month())

	switch len(args) {
	case 0:
		// defaults
	case 1:
		if showYear {
			val, err := parseNumber(args[0], "year")
			if err != nil {
				return Request{}, err
			}
			year = val
		} else {
			val, err := parseNumber(args[0], "month/year")
			if err != nil {
				return Request{}, err
			}
			if val >= 1 && val <= 12 {
				month = val
			} else {
				year = val
				showYear = true
			}
		}
	case 2:
		if showYear {
			return Request{}, errors.New("-y takes at most one year argument")
		}
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return Request{}, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return Request{}, err
		}
		if m < 1 || m > 12 {
			return Request{}, fmt.Errorf("month must be between 1 and 12 (got %d)", m)
		}
		year = y
		month = m
	default:
		return Request{}, errors.New("too many arguments, see --help")
	}

	req := Request{
		Year:  year,
		Month: time.Month(month),
		Mode:  ModeMonth,
	}
	if showYear {
		req.Mode = ModeYear
	}
	return req, nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}
