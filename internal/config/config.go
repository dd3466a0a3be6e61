// Package config loads the optional fastcal configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/lululau/fastcal/internal/calendar"
)

// DefaultYearSpan is how many years either side of the current year the
// year prompt offers when the config file does not say.
const DefaultYearSpan = 10

// ErrInvalidYearRange indicates a years.end before years.start.
var ErrInvalidYearRange = errors.New("years.end must not precede years.start")

// Config is the on-disk configuration.
type Config struct {
	Lunar        bool        `yaml:"lunar"`
	NoColor      bool        `yaml:"no_color"`
	HolidaysFile string      `yaml:"holidays_file,omitempty"`
	Years        YearsConfig `yaml:"years"`
}

// YearsConfig bounds the years offered by the interactive year prompt.
// Values may be written as numbers or strings.
type YearsConfig struct {
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/fastcal/config.yaml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "fastcal", "config.yaml"), nil
}

// LoadFromFile loads configuration from a YAML file. A missing file yields
// the zero Config.
func LoadFromFile(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the year bounds.
func (c *Config) Validate() error {
	errs := &errors.M{}
	var start, end int
	var err error
	if c.Years.Start != "" {
		start, err = strconv.Atoi(c.Years.Start)
		errs.Append(wrapYear("years.start", c.Years.Start, err))
	}
	if c.Years.End != "" {
		end, err = strconv.Atoi(c.Years.End)
		errs.Append(wrapYear("years.end", c.Years.End, err))
	}
	if err := errs.Err(); err != nil {
		return err
	}
	if c.Years.Start != "" && c.Years.End != "" && end < start {
		return ErrInvalidYearRange
	}
	return nil
}

func wrapYear(field, val string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %q", field, calendar.ErrInvalidYear, val)
}

// YearRange returns the years offered by the year prompt. Unset bounds
// default to DefaultYearSpan years either side of now.
func (c *Config) YearRange(now time.Time) ([]string, error) {
	start, end := c.Years.Start, c.Years.End
	if start == "" {
		start = strconv.Itoa(now.Year() - DefaultYearSpan)
	}
	if end == "" {
		end = strconv.Itoa(now.Year() + DefaultYearSpan)
	}
	return calendar.Years(start, end, false)
}
