package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

// LoadFromFile reads and validates a holiday file.
func LoadFromFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}
	return Parse(data)
}

// Parse decodes holiday JSON. Every malformed year or date key is reported.
func Parse(data []byte) (Table, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse holidays JSON: %w", err)
	}
	table := make(Table, len(file))
	errs := &errors.M{}
	for _, year := range file {
		y, err := strconv.Atoi(year.Year)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year %q", year.Year))
			continue
		}
		for key := range year.Holiday {
			errs.Append(validateKey(y, key))
		}
		table[year.Year] = year.Holiday
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func validateKey(year int, key string) error {
	t, err := time.Parse("01-02", key)
	if err != nil {
		return fmt.Errorf("%d: invalid date %q", year, key)
	}
	if t.Day() > datetime.DaysInMonth(year, datetime.Month(t.Month())) {
		return fmt.Errorf("%d: invalid date %q", year, key)
	}
	return nil
}

// CachePath returns the default holiday file location in the user cache
// directory.
func CachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "fastcal", "holidays.json"), nil
}

// LoadDefault loads the cached holiday file. A missing file yields a nil
// table and no error.
func LoadDefault() (Table, error) {
	path, err := CachePath()
	if err != nil {
		return nil, err
	}
	table, err := LoadFromFile(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return table, err
}
