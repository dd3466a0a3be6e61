package main

import (
	"testing"
	"time"
)

func TestParseRequest(t *testing.T) {
	now := time.Date(2025, time.November, 18, 0, 0, 0, 0, time.Local)
	tests := []struct {
		name     string
		showYear bool
		args     []string
		want     Request
		wantErr  bool
	}{
		{"defaults", false, nil, Request{2025, time.November, ModeMonth}, false},
		{"year-view", true, nil, Request{2025, time.November, ModeYear}, false},
		{"month", false, []string{"9"}, Request{2025, time.September, ModeMonth}, false},
		{"bare-year", false, []string{"1983"}, Request{1983, time.November, ModeYear}, false},
		{"year-month", false, []string{"2012", "12"}, Request{2012, time.December, ModeMonth}, false},
		{"y-with-small-year", true, []string{"9"}, Request{9, time.November, ModeYear}, false},
		{"bad-month", false, []string{"2012", "13"}, Request{}, true},
		{"not-a-number", false, []string{"soon"}, Request{}, true},
		{"y-with-two", true, []string{"2012", "1"}, Request{}, true},
		{"too-many", false, []string{"1", "2", "3"}, Request{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(tt.showYear, tt.args, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestPrintYearsRejectsBadSpec(t *testing.T) {
	if err := printYears("2018-2023", false); err == nil {
		t.Fatalf("expected an error without a colon")
	}
	if err := printYears("2018:later", false); err == nil {
		t.Fatalf("expected an error for a non-numeric bound")
	}
}
