package calendar_test

import (
	"errors"
	"testing"

	"histcal/internal/calendar"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want calendar.Date
	}{
		{"1985-11-15", calendar.Date{YearRaw: "1985", Year: 1985, Month: 11, Day: 15}},
		{"-0500-06-20", calendar.Date{YearRaw: "-0500", Year: -500, Month: 6, Day: 20}},
		{"-100-01-15", calendar.Date{YearRaw: "-100", Year: -100, Month: 1, Day: 15}},
		{"0000-1-2", calendar.Date{YearRaw: "0000", Year: 0, Month: 1, Day: 2}},
		{"2024-02-31", calendar.Date{YearRaw: "2024", Year: 2024, Month: 2, Day: 31}},
		{"2024-13-01", calendar.Date{YearRaw: "2024", Year: 2024, Month: 13, Day: 1}},
	} {
		got, err := calendar.Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q): got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"invalid",
		"2024",
		"2024-01",
		"2024-01-01-01",
		"+2024-01-01",
		"2024--01-01",
		"2024-01-01 ",
		" 2024-01-01",
		"2024/01/01",
		"2024-1a-01",
		"99999999999999999999-01-01",
	} {
		_, err := calendar.Parse(in)
		if err == nil {
			t.Errorf("Parse(%q): expected error", in)
			continue
		}
		if !errors.Is(err, calendar.ErrInvalidDateFormat) {
			t.Errorf("Parse(%q): error %v does not match ErrInvalidDateFormat", in, err)
		}
		var ide *calendar.InvalidDateFormatError
		if !errors.As(err, &ide) {
			t.Errorf("Parse(%q): error %T is not *InvalidDateFormatError", in, err)
			continue
		}
		if got, want := ide.Input, in; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestDateString(t *testing.T) {
	for _, tc := range []struct {
		d    calendar.Date
		want string
	}{
		{calendar.Date{YearRaw: "2024", Year: 2024, Month: 1, Day: 5}, "2024-01-05"},
		{calendar.Date{YearRaw: "-0500", Year: -500, Month: 6, Day: 20}, "-0500-06-20"},
		{calendar.Date{Year: 33, Month: 12, Day: 31}, "0033-12-31"},
	} {
		if got, want := tc.d.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestPrevDay(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"2024-01-15", "2024-01-14"},
		{"2024-03-01", "2024-02-29"},
		{"2023-03-01", "2023-02-28"},
		{"2024-05-01", "2024-04-30"},
		{"2024-01-01", "2023-12-31"},
		{"-0500-01-01", "-0501-12-31"},
		{"0000-01-01", "-0001-12-31"},
		{"1-01-01", "0-12-31"},
	} {
		d, err := calendar.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got, want := d.PrevDay().String(), tc.want; got != want {
			t.Errorf("PrevDay(%q): got %v, want %v", tc.in, got, want)
		}
	}
}
