package calendar_test

import (
	"testing"

	"histcal/internal/calendar"
)

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"standard", "1985-11-15", "15 November 1985"},
		{"standard 2", "1986-03-12", "12 March 1986"},
		{"first of year", "2024-01-01", "1 January 2024"},
		{"last of year", "2024-12-31", "31 December 2024"},
		{"leap day", "2020-02-29", "29 February 2020"},
		{"century", "1900-01-01", "1 January 1900"},
		{"future century", "2100-12-31", "31 December 2100"},
		{"single digit day", "2024-01-09", "9 January 2024"},
		{"padded month and day", "2024-09-08", "8 September 2024"},
		{"unpadded month and day", "2024-9-8", "8 September 2024"},
		{"negative year", "-100-01-15", "15 January -100"},
		{"negative padded year", "-0500-06-20", "20 June -0500"},
		{"padded positive year", "0033-04-03", "3 April 0033"},
		{"zero day", "2024-01-00", "0 January 2024"},
		{"long day", "2024-01-007", "7 January 2024"},
		{"month too large", "2024-13-05", "5  2024"},
		{"month zero", "2024-00-10", "10  2024"},
		{"missing day", "2024-01", "2024-01"},
		{"year only", "2024", "2024"},
		{"not a date", "invalid", "invalid"},
		{"slashes", "2024/01/01", "2024/01/01"},
		{"trailing space", "2024-01-01 ", "2024-01-01 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.FormatForDisplay(tt.in); got != tt.want {
				t.Errorf("FormatForDisplay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatForDisplayAllMonths(t *testing.T) {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for i, name := range months {
		in := "2024-" + twoDigits(i+1) + "-15"
		if got, want := calendar.FormatForDisplay(in), "15 "+name+" 2024"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

// Display strings are lossy and are not accepted back by the parser.
func TestFormatForDisplayIsNotReversible(t *testing.T) {
	for _, in := range []string{"2024-01-15", "-0500-06-20", "1985-11-15"} {
		out := calendar.FormatForDisplay(in)
		if out == in {
			t.Errorf("FormatForDisplay(%q) returned its input", in)
		}
		if _, err := calendar.Parse(out); err == nil {
			t.Errorf("Parse(%q) unexpectedly succeeded", out)
		}
		if got, want := calendar.FormatForDisplay(out), out; got != want {
			t.Errorf("formatting a display string: got %q, want %q", got, want)
		}
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
