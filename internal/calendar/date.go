// Package calendar parses YYYY-MM-DD style calendar dates (including dates
// with a negative year), renders them for display and computes calendar-aware
// elapsed time between two of them.
//
// All functions are pure and safe for concurrent use.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// dateShape is the lexical shape check. Month and day are not required to be
// two digits and are not range checked here.
var dateShape = regexp.MustCompile(`^(-?\d+)-(\d+)-(\d+)$`)

// Date is a parsed calendar date.
//
// YearRaw is the year exactly as written in the input (sign and leading zeros
// included, e.g. "-0500") and is what gets displayed. Year is its numeric
// value and is only used for arithmetic.
type Date struct {
	YearRaw string
	Year    int
	Month   int
	Day     int
}

// Parse validates the shape of s and returns its components. Day is not
// checked against the length of the month.
func Parse(s string) (Date, error) {
	m := dateShape.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &InvalidDateFormatError{Input: s}
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Date{}, &InvalidDateFormatError{Input: s}
	}
	month, err := strconv.Atoi(m[2])
	if err != nil {
		return Date{}, &InvalidDateFormatError{Input: s}
	}
	day, err := strconv.Atoi(m[3])
	if err != nil {
		return Date{}, &InvalidDateFormatError{Input: s}
	}
	return Date{YearRaw: m[1], Year: year, Month: month, Day: day}, nil
}

// String renders d in the canonical input shape, keeping YearRaw verbatim.
func (d Date) String() string {
	yr := d.YearRaw
	if yr == "" {
		yr = fmt.Sprintf("%04d", d.Year)
	}
	return fmt.Sprintf("%s-%02d-%02d", yr, d.Month, d.Day)
}

// PrevDay returns the calendar day before d, borrowing from the previous
// month and year as needed. When the year changes, the new YearRaw keeps the
// digit width of the old one.
func (d Date) PrevDay() Date {
	if d.Day > 1 {
		d.Day--
		return d
	}
	d.Month--
	if d.Month < 1 {
		d.Month = 12
		d.Year--
		d.YearRaw = padYear(d.YearRaw, d.Year)
	}
	d.Day = DaysInMonth(d.Year, d.Month)
	return d
}

// padYear formats year with at least as many digits as raw had.
func padYear(raw string, year int) string {
	width := len(strings.TrimPrefix(raw, "-"))
	sign := ""
	if year < 0 {
		sign = "-"
		year = -year
	}
	return fmt.Sprintf("%s%0*d", sign, width, year)
}
