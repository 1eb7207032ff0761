package calendar

import (
	"math"
	"strconv"
	"strings"
)

// Duration is a calendar-aware difference between two dates. After Between
// normalises it, Months is in 0-11 and Days is non-negative whenever end is
// not before start.
type Duration struct {
	Years  int
	Months int
	Days   int
}

// Between computes the difference from start to end.
//
// The day borrow runs first and may decrement Months; the month borrow then
// sees that decremented value. Reordering the two changes results for spans
// that cross both a month and a year boundary.
func Between(start, end Date) Duration {
	years := end.Year - start.Year
	months := end.Month - start.Month
	days := end.Day - start.Day

	if days < 0 {
		months--
		prevYear, prevMonth := end.Year, end.Month-1
		if end.Month == 1 {
			prevYear, prevMonth = end.Year-1, 12
		}
		days += DaysInMonth(prevYear, prevMonth)
	}
	if months < 0 {
		years--
		months += 12
	}
	return Duration{Years: years, Months: months, Days: days}
}

// String renders the duration as e.g. "1 year 5 months 14 days". Components
// that are not positive are omitted. When nothing is left (the same date on
// both ends) the result is "1 day": a same-day span counts as one day.
func (d Duration) String() string {
	parts := make([]string, 0, 3)
	if d.Years > 0 {
		parts = append(parts, plural(d.Years, "year"))
	}
	if d.Months > 0 {
		parts = append(parts, plural(d.Months, "month"))
	}
	if d.Days > 0 {
		parts = append(parts, plural(d.Days, "day"))
	}
	if len(parts) == 0 {
		return "1 day"
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}

// CalculateDuration parses both date strings and returns the elapsed time
// between them as a phrase.
//
// If either string is empty there is nothing to compute and "" is returned
// with a nil error. A non-empty string that is not date shaped fails with an
// *InvalidDateFormatError naming it; no partial phrase is produced. Years so
// far apart that their difference does not fit in an int are rejected the
// same way, naming end.
func CalculateDuration(start, end string) (string, error) {
	if start == "" || end == "" {
		return "", nil
	}
	s, err := Parse(start)
	if err != nil {
		return "", err
	}
	e, err := Parse(end)
	if err != nil {
		return "", err
	}
	if !yearSpanFits(s.Year, e.Year) {
		return "", &InvalidDateFormatError{Input: end}
	}
	return Between(s, e).String(), nil
}

// yearSpanFits reports whether end-start, and one less than it for the
// month borrow, can be computed without overflow.
func yearSpanFits(start, end int) bool {
	if start > 0 && end < math.MinInt+start+1 {
		return false
	}
	if start < 0 && end > math.MaxInt+start {
		return false
	}
	if start == 0 && end == math.MinInt {
		return false
	}
	return true
}
