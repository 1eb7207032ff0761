package calendar

import (
	"strconv"
	"strings"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatForDisplay renders a date string as "<day> <MonthName> <year>", e.g.
// "1985-11-15" becomes "15 November 1985".
//
// It never fails:
//   - an empty string yields ""
//   - a string that is not date shaped is returned unchanged
//   - a month outside 1-12 yields an empty month name ("5  2024")
//
// The year is printed exactly as written, so "-0500-06-20" renders as
// "20 June -0500".
func FormatForDisplay(s string) string {
	if s == "" {
		return ""
	}
	m := dateShape.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return trimLeadingZeros(m[3]) + " " + monthName(m[2]) + " " + m[1]
}

func monthName(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 12 {
		return ""
	}
	return monthNames[n-1]
}

// trimLeadingZeros prints an unsigned digit string as its decimal value
// without overflowing on long inputs.
func trimLeadingZeros(digits string) string {
	if t := strings.TrimLeft(digits, "0"); t != "" {
		return t
	}
	return "0"
}
