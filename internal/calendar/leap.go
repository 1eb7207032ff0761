package calendar

// daysPerMonth is the non-leap month table, January first.
var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year under the proleptic Gregorian
// rule. The rule is applied to the absolute value so that negative years
// follow the same 4/100/400 periodicity as positive ones; year 0 is a leap
// year.
func IsLeap(year int) bool {
	if year < 0 {
		year = -year
	}
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in month (1-12) of year, or 0 when
// month is out of range.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysPerMonth[month-1]
}
