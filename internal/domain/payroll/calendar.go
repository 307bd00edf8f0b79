package payroll

import "time"

// DaysInMonth returns the number of calendar days in a month, leap-year
// aware. Day 0 of the following month is the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
