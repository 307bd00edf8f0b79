package payroll

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month int
		want  int
	}{
		{2024, 1, 31},
		{2024, 2, 29}, // leap year
		{2023, 2, 28},
		{2000, 2, 29}, // divisible by 400
		{1900, 2, 28}, // divisible by 100 but not 400
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, c := range cases {
		got := DaysInMonth(c.year, c.month)
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
