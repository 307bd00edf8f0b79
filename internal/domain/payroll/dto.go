package payroll

type SalaryResponse struct {
	EmployeeID  int64  `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	DaysInMonth int    `json:"days_in_month"`
	// PayableSalary is rendered with exactly two decimal places.
	PayableSalary string `json:"payable_salary"`
}

// SummaryResponse surfaces both recorded and unrecorded day counts; whether
// unrecorded days should count as Absent is the caller's policy, not ours.
type SummaryResponse struct {
	EmployeeID     int64          `json:"employee_id"`
	Month          int            `json:"month"`
	Year           int            `json:"year"`
	DaysInMonth    int            `json:"days_in_month"`
	Counts         map[string]int `json:"counts"`
	RecordedDays   int            `json:"recorded_days"`
	UnrecordedDays int            `json:"unrecorded_days"`
}
