package attendance

import "errors"

// Attendance domain errors
var (
	ErrUnknownEmployee = errors.New("employee does not exist")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrInvalidYear     = errors.New("invalid year")
)
