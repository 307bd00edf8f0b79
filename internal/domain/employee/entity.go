package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            int64
	Name          string
	Gender        string
	PhoneNumber   string
	Role          string
	Address       *string
	NationalID    string
	DateOfJoining time.Time
	BaseSalary    decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Gender enum
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

var Genders = []string{GenderMale, GenderFemale, GenderOther}
