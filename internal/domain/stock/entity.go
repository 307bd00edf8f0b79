package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID        int64
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
