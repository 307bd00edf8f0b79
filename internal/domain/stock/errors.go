package stock

import "errors"

var (
	ErrItemNotFound     = errors.New("stock item not found")
	ErrNegativeQuantity = errors.New("stock quantity cannot go negative")
)
