package stock

import (
	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/pkg/validator"
)

type CreateItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) || len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required and must not exceed 100 characters",
		})
	}

	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must not be negative",
		})
	}

	price, err := decimal.NewFromString(r.UnitPrice)
	if err != nil || price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_price",
			Message: "unit_price must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateQuantityRequest adjusts an item's quantity by a signed delta.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

func (r *UpdateQuantityRequest) Validate() error {
	if r.Delta == 0 {
		return validator.ValidationErrors{{
			Field:   "delta",
			Message: "delta must be a non-zero integer",
		}}
	}
	return nil
}

type ItemResponse struct {
	ID        int64  `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

func ToResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitPrice: i.UnitPrice.StringFixed(2),
	}
}
