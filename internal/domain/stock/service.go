package stock

import "context"

// Service defines business logic for the stock inventory.
type Service interface {
	List(ctx context.Context) ([]ItemResponse, error)
	Create(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	UpdateQuantity(ctx context.Context, id int64, req UpdateQuantityRequest) (ItemResponse, error)
	Delete(ctx context.Context, id int64) error
}
