package stock

import "context"

// Repository defines data access for stock items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (Item, error)
	Delete(ctx context.Context, id int64) error
}
