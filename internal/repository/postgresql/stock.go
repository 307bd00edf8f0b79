package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/officedesk/backoffice-go/internal/domain/stock"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
)

type stockRepository struct {
	db *database.DB
}

func NewStockRepository(db *database.DB) stock.Repository {
	return &stockRepository{db: db}
}

// List implements stock.Repository.
func (s *stockRepository) List(ctx context.Context) ([]stock.Item, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT item_id, name, quantity, unit_price, created_at, updated_at
		FROM stock_items
		ORDER BY item_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	defer rows.Close()

	var items []stock.Item
	for rows.Next() {
		var item stock.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByID implements stock.Repository.
func (s *stockRepository) GetByID(ctx context.Context, id int64) (stock.Item, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT item_id, name, quantity, unit_price, created_at, updated_at
		FROM stock_items
		WHERE item_id = $1
	`

	var item stock.Item
	err := q.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return stock.Item{}, stock.ErrItemNotFound
		}
		return stock.Item{}, fmt.Errorf("failed to get stock item: %w", err)
	}

	return item, nil
}

// Create implements stock.Repository.
func (s *stockRepository) Create(ctx context.Context, newItem stock.Item) (stock.Item, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_items (name, quantity, unit_price)
		VALUES ($1, $2, $3)
		RETURNING item_id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newItem.Name, newItem.Quantity, newItem.UnitPrice).
		Scan(&newItem.ID, &newItem.CreatedAt, &newItem.UpdatedAt)
	if err != nil {
		return stock.Item{}, fmt.Errorf("failed to create stock item: %w", err)
	}

	return newItem, nil
}

// UpdateQuantity implements stock.Repository.
func (s *stockRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (stock.Item, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE stock_items
		SET quantity = $1, updated_at = NOW()
		WHERE item_id = $2
		RETURNING item_id, name, quantity, unit_price, created_at, updated_at
	`

	var item stock.Item
	err := q.QueryRow(ctx, query, quantity, id).
		Scan(&item.ID, &item.Name, &item.Quantity, &item.UnitPrice, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return stock.Item{}, stock.ErrItemNotFound
		}
		return stock.Item{}, fmt.Errorf("failed to update stock quantity: %w", err)
	}

	return item, nil
}

// Delete implements stock.Repository.
func (s *stockRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stock_items WHERE item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return stock.ErrItemNotFound
	}

	return nil
}
