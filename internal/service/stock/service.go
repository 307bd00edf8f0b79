package stock

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/officedesk/backoffice-go/internal/domain/stock"
	"github.com/officedesk/backoffice-go/internal/pkg/database"
	"github.com/officedesk/backoffice-go/internal/repository/postgresql"
)

type stockServiceImpl struct {
	db        *database.DB
	stockRepo stock.Repository
}

func NewStockService(db *database.DB, stockRepo stock.Repository) stock.Service {
	return &stockServiceImpl{
		db:        db,
		stockRepo: stockRepo,
	}
}

// List implements stock.Service.
func (s *stockServiceImpl) List(ctx context.Context) ([]stock.ItemResponse, error) {
	items, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]stock.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, stock.ToResponse(item))
	}

	return responses, nil
}

// Create implements stock.Service.
func (s *stockServiceImpl) Create(ctx context.Context, req stock.CreateItemRequest) (stock.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.ItemResponse{}, err
	}

	unitPrice, _ := decimal.NewFromString(req.UnitPrice)

	created, err := s.stockRepo.Create(ctx, stock.Item{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
	})
	if err != nil {
		return stock.ItemResponse{}, err
	}

	return stock.ToResponse(created), nil
}

// UpdateQuantity implements stock.Service. The quantity check and the write
// run in one transaction; an adjustment that would take stock below zero
// writes nothing.
func (s *stockServiceImpl) UpdateQuantity(ctx context.Context, id int64, req stock.UpdateQuantityRequest) (stock.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return stock.ItemResponse{}, err
	}

	var updated stock.Item
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		item, err := s.stockRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		quantity := item.Quantity + req.Delta
		if quantity < 0 {
			return stock.ErrNegativeQuantity
		}

		updated, err = s.stockRepo.UpdateQuantity(txCtx, id, quantity)
		return err
	})
	if err != nil {
		return stock.ItemResponse{}, err
	}

	return stock.ToResponse(updated), nil
}

// Delete implements stock.Service.
func (s *stockServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.stockRepo.Delete(ctx, id)
}
