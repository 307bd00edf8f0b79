package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/officedesk/backoffice-go/internal/domain/stock"
	"github.com/officedesk/backoffice-go/internal/handler/http/response"
)

type StockHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateQuantity(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type stockHandlerImpl struct {
	stockService stock.Service
}

func NewStockHandler(stockService stock.Service) StockHandler {
	return &stockHandlerImpl{stockService: stockService}
}

// List implements StockHandler.
func (h *stockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.stockService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Create implements StockHandler.
func (h *stockHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req stock.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode stock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.stockService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Successfully added stock item", created)
}

// UpdateQuantity implements StockHandler.
func (h *stockHandlerImpl) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := stockIDParam(w, r)
	if !ok {
		return
	}

	var req stock.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode stock request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.stockService.UpdateQuantity(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements StockHandler.
func (h *stockHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := stockIDParam(w, r)
	if !ok {
		return
	}

	if err := h.stockService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Successfully deleted stock item", map[string]int64{
		"item_id": id,
	})
}

func stockIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "item id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}
