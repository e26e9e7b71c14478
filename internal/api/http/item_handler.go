package http

import (
	"net/http"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// ItemHandler serves the catalogue and the derived stock views
type ItemHandler struct {
	inventory service.InventoryService
	stock     service.StockService
}

func NewItemHandler(inventory service.InventoryService, stock service.StockService) *ItemHandler {
	return &ItemHandler{inventory: inventory, stock: stock}
}

type createItemRequest struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
}

type adjustItemRequest struct {
	Delta int `json:"delta"`
}

// HandleStock handles GET /stock?sort=
func (h *ItemHandler) HandleStock(w http.ResponseWriter, r *http.Request) {
	order, err := service.ParseStockSort(r.URL.Query().Get("sort"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.stock.Stock(r.Context(), order))
}

func (h *ItemHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stock.Summary(r.Context()))
}

func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.inventory.ListItems(r.Context()))
}

func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.inventory.AddItem(r.Context(), domain.ItemID(req.ID), req.Name, req.TotalQuantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// HandleAdjustItem handles PATCH /items/{id} with a relative quantity change
func (h *ItemHandler) HandleAdjustItem(w http.ResponseWriter, r *http.Request) {
	var req adjustItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.inventory.AdjustQuantity(r.Context(), domain.ItemID(mux.Vars(r)["id"]), req.Delta)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.inventory.DeleteItem(r.Context(), domain.ItemID(mux.Vars(r)["id"])); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
