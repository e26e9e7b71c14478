package http

import (
	"net/http"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/service"
)

// ReturnHandler serves the quick-return flow and history maintenance
type ReturnHandler struct {
	rentals service.RentalService
}

func NewReturnHandler(rentals service.RentalService) *ReturnHandler {
	return &ReturnHandler{rentals: rentals}
}

type returnLookupRequest struct {
	RenterName  string `json:"renter_name"`
	PhoneSuffix string `json:"phone_suffix"`
	ItemID      string `json:"item_id"`
}

type removedResponse struct {
	Removed int `json:"removed"`
}

func (h *ReturnHandler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	var req returnLookupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentals.FindForReturn(r.Context(), req.RenterName, req.PhoneSuffix, domain.ItemID(req.ItemID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *ReturnHandler) HandleQuickReturn(w http.ResponseWriter, r *http.Request) {
	var req returnLookupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentals.QuickReturn(r.Context(), req.RenterName, req.PhoneSuffix, domain.ItemID(req.ItemID))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// HandleClearHistory handles DELETE /history?confirm=true
func (h *ReturnHandler) HandleClearHistory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, r, errs.Validation("confirm", "bulk removal requires confirm=true"))
		return
	}

	removed, err := h.rentals.ClearReturnedHistory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removedResponse{Removed: removed})
}

func (h *ReturnHandler) HandlePruneHistory(w http.ResponseWriter, r *http.Request) {
	removed, err := h.rentals.PruneHistory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removedResponse{Removed: removed})
}
