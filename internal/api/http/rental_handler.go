package http

import (
	"net/http"

	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/service"
	"mobility-rental-backend/internal/utils"

	"github.com/gorilla/mux"
)

// RentalHandler serves rental creation, listing and the per-record actions
type RentalHandler struct {
	rentals service.RentalService
}

func NewRentalHandler(rentals service.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

type createRentalRequest struct {
	RenterName  string `json:"renter_name"`
	PhoneSuffix string `json:"phone_suffix"`
	Region      string `json:"region"`
	Eligibility string `json:"eligibility"`
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	StartDate   string `json:"start_date"` // yyyy-mm-dd
}

func (req createRentalRequest) toInput() (service.CreateRentalInput, error) {
	in := service.CreateRentalInput{
		RenterName:  req.RenterName,
		PhoneSuffix: req.PhoneSuffix,
		Region:      req.Region,
		Eligibility: domain.EligibilityClass(req.Eligibility),
		ItemID:      domain.ItemID(req.ItemID),
		Quantity:    req.Quantity,
	}
	// an empty date is left zero and rejected by the engine in field order
	if req.StartDate != "" {
		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return in, errs.Validation("start_date", err.Error())
		}
		in.StartDate = start
	}
	return in, nil
}

func (h *RentalHandler) HandleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	rental, err := h.rentals.CreateRental(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// HandleListRentals handles GET /rentals?view=active|history|overdue&sort=
func (h *RentalHandler) HandleListRentals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	ctx := r.Context()

	switch view := query.Get("view"); view {
	case "", "active":
		order, err := service.ParseRentalSort(query.Get("sort"), service.RentalSortDefault)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, h.rentals.ListActive(ctx, order))
	case "history":
		order, err := service.ParseRentalSort(query.Get("sort"), service.RentalSortCreatedDesc)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, h.rentals.ListHistory(ctx, order))
	case "overdue":
		writeJSON(w, http.StatusOK, h.rentals.ListOverdue(ctx))
	default:
		writeError(w, r, errs.Validation("view", "unknown view "+view))
	}
}

func (h *RentalHandler) HandleReturnRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentals.ReturnRental(r.Context(), domain.RentalID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) HandleDeleteRental(w http.ResponseWriter, r *http.Request) {
	if err := h.rentals.DeleteRecord(r.Context(), domain.RentalID(mux.Vars(r)["id"])); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
