package service

import (
	"context"
	"strings"
	"time"

	"mobility-rental-backend/internal/clock"
	"mobility-rental-backend/internal/domain"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/utils"
)

// RentalPolicy holds the loan durations per eligibility class and the
// history retention window.
type RentalPolicy struct {
	StandardLoanMonths int
	PriorityLoanMonths int
	RetentionWindow    time.Duration
}

func DefaultRentalPolicy() RentalPolicy {
	return RentalPolicy{
		StandardLoanMonths: 1,
		PriorityLoanMonths: 3,
		RetentionWindow:    DefaultRetentionWindow,
	}
}

func (p RentalPolicy) LoanMonths(class domain.EligibilityClass) int {
	if class == domain.EligibilityPriority {
		return p.PriorityLoanMonths
	}
	return p.StandardLoanMonths
}

// DueDate is the start date moved forward by the class's loan length
func (p RentalPolicy) DueDate(start utils.Date, class domain.EligibilityClass) utils.Date {
	return utils.AddMonths(start, p.LoanMonths(class))
}

type CreateRentalInput struct {
	RenterName  string                  `json:"renter_name"`
	PhoneSuffix string                  `json:"phone_suffix"`
	Region      string                  `json:"region"`
	Eligibility domain.EligibilityClass `json:"eligibility"`
	ItemID      domain.ItemID           `json:"item_id"`
	Quantity    int                     `json:"quantity"`
	StartDate   utils.Date              `json:"start_date"`
}

// RentalView is a ledger entry prepared for display
type RentalView struct {
	domain.RentalRecord
	ItemName string `json:"item_name"`
	Overdue  bool   `json:"overdue"`
}

// ValidateRental is the submission gate for a new rental. It reports the
// first failing field; quantity is checked against the stock still free on
// every day from the requested start date on.
func ValidateRental(in CreateRentalInput, snap Snapshot, today utils.Date) error {
	switch {
	case strings.TrimSpace(in.RenterName) == "":
		return errs.Validation("renter_name", "renter name is required")
	case strings.TrimSpace(in.PhoneSuffix) == "":
		return errs.Validation("phone_suffix", "phone suffix is required")
	case strings.TrimSpace(in.Region) == "":
		return errs.Validation("region", "region is required")
	case !in.Eligibility.IsValid():
		return errs.Validation("eligibility", "eligibility must be STANDARD or PRIORITY")
	case in.Quantity <= 0:
		return errs.Validation("quantity", "quantity must be positive")
	case domain.FindItem(snap.Items, in.ItemID) < 0:
		return errs.Validation("item_id", "unknown item "+string(in.ItemID))
	case in.StartDate.IsZero():
		return errs.Validation("start_date", "start date is required")
	case in.StartDate.Before(today):
		return errs.Validation("start_date", "start date cannot be in the past")
	}

	available, _ := Bookable(snap.Items, snap.Rentals, in.ItemID)
	if in.Quantity > available {
		return errs.Validation("quantity", "exceeds available stock")
	}
	return nil
}

type rentalService struct {
	state  *State
	clock  clock.Clock
	ids    IDGenerator
	policy RentalPolicy
}

func NewRentalService(state *State, clk clock.Clock, ids IDGenerator, policy RentalPolicy) RentalService {
	return &rentalService{
		state:  state,
		clock:  clk,
		ids:    ids,
		policy: policy,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*domain.RentalRecord, error) {
	logger.EnterMethod("CreateRental", "item_id", input.ItemID, "quantity", input.Quantity)

	now := s.clock.Now()
	var created domain.RentalRecord
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		if err := ValidateRental(input, *snap, utils.DateOf(now)); err != nil {
			return false, err
		}

		created = domain.RentalRecord{
			ID:          s.ids.NewRentalID(),
			ItemID:      input.ItemID,
			RenterName:  strings.TrimSpace(input.RenterName),
			PhoneSuffix: strings.TrimSpace(input.PhoneSuffix),
			Region:      strings.TrimSpace(input.Region),
			Eligibility: input.Eligibility,
			Quantity:    input.Quantity,
			StartDate:   input.StartDate,
			DueDate:     s.policy.DueDate(input.StartDate, input.Eligibility),
			Status:      domain.RentalStatusActive,
			CreatedAt:   now,
		}
		snap.Rentals = append(snap.Rentals, created)
		return true, nil
	})
	if err != nil {
		logger.ExitMethodWithError("CreateRental", err, errs.Is(err, errs.ErrValidation))
		return nil, err
	}

	logger.InfoContext(ctx, "Rental created",
		"rental_id", created.ID,
		"item_id", created.ItemID,
		"quantity", created.Quantity,
		"region", created.Region,
		"due_date", created.DueDate.String())
	logger.ExitMethod("CreateRental")
	out := created.Clone()
	return &out, nil
}

// ReturnRental marks an active rental returned. An already-returned record
// is rejected with ErrInvalidState and left untouched.
func (s *rentalService) ReturnRental(ctx context.Context, id domain.RentalID) (*domain.RentalRecord, error) {
	var returned domain.RentalRecord
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		i := domain.FindRental(snap.Rentals, id)
		if i < 0 {
			return false, errs.NotFound("rental %s not found", id)
		}
		var err error
		returned, err = s.markReturned(snap, i)
		return err == nil, err
	})
	if err != nil {
		logger.ExitMethodWithError("ReturnRental", err, isRejection(err), "rental_id", id)
		return nil, err
	}

	logger.InfoContext(ctx, "Rental returned", "rental_id", id, "item_id", returned.ItemID, "quantity", returned.Quantity)
	return &returned, nil
}

func (s *rentalService) markReturned(snap *Snapshot, i int) (domain.RentalRecord, error) {
	r := &snap.Rentals[i]
	if r.IsReturned() {
		return domain.RentalRecord{}, errs.InvalidState("rental %s is already returned", r.ID)
	}
	r.MarkReturned(s.clock.Now())
	return r.Clone(), nil
}

// DeleteRecord removes a returned record. Active rentals must be returned first.
func (s *rentalService) DeleteRecord(ctx context.Context, id domain.RentalID) error {
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		i := domain.FindRental(snap.Rentals, id)
		if i < 0 {
			return false, errs.NotFound("rental %s not found", id)
		}
		if !snap.Rentals[i].IsReturned() {
			return false, errs.InvalidState("rental %s is still active", id)
		}
		snap.Rentals = append(snap.Rentals[:i], snap.Rentals[i+1:]...)
		return true, nil
	})
	if err != nil {
		logger.ExitMethodWithError("DeleteRecord", err, isRejection(err), "rental_id", id)
		return err
	}

	logger.InfoContext(ctx, "Rental record deleted", "rental_id", id)
	return nil
}

func (s *rentalService) FindForReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error) {
	match, err := FindForReturn(s.state.Snapshot().Rentals, name, phoneSuffix, itemID)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// QuickReturn finds the matching rental and returns it in one step
func (s *rentalService) QuickReturn(ctx context.Context, name, phoneSuffix string, itemID domain.ItemID) (*domain.RentalRecord, error) {
	var returned domain.RentalRecord
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		match, err := FindForReturn(snap.Rentals, name, phoneSuffix, itemID)
		if err != nil {
			return false, err
		}
		returned, err = s.markReturned(snap, domain.FindRental(snap.Rentals, match.ID))
		return err == nil, err
	})
	if err != nil {
		logger.ExitMethodWithError("QuickReturn", err, isRejection(err), "item_id", itemID)
		return nil, err
	}

	logger.InfoContext(ctx, "Rental returned via quick return", "rental_id", returned.ID, "item_id", itemID)
	return &returned, nil
}

// ListActive lists unreturned rentals, overdue ones included
func (s *rentalService) ListActive(ctx context.Context, order RentalSort) []RentalView {
	views := s.views(func(r *domain.RentalRecord, now time.Time) bool { return !r.IsReturned() })
	SortRentals(views, order)
	return views
}

func (s *rentalService) ListHistory(ctx context.Context, order RentalSort) []RentalView {
	views := s.views(func(r *domain.RentalRecord, now time.Time) bool { return true })
	SortRentals(views, order)
	return views
}

func (s *rentalService) ListOverdue(ctx context.Context) []RentalView {
	views := s.views(func(r *domain.RentalRecord, now time.Time) bool { return r.IsOverdueAt(now) })
	SortRentals(views, RentalSortDueAsc)
	return views
}

func (s *rentalService) views(keep func(r *domain.RentalRecord, now time.Time) bool) []RentalView {
	snap := s.state.Snapshot()
	now := s.clock.Now()

	views := make([]RentalView, 0, len(snap.Rentals))
	for i := range snap.Rentals {
		r := &snap.Rentals[i]
		if !keep(r, now) {
			continue
		}
		views = append(views, RentalView{
			RentalRecord: *r,
			ItemName:     domain.ItemName(snap.Items, r.ItemID),
			Overdue:      r.IsOverdueAt(now),
		})
	}
	return views
}

// ClearReturnedHistory deletes every returned record at once. It is the
// explicit bulk operation; PruneHistory only drops records past retention.
func (s *rentalService) ClearReturnedHistory(ctx context.Context) (int, error) {
	removed := 0
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		kept := snap.Rentals[:0]
		for _, r := range snap.Rentals {
			if r.IsReturned() {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		snap.Rentals = kept
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}

	logger.InfoContext(ctx, "Returned history cleared", "removed", removed)
	return removed, nil
}

// PruneHistory drops returned records older than the retention window and
// writes the ledger only when something was dropped.
func (s *rentalService) PruneHistory(ctx context.Context) (int, error) {
	removed := 0
	err := s.state.mutate(ctx, func(snap *Snapshot) (bool, error) {
		pruned := PruneReturned(snap.Rentals, s.clock.Now(), s.policy.RetentionWindow)
		removed = len(snap.Rentals) - len(pruned)
		snap.Rentals = pruned
		return removed > 0, nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		logger.InfoContext(ctx, "Returned history pruned", "removed", removed, "window", s.policy.RetentionWindow)
	}
	return removed, nil
}

func isRejection(err error) bool {
	return errs.Is(err, errs.ErrNotFound) || errs.Is(err, errs.ErrInvalidState) || errs.Is(err, errs.ErrValidation)
}
