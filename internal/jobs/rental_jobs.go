package jobs

import (
	"context"

	"mobility-rental-backend/internal/logger"
)

// PruneReturnedHistory drops returned rentals that are past the retention window
func (jr *JobRunner) PruneReturnedHistory() {
	jr.runWithRecovery("PruneReturnedHistory", func() {
		ctx := context.Background()

		removed, err := jr.rentals.PruneHistory(ctx)
		if err != nil {
			logger.Error("Failed to prune returned history", "error", err)
			return
		}

		logger.Info("Pruned returned history", "removed", removed, "retention_days", jr.config.Policy.RetentionDays)
	})
}

// ReportOverdueRentals logs every active rental past its due date. Status is
// never changed here; stock is only freed by a return.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		overdue := jr.rentals.ListOverdue(ctx)
		logger.Info("Found overdue rentals", "count", len(overdue))

		for _, r := range overdue {
			logger.Warn("Rental is overdue",
				"rental_id", r.ID,
				"item", r.ItemName,
				"quantity", r.Quantity,
				"region", r.Region,
				"due_date", r.DueDate.String())
		}
	})
}
