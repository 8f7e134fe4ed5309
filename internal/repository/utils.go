package repository

import (
	"context"

	"github.com/platewise/mealplan-engine/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't a
// closed-transaction error. Safe to defer after a successful commit.
func SafeRollback(ctx context.Context, tx PlanTx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Debug("Rollback after commit or failure", "error", err)
	}
}
