package jobs

import (
	"context"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
)

// ReconcileBalances recomputes every user's balance from the persisted
// transaction and due record rows and upserts the result. Repairs any
// drift left by a partial write.
func (jr *JobRunner) ReconcileBalances() {
	jr.runWithRecovery("reconcile_balances", func() {
		ctx := context.Background()

		userIDs, err := jr.store.UserRepository.ListIDs(ctx)
		if err != nil {
			logger.Error("Failed to list users for reconciliation", "error", err)
			return
		}

		reconciled := 0
		for _, userID := range userIDs {
			accountBalance, err := jr.store.TransactionRepository.SumSignedAmounts(ctx, userID)
			if err != nil {
				logger.Warn("Failed to sum transactions", "user_id", userID, "error", err)
				continue
			}

			totalDue, err := jr.store.DueRecordRepository.SumUnpaidAmounts(ctx, userID)
			if err != nil {
				logger.Warn("Failed to sum unpaid dues", "user_id", userID, "error", err)
				continue
			}

			balance := &domain.Balance{
				UserID:              userID,
				AccountBalanceCents: accountBalance,
				TotalDueCents:       totalDue,
			}
			if err := jr.store.BalanceRepository.Upsert(ctx, balance); err != nil {
				logger.Warn("Failed to upsert balance", "user_id", userID, "error", err)
				continue
			}
			reconciled++
		}

		logger.Info("Balances reconciled", "users", len(userIDs), "reconciled", reconciled)
	})
}
