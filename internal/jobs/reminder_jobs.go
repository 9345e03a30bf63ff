package jobs

import (
	"context"
	"time"

	"shopbook-backend/internal/logger"
)

// SendDueReminders emails each store owner about unpaid dues whose
// expected payment date has passed.
func (jr *JobRunner) SendDueReminders() {
	jr.runWithRecovery("send_due_reminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.DueRecordRepository.ListOverdue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to list overdue due records", "error", err)
			return
		}

		if len(overdue) == 0 {
			logger.Info("No overdue due records")
			return
		}

		sent := 0
		for i := range overdue {
			due := &overdue[i]

			owner, err := jr.store.UserRepository.GetByID(ctx, due.UserID)
			if err != nil {
				logger.Warn("Failed to load owner for due reminder",
					"due_record_id", due.ID, "user_id", due.UserID, "error", err)
				continue
			}

			if err := jr.email.SendDueReminder(ctx, owner.Email, owner.Name, due); err != nil {
				logger.Warn("Failed to send due reminder",
					"due_record_id", due.ID, "email", owner.Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Due reminders sent", "overdue", len(overdue), "sent", sent)
	})
}
