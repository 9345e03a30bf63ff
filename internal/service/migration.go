package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/repository/postgres"
)

type migrationService struct {
	db     *sql.DB
	store  *postgres.Store
	atomic bool
}

// NewMigrationService builds the legacy-data importer. With atomic set,
// each batch runs inside a single database transaction; otherwise
// records committed before a failure stay committed.
func NewMigrationService(db *sql.DB, store *postgres.Store, atomic bool) MigrationService {
	return &migrationService{db: db, store: store, atomic: atomic}
}

func (s *migrationService) Migrate(ctx context.Context, batch *domain.MigrationBatch) (*domain.MigrationResult, error) {
	stats := domain.MigrationStats{}

	if s.atomic && s.db != nil {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("begin migration transaction: %w", err)
		}
		if err := s.run(ctx, postgres.NewStore(tx), batch, &stats); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit migration transaction: %w", err)
		}
	} else {
		if err := s.run(ctx, s.store, batch, &stats); err != nil {
			return nil, err
		}
	}

	logger.Info("Migration completed",
		"users", stats.Users,
		"receipts", stats.Receipts,
		"transactions", stats.Transactions,
		"due_records", stats.DueRecords)

	return &domain.MigrationResult{Success: true, Stats: stats}, nil
}

func (s *migrationService) run(ctx context.Context, store *postgres.Store, batch *domain.MigrationBatch, stats *domain.MigrationStats) error {
	// Legacy-id to new-id mapping, scoped to this invocation only.
	userIDMap := make(map[string]int32)

	// Users are deduplicated by email: a user that already exists is
	// mapped to the existing row, never updated or duplicated.
	for _, lu := range batch.Users {
		existing, err := store.UserRepository.GetByEmail(ctx, lu.Email)
		if err == nil {
			userIDMap[lu.ID] = existing.ID
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("look up user %s: %w", lu.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(lu.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", lu.Email, err)
		}

		u := &domain.User{
			Name:             lu.Name,
			Email:            lu.Email,
			PasswordHash:     string(hash),
			StoreName:        lu.StoreName,
			StoreAddress:     lu.StoreAddress,
			StoreContact:     lu.StoreContact,
			StoreCountryCode: lu.StoreCountryCode,
			ProfilePhoto:     lu.ProfilePhoto,
			ProfileComplete:  lu.ProfileComplete,
			EmailVerified:    lu.EmailVerified,
			PhoneVerified:    lu.PhoneVerified,
			CreatedOn:        lu.CreatedAt,
		}
		if err := store.UserRepository.Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", lu.Email, err)
		}
		userIDMap[lu.ID] = u.ID
		stats.Users++
	}

	// Receipts are deduplicated by (user, receipt number) so re-running
	// a batch does not duplicate them.
	for _, lr := range batch.Receipts {
		userID, ok := userIDMap[lr.UserID]
		if !ok {
			logger.Warn("Skipping receipt with unresolved legacy user", "legacy_user_id", lr.UserID, "receipt_number", lr.ReceiptNumber)
			continue
		}
		exists, err := store.ReceiptRepository.ExistsByNumber(ctx, userID, lr.ReceiptNumber)
		if err != nil {
			return fmt.Errorf("check receipt %s: %w", lr.ReceiptNumber, err)
		}
		if exists {
			continue
		}

		items := make([]domain.ReceiptItem, 0, len(lr.Items))
		for _, it := range lr.Items {
			items = append(items, domain.ReceiptItem{Name: it.Name, Quantity: it.Quantity, PriceCents: it.PriceCents})
		}
		rc := &domain.Receipt{
			UserID:              userID,
			ReceiptNumber:       lr.ReceiptNumber,
			Date:                lr.Date,
			CustomerName:        lr.CustomerName,
			CustomerContact:     lr.CustomerContact,
			CustomerCountryCode: lr.CustomerCountryCode,
			PaymentType:         domain.PaymentType(lr.PaymentType),
			Notes:               lr.Notes,
			Items:               items,
			TotalCents:          lr.TotalCents,
			CreatedOn:           lr.CreatedAt,
		}
		if err := store.ReceiptRepository.Create(ctx, rc); err != nil {
			return fmt.Errorf("create receipt %s: %w", lr.ReceiptNumber, err)
		}
		stats.Receipts++
	}

	// Transactions and due records carry no natural key, so they are
	// inserted unconditionally: re-running a batch duplicates them.
	for _, lt := range batch.Transactions {
		userID, ok := userIDMap[lt.UserID]
		if !ok {
			logger.Warn("Skipping transaction with unresolved legacy user", "legacy_user_id", lt.UserID)
			continue
		}
		tx := &domain.Transaction{
			UserID:      userID,
			Particulars: lt.Particulars,
			AmountCents: lt.AmountCents,
			Type:        domain.TransactionType(lt.Type),
			Date:        lt.Date,
			CreatedOn:   lt.CreatedAt,
		}
		if err := store.TransactionRepository.Create(ctx, tx); err != nil {
			return fmt.Errorf("create transaction for legacy user %s: %w", lt.UserID, err)
		}
		stats.Transactions++
	}

	for _, ld := range batch.DueRecords {
		userID, ok := userIDMap[ld.UserID]
		if !ok {
			logger.Warn("Skipping due record with unresolved legacy user", "legacy_user_id", ld.UserID)
			continue
		}
		rec := &domain.DueRecord{
			UserID:              userID,
			CustomerName:        ld.CustomerName,
			CustomerContact:     ld.CustomerContact,
			CustomerCountryCode: ld.CustomerCountryCode,
			ProductOrdered:      ld.ProductOrdered,
			Quantity:            ld.Quantity,
			AmountDueCents:      ld.AmountDueCents,
			ExpectedPaymentDate: ld.ExpectedPaymentDate,
			IsPaid:              ld.IsPaid,
			CreatedOn:           ld.CreatedAt,
		}
		if ld.PaidAt != "" {
			paidAt := ld.PaidAt
			rec.PaidAt = &paidAt
		}
		if err := store.DueRecordRepository.Create(ctx, rec); err != nil {
			return fmt.Errorf("create due record for legacy user %s: %w", ld.UserID, err)
		}
		stats.DueRecords++
	}

	// Rebuild every mapped user's balance from the rows now persisted,
	// overwriting whatever balance existed before.
	for _, userID := range userIDMap {
		account, err := store.TransactionRepository.SumSignedAmounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("sum transactions for user %d: %w", userID, err)
		}
		due, err := store.DueRecordRepository.SumUnpaidAmounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("sum unpaid dues for user %d: %w", userID, err)
		}
		bal := &domain.Balance{
			UserID:              userID,
			AccountBalanceCents: account,
			TotalDueCents:       due,
		}
		if err := store.BalanceRepository.Upsert(ctx, bal); err != nil {
			return fmt.Errorf("upsert balance for user %d: %w", userID, err)
		}
	}

	return nil
}
