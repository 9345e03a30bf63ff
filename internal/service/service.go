package service

import (
	"context"

	"shopbook-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, params UpdateProfileParams) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
}

// UpdateProfileParams carries the editable profile fields. Whether the
// profile counts as complete is derived server-side, never taken from
// the client.
type UpdateProfileParams struct {
	Name             string
	StoreName        string
	StoreAddress     string
	StoreContact     string
	StoreCountryCode string
	ProfilePhoto     string
	EmailVerified    bool
	PhoneVerified    bool
}

type ReceiptService interface {
	CreateReceipt(ctx context.Context, userID int32, receipt *domain.Receipt) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, userID int32) ([]domain.Receipt, error)
}

// LedgerService keeps each user's account balance and due total
// consistent with that user's transaction and due-record history.
type LedgerService interface {
	// RecordTransaction persists the transaction and applies its signed
	// amount to the user's account balance, returning the transaction
	// and the new balance in cents.
	RecordTransaction(ctx context.Context, userID int32, particulars string, amountCents int64, txType domain.TransactionType) (*domain.Transaction, int64, error)
	// ListTransactions returns the user's transactions newest first,
	// together with the current account balance in cents.
	ListTransactions(ctx context.Context, userID int32) ([]domain.Transaction, int64, error)
	CreateDueRecord(ctx context.Context, userID int32, rec *domain.DueRecord) (*domain.DueRecord, error)
	ListDueRecords(ctx context.Context, userID int32) ([]domain.DueRecord, error)
	// SettleDueRecord marks an unpaid due record paid, records the
	// offsetting credit transaction, and moves the amount from the due
	// total to the account balance. A second settle attempt fails with
	// ErrDueAlreadyPaid rather than no-oping.
	SettleDueRecord(ctx context.Context, userID, dueRecordID int32) (*domain.DueRecord, *domain.Transaction, *domain.Balance, error)
	GetBalance(ctx context.Context, userID int32) (*domain.Balance, error)
}

// MigrationService imports a snapshot of legacy client-held records,
// re-keys them against the database, and rebuilds the affected
// balances from the persisted rows.
type MigrationService interface {
	Migrate(ctx context.Context, batch *domain.MigrationBatch) (*domain.MigrationResult, error)
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendDueReminder(ctx context.Context, email, ownerName string, rec *domain.DueRecord) error
}
