package repository

import (
	"context"
	"time"

	"shopbook-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
	ListIDs(ctx context.Context) ([]int32, error)
}

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	ExistsByNumber(ctx context.Context, userID int32, receiptNumber string) (bool, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Receipt, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error)
	// SumSignedAmounts sums the user's transactions with credits counted
	// positive and debits negative.
	SumSignedAmounts(ctx context.Context, userID int32) (int64, error)
}

type DueRecordRepository interface {
	Create(ctx context.Context, rec *domain.DueRecord) error
	// GetByID is scoped to the owning user; a record belonging to
	// someone else is reported as absent.
	GetByID(ctx context.Context, id, userID int32) (*domain.DueRecord, error)
	MarkPaid(ctx context.Context, id int32, paidAt time.Time) error
	ListByUser(ctx context.Context, userID int32) ([]domain.DueRecord, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.DueRecord, error)
	SumUnpaidAmounts(ctx context.Context, userID int32) (int64, error)
}

type BalanceRepository interface {
	GetByUserID(ctx context.Context, userID int32) (*domain.Balance, error)
	Create(ctx context.Context, balance *domain.Balance) error
	Update(ctx context.Context, balance *domain.Balance) error
	Upsert(ctx context.Context, balance *domain.Balance) error
}
