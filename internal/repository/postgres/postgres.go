package postgres

import (
	"context"
	"database/sql"

	"shopbook-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql used by the repositories. Both
// *sql.DB and *sql.Tx satisfy it, which lets the migration engine run a
// whole batch inside one transaction when configured to.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db DBTX
	repository.UserRepository
	repository.ReceiptRepository
	repository.TransactionRepository
	repository.DueRecordRepository
	repository.BalanceRepository
}

func NewStore(db DBTX) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		ReceiptRepository:     NewReceiptRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		DueRecordRepository:   NewDueRecordRepository(db),
		BalanceRepository:     NewBalanceRepository(db),
	}
}
