package postgres

import (
	"context"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type transactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, particulars, amount_cents, type, date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now().Format("2006-01-02")
	if tx.Date == "" {
		tx.Date = now
	}
	if tx.CreatedOn == "" {
		tx.CreatedOn = now
	}
	return r.db.QueryRowContext(ctx, query,
		tx.UserID, tx.Particulars, tx.AmountCents, tx.Type, tx.Date, tx.CreatedOn,
	).Scan(&tx.ID)
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	query := `SELECT id, user_id, particulars, amount_cents, type, date, created_on
	          FROM transactions WHERE user_id = $1 ORDER BY date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var date, createdOn time.Time
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Particulars, &tx.AmountCents, &tx.Type, &date, &createdOn); err != nil {
			return nil, err
		}
		tx.Date = date.Format("2006-01-02")
		tx.CreatedOn = createdOn.Format("2006-01-02")
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (r *transactionRepository) SumSignedAmounts(ctx context.Context, userID int32) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(CASE WHEN type = 'credit' THEN amount_cents ELSE -amount_cents END), 0)
	          FROM transactions WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum)
	return sum, err
}
