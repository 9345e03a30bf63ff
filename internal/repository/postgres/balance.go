package postgres

import (
	"context"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type balanceRepository struct {
	db DBTX
}

func NewBalanceRepository(db DBTX) repository.BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Balance, error) {
	b := &domain.Balance{}
	var lastUpdated time.Time
	query := `SELECT id, user_id, account_balance_cents, total_due_cents, last_updated FROM balances WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&b.ID, &b.UserID, &b.AccountBalanceCents, &b.TotalDueCents, &lastUpdated)
	if err != nil {
		return nil, err
	}
	b.LastUpdated = lastUpdated.Format(time.RFC3339)
	return b, nil
}

func (r *balanceRepository) Create(ctx context.Context, b *domain.Balance) error {
	query := `INSERT INTO balances (user_id, account_balance_cents, total_due_cents, last_updated)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if b.LastUpdated == "" {
		b.LastUpdated = time.Now().Format(time.RFC3339)
	}
	return r.db.QueryRowContext(ctx, query, b.UserID, b.AccountBalanceCents, b.TotalDueCents, b.LastUpdated).Scan(&b.ID)
}

func (r *balanceRepository) Update(ctx context.Context, b *domain.Balance) error {
	query := `UPDATE balances SET account_balance_cents = $1, total_due_cents = $2, last_updated = $3 WHERE user_id = $4`
	b.LastUpdated = time.Now().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, query, b.AccountBalanceCents, b.TotalDueCents, b.LastUpdated, b.UserID)
	return err
}

// Upsert overwrites whatever balance the user had with the given
// totals. Used by the migration engine and the reconciliation job,
// which recompute balances from persisted rows rather than applying
// deltas.
func (r *balanceRepository) Upsert(ctx context.Context, b *domain.Balance) error {
	query := `INSERT INTO balances (user_id, account_balance_cents, total_due_cents, last_updated)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id) DO UPDATE SET
	            account_balance_cents = EXCLUDED.account_balance_cents,
	            total_due_cents = EXCLUDED.total_due_cents,
	            last_updated = EXCLUDED.last_updated
	          RETURNING id`
	b.LastUpdated = time.Now().Format(time.RFC3339)
	return r.db.QueryRowContext(ctx, query, b.UserID, b.AccountBalanceCents, b.TotalDueCents, b.LastUpdated).Scan(&b.ID)
}
