package postgres

import (
	"context"
	"database/sql"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type dueRecordRepository struct {
	db DBTX
}

func NewDueRecordRepository(db DBTX) repository.DueRecordRepository {
	return &dueRecordRepository{db: db}
}

const dueRecordColumns = `id, user_id, customer_name, COALESCE(customer_contact, ''), COALESCE(customer_country_code, ''), product_ordered, quantity, amount_due_cents, expected_payment_date, is_paid, paid_at, created_on`

func (r *dueRecordRepository) Create(ctx context.Context, rec *domain.DueRecord) error {
	query := `INSERT INTO due_records (user_id, customer_name, customer_contact, customer_country_code, product_ordered, quantity, amount_due_cents, expected_payment_date, is_paid, paid_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now().Format("2006-01-02")
	if rec.ExpectedPaymentDate == "" {
		rec.ExpectedPaymentDate = now
	}
	if rec.CreatedOn == "" {
		rec.CreatedOn = now
	}
	var paidAt interface{}
	if rec.PaidAt != nil {
		paidAt = *rec.PaidAt
	}
	return r.db.QueryRowContext(ctx, query,
		rec.UserID, rec.CustomerName, rec.CustomerContact, rec.CustomerCountryCode,
		rec.ProductOrdered, rec.Quantity, rec.AmountDueCents, rec.ExpectedPaymentDate,
		rec.IsPaid, paidAt, rec.CreatedOn,
	).Scan(&rec.ID)
}

func (r *dueRecordRepository) GetByID(ctx context.Context, id, userID int32) (*domain.DueRecord, error) {
	query := `SELECT ` + dueRecordColumns + ` FROM due_records WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	return scanDueRecord(row.Scan)
}

func (r *dueRecordRepository) MarkPaid(ctx context.Context, id int32, paidAt time.Time) error {
	query := `UPDATE due_records SET is_paid = TRUE, paid_at = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, paidAt, id)
	return err
}

func (r *dueRecordRepository) ListByUser(ctx context.Context, userID int32) ([]domain.DueRecord, error) {
	query := `SELECT ` + dueRecordColumns + ` FROM due_records WHERE user_id = $1 ORDER BY expected_payment_date ASC, id ASC`
	return r.list(ctx, query, userID)
}

func (r *dueRecordRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.DueRecord, error) {
	query := `SELECT ` + dueRecordColumns + ` FROM due_records WHERE is_paid = FALSE AND expected_payment_date < $1 ORDER BY user_id, expected_payment_date`
	return r.list(ctx, query, asOf.Format("2006-01-02"))
}

func (r *dueRecordRepository) list(ctx context.Context, query string, arg any) ([]domain.DueRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.DueRecord
	for rows.Next() {
		rec, err := scanDueRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *dueRecordRepository) SumUnpaidAmounts(ctx context.Context, userID int32) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount_due_cents), 0) FROM due_records WHERE user_id = $1 AND is_paid = FALSE`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum)
	return sum, err
}

func scanDueRecord(scan func(...any) error) (*domain.DueRecord, error) {
	rec := &domain.DueRecord{}
	var expected, createdOn time.Time
	var paidAt sql.NullTime
	err := scan(
		&rec.ID, &rec.UserID, &rec.CustomerName, &rec.CustomerContact, &rec.CustomerCountryCode,
		&rec.ProductOrdered, &rec.Quantity, &rec.AmountDueCents, &expected, &rec.IsPaid,
		&paidAt, &createdOn,
	)
	if err != nil {
		return nil, err
	}
	rec.ExpectedPaymentDate = expected.Format("2006-01-02")
	rec.CreatedOn = createdOn.Format("2006-01-02")
	if paidAt.Valid {
		s := paidAt.Time.Format(time.RFC3339)
		rec.PaidAt = &s
	}
	return rec, nil
}
