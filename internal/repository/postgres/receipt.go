package postgres

import (
	"context"
	"encoding/json"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type receiptRepository struct {
	db DBTX
}

func NewReceiptRepository(db DBTX) repository.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, rc *domain.Receipt) error {
	items, err := json.Marshal(rc.Items)
	if err != nil {
		return err
	}
	paymentDetails, err := json.Marshal(rc.PaymentDetails)
	if err != nil {
		return err
	}
	storeInfo, err := json.Marshal(rc.StoreInfo)
	if err != nil {
		return err
	}

	query := `INSERT INTO receipts (user_id, receipt_number, date, customer_name, customer_contact, customer_country_code, payment_type, notes, items, total_cents, payment_details, store_info, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	now := time.Now().Format("2006-01-02")
	if rc.Date == "" {
		rc.Date = now
	}
	if rc.CreatedOn == "" {
		rc.CreatedOn = now
	}
	return r.db.QueryRowContext(ctx, query,
		rc.UserID, rc.ReceiptNumber, rc.Date, rc.CustomerName, rc.CustomerContact,
		rc.CustomerCountryCode, rc.PaymentType, rc.Notes, items, rc.TotalCents,
		paymentDetails, storeInfo, rc.CreatedOn,
	).Scan(&rc.ID)
}

func (r *receiptRepository) ExistsByNumber(ctx context.Context, userID int32, receiptNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM receipts WHERE user_id = $1 AND receipt_number = $2)`
	err := r.db.QueryRowContext(ctx, query, userID, receiptNumber).Scan(&exists)
	return exists, err
}

func (r *receiptRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Receipt, error) {
	query := `SELECT id, user_id, receipt_number, date, customer_name, COALESCE(customer_contact, ''), COALESCE(customer_country_code, ''), payment_type, COALESCE(notes, ''), items, total_cents, payment_details, store_info, created_on
	          FROM receipts WHERE user_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var rc domain.Receipt
		var date, createdOn time.Time
		var items, paymentDetails, storeInfo []byte
		if err := rows.Scan(
			&rc.ID, &rc.UserID, &rc.ReceiptNumber, &date, &rc.CustomerName, &rc.CustomerContact,
			&rc.CustomerCountryCode, &rc.PaymentType, &rc.Notes, &items, &rc.TotalCents,
			&paymentDetails, &storeInfo, &createdOn,
		); err != nil {
			return nil, err
		}
		rc.Date = date.Format("2006-01-02")
		rc.CreatedOn = createdOn.Format("2006-01-02")
		if len(items) > 0 {
			if err := json.Unmarshal(items, &rc.Items); err != nil {
				return nil, err
			}
		}
		if len(paymentDetails) > 0 {
			if err := json.Unmarshal(paymentDetails, &rc.PaymentDetails); err != nil {
				return nil, err
			}
		}
		if len(storeInfo) > 0 {
			if err := json.Unmarshal(storeInfo, &rc.StoreInfo); err != nil {
				return nil, err
			}
		}
		receipts = append(receipts, rc)
	}
	return receipts, rows.Err()
}
