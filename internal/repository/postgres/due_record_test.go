package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"shopbook-backend/internal/domain"
)

func TestDueRecordRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDueRecordRepository(db)
	ctx := context.Background()

	rec := &domain.DueRecord{
		UserID:              2,
		CustomerName:        "Asha",
		ProductOrdered:      "Flour",
		Quantity:            2,
		AmountDueCents:      3000,
		ExpectedPaymentDate: "2026-03-01",
		CreatedOn:           "2026-02-01",
	}

	mock.ExpectQuery("INSERT INTO due_records").
		WithArgs(rec.UserID, rec.CustomerName, rec.CustomerContact, rec.CustomerCountryCode,
			rec.ProductOrdered, rec.Quantity, rec.AmountDueCents, rec.ExpectedPaymentDate,
			rec.IsPaid, nil, rec.CreatedOn).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(ctx, rec)
	assert.NoError(t, err)
	assert.Equal(t, int32(11), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDueRecordRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDueRecordRepository(db)
	ctx := context.Background()

	paidAt := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("UPDATE due_records SET is_paid = TRUE").
		WithArgs(paidAt, int32(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.MarkPaid(ctx, 11, paidAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDueRecordRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewDueRecordRepository(db)
	ctx := context.Background()

	expected := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "customer_name", "customer_contact", "customer_country_code",
		"product_ordered", "quantity", "amount_due_cents", "expected_payment_date", "is_paid", "paid_at", "created_on"}).
		AddRow(11, 2, "Asha", "", "", "Flour", 2, 3000, expected, false, nil, created)

	mock.ExpectQuery("SELECT (.+) FROM due_records WHERE is_paid = FALSE").
		WithArgs("2026-03-01").
		WillReturnRows(rows)

	recs, err := repo.ListOverdue(ctx, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, "2026-02-01", recs[0].ExpectedPaymentDate)
	assert.False(t, recs[0].IsPaid)
	assert.Nil(t, recs[0].PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
