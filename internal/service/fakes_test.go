package service

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"shopbook-backend/internal/domain"
)

// In-memory repositories backing the service tests. They mirror the
// postgres behavior the services depend on: serial ids, sql.ErrNoRows
// for absent rows, and sum queries computed from the stored rows.

type fakeUserRepo struct {
	nextID int32
	users  map[int32]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int32]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) ListIDs(ctx context.Context) ([]int32, error) {
	ids := make([]int32, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeReceiptRepo struct {
	nextID   int32
	receipts []domain.Receipt
}

func (f *fakeReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	f.nextID++
	receipt.ID = f.nextID
	f.receipts = append(f.receipts, *receipt)
	return nil
}

func (f *fakeReceiptRepo) ExistsByNumber(ctx context.Context, userID int32, receiptNumber string) (bool, error) {
	for _, r := range f.receipts {
		if r.UserID == userID && r.ReceiptNumber == receiptNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReceiptRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Receipt, error) {
	var out []domain.Receipt
	for _, r := range f.receipts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTransactionRepo struct {
	nextID int32
	txs    []domain.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	f.nextID++
	tx.ID = f.nextID
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeTransactionRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, tx := range f.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) SumSignedAmounts(ctx context.Context, userID int32) (int64, error) {
	var sum int64
	for i := range f.txs {
		if f.txs[i].UserID == userID {
			sum += f.txs[i].SignedAmount()
		}
	}
	return sum, nil
}

type fakeDueRecordRepo struct {
	nextID int32
	recs   []domain.DueRecord
}

func (f *fakeDueRecordRepo) Create(ctx context.Context, rec *domain.DueRecord) error {
	f.nextID++
	rec.ID = f.nextID
	f.recs = append(f.recs, *rec)
	return nil
}

func (f *fakeDueRecordRepo) GetByID(ctx context.Context, id, userID int32) (*domain.DueRecord, error) {
	for _, r := range f.recs {
		if r.ID == id && r.UserID == userID {
			cp := r
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeDueRecordRepo) MarkPaid(ctx context.Context, id int32, paidAt time.Time) error {
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].IsPaid = true
			s := paidAt.Format(time.RFC3339)
			f.recs[i].PaidAt = &s
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeDueRecordRepo) ListByUser(ctx context.Context, userID int32) ([]domain.DueRecord, error) {
	var out []domain.DueRecord
	for _, r := range f.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDueRecordRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.DueRecord, error) {
	cutoff := asOf.Format("2006-01-02")
	var out []domain.DueRecord
	for _, r := range f.recs {
		if !r.IsPaid && r.ExpectedPaymentDate < cutoff {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeDueRecordRepo) SumUnpaidAmounts(ctx context.Context, userID int32) (int64, error) {
	var sum int64
	for _, r := range f.recs {
		if r.UserID == userID && !r.IsPaid {
			sum += r.AmountDueCents
		}
	}
	return sum, nil
}

type fakeBalanceRepo struct {
	nextID   int32
	balances map[int32]*domain.Balance
}

func newFakeBalanceRepo() *fakeBalanceRepo {
	return &fakeBalanceRepo{balances: make(map[int32]*domain.Balance)}
}

func (f *fakeBalanceRepo) GetByUserID(ctx context.Context, userID int32) (*domain.Balance, error) {
	b, ok := f.balances[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBalanceRepo) Create(ctx context.Context, balance *domain.Balance) error {
	f.nextID++
	balance.ID = f.nextID
	cp := *balance
	f.balances[balance.UserID] = &cp
	return nil
}

func (f *fakeBalanceRepo) Update(ctx context.Context, balance *domain.Balance) error {
	if _, ok := f.balances[balance.UserID]; !ok {
		return sql.ErrNoRows
	}
	cp := *balance
	f.balances[balance.UserID] = &cp
	return nil
}

func (f *fakeBalanceRepo) Upsert(ctx context.Context, balance *domain.Balance) error {
	if existing, ok := f.balances[balance.UserID]; ok {
		balance.ID = existing.ID
	} else {
		f.nextID++
		balance.ID = f.nextID
	}
	cp := *balance
	f.balances[balance.UserID] = &cp
	return nil
}

type fakeEmailService struct {
	welcomes  []string
	reminders []string
}

func (f *fakeEmailService) SendWelcome(ctx context.Context, email, name string) error {
	f.welcomes = append(f.welcomes, email)
	return nil
}

func (f *fakeEmailService) SendDueReminder(ctx context.Context, email, ownerName string, rec *domain.DueRecord) error {
	f.reminders = append(f.reminders, email)
	return nil
}
