package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopbook-backend/internal/domain"
)

func newLedgerFixture() (LedgerService, *fakeTransactionRepo, *fakeDueRecordRepo, *fakeBalanceRepo) {
	txRepo := &fakeTransactionRepo{}
	dueRepo := &fakeDueRecordRepo{}
	balRepo := newFakeBalanceRepo()
	return NewLedgerService(txRepo, dueRepo, balRepo), txRepo, dueRepo, balRepo
}

func TestLedgerService_RecordTransaction(t *testing.T) {
	svc, txRepo, _, _ := newLedgerFixture()
	ctx := context.Background()

	t.Run("CreditThenDebit", func(t *testing.T) {
		tx, balance, err := svc.RecordTransaction(ctx, 1, "Sold goods", 10000, domain.TransactionTypeCredit)
		assert.NoError(t, err)
		assert.Equal(t, int64(10000), balance)
		assert.Equal(t, int32(1), tx.UserID)

		_, balance, err = svc.RecordTransaction(ctx, 1, "Bought stock", 3000, domain.TransactionTypeDebit)
		assert.NoError(t, err)
		assert.Equal(t, int64(7000), balance)
		assert.Len(t, txRepo.txs, 2)
	})

	t.Run("NegativeAmountAppliedVerbatim", func(t *testing.T) {
		_, balance, err := svc.RecordTransaction(ctx, 1, "Correction", -500, domain.TransactionTypeCredit)
		assert.NoError(t, err)
		assert.Equal(t, int64(6500), balance)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, _, err := svc.RecordTransaction(ctx, 1, "x", 100, domain.TransactionType("transfer"))
		assert.ErrorIs(t, err, ErrInvalidTransactionType)
	})

	t.Run("UsersAreIndependent", func(t *testing.T) {
		_, balance, err := svc.RecordTransaction(ctx, 2, "First sale", 100, domain.TransactionTypeCredit)
		assert.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})
}

func TestLedgerService_ListTransactions(t *testing.T) {
	svc, _, _, _ := newLedgerFixture()
	ctx := context.Background()

	t.Run("EmptyUser", func(t *testing.T) {
		txs, balance, err := svc.ListTransactions(ctx, 5)
		assert.NoError(t, err)
		assert.Empty(t, txs)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("ReturnsBalanceWithRows", func(t *testing.T) {
		_, _, err := svc.RecordTransaction(ctx, 5, "Sale", 2500, domain.TransactionTypeCredit)
		assert.NoError(t, err)

		txs, balance, err := svc.ListTransactions(ctx, 5)
		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Equal(t, int64(2500), balance)
	})
}

func TestLedgerService_CreateDueRecord(t *testing.T) {
	svc, _, _, balRepo := newLedgerFixture()
	ctx := context.Background()

	rec, err := svc.CreateDueRecord(ctx, 1, &domain.DueRecord{
		CustomerName:        "Asha",
		ProductOrdered:      "Flour",
		AmountDueCents:      4000,
		ExpectedPaymentDate: "2026-03-01",
		IsPaid:              true, // client-supplied flag is ignored
	})
	assert.NoError(t, err)
	assert.False(t, rec.IsPaid)
	assert.Nil(t, rec.PaidAt)

	bal := balRepo.balances[1]
	assert.Equal(t, int64(4000), bal.TotalDueCents)
	assert.Equal(t, int64(0), bal.AccountBalanceCents)
}

func TestLedgerService_SettleDueRecord(t *testing.T) {
	svc, txRepo, _, _ := newLedgerFixture()
	ctx := context.Background()

	rec, err := svc.CreateDueRecord(ctx, 1, &domain.DueRecord{
		CustomerName:        "Asha",
		ProductOrdered:      "Flour",
		AmountDueCents:      4000,
		ExpectedPaymentDate: "2026-03-01",
	})
	assert.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		settled, tx, bal, err := svc.SettleDueRecord(ctx, 1, rec.ID)
		assert.NoError(t, err)
		assert.True(t, settled.IsPaid)
		assert.NotNil(t, settled.PaidAt)
		assert.Equal(t, domain.TransactionTypeCredit, tx.Type)
		assert.Equal(t, int64(4000), tx.AmountCents)
		assert.Equal(t, "Payment received from Asha for Flour", tx.Particulars)
		assert.Equal(t, int64(4000), bal.AccountBalanceCents)
		assert.Equal(t, int64(0), bal.TotalDueCents)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		_, _, _, err := svc.SettleDueRecord(ctx, 1, rec.ID)
		assert.ErrorIs(t, err, ErrDueAlreadyPaid)
		assert.Len(t, txRepo.txs, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, _, _, err := svc.SettleDueRecord(ctx, 1, 999)
		assert.ErrorIs(t, err, ErrDueRecordNotFound)
	})

	t.Run("WrongOwner", func(t *testing.T) {
		_, _, _, err := svc.SettleDueRecord(ctx, 2, rec.ID)
		assert.ErrorIs(t, err, ErrDueRecordNotFound)
	})
}

func TestLedgerService_GetBalance(t *testing.T) {
	svc, _, _, balRepo := newLedgerFixture()
	ctx := context.Background()

	// First read creates the zero balance row.
	bal, err := svc.GetBalance(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), bal.AccountBalanceCents)
	assert.Equal(t, int64(0), bal.TotalDueCents)
	assert.Len(t, balRepo.balances, 1)

	bal2, err := svc.GetBalance(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, bal.ID, bal2.ID)
}
