package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type ledgerService struct {
	txRepo  repository.TransactionRepository
	dueRepo repository.DueRecordRepository
	balRepo repository.BalanceRepository

	// userLocks serializes money-affecting operations per user. The
	// ledger entry and the balance row are two separate writes, so
	// without this two concurrent requests for the same user would
	// race on the balance read-modify-write.
	userLocks sync.Map // int32 -> *sync.Mutex
}

func NewLedgerService(txRepo repository.TransactionRepository, dueRepo repository.DueRecordRepository, balRepo repository.BalanceRepository) LedgerService {
	return &ledgerService{
		txRepo:  txRepo,
		dueRepo: dueRepo,
		balRepo: balRepo,
	}
}

func (s *ledgerService) lockUser(userID int32) func() {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// RecordTransaction applies the amount verbatim: a negative amount is
// not rejected, it simply moves the balance the other way.
func (s *ledgerService) RecordTransaction(ctx context.Context, userID int32, particulars string, amountCents int64, txType domain.TransactionType) (*domain.Transaction, int64, error) {
	if !txType.Valid() {
		return nil, 0, ErrInvalidTransactionType
	}

	unlock := s.lockUser(userID)
	defer unlock()

	tx := &domain.Transaction{
		UserID:      userID,
		Particulars: particulars,
		AmountCents: amountCents,
		Type:        txType,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, 0, fmt.Errorf("create transaction: %w", err)
	}

	// The transaction insert is not rolled back if the balance write
	// below fails; the nightly reconciliation job repairs the drift.
	bal, err := s.fetchOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	bal.AccountBalanceCents += tx.SignedAmount()
	if err := s.balRepo.Update(ctx, bal); err != nil {
		return nil, 0, fmt.Errorf("update balance: %w", err)
	}

	return tx, bal.AccountBalanceCents, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID int32) ([]domain.Transaction, int64, error) {
	txs, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	bal, err := s.balRepo.GetByUserID(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return txs, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return txs, bal.AccountBalanceCents, nil
}

func (s *ledgerService) CreateDueRecord(ctx context.Context, userID int32, rec *domain.DueRecord) (*domain.DueRecord, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	rec.UserID = userID
	rec.IsPaid = false
	rec.PaidAt = nil
	if err := s.dueRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("create due record: %w", err)
	}

	bal, err := s.fetchOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	bal.TotalDueCents += rec.AmountDueCents
	if err := s.balRepo.Update(ctx, bal); err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}

	return rec, nil
}

func (s *ledgerService) ListDueRecords(ctx context.Context, userID int32) ([]domain.DueRecord, error) {
	return s.dueRepo.ListByUser(ctx, userID)
}

func (s *ledgerService) SettleDueRecord(ctx context.Context, userID, dueRecordID int32) (*domain.DueRecord, *domain.Transaction, *domain.Balance, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	rec, err := s.dueRepo.GetByID(ctx, dueRecordID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, nil, ErrDueRecordNotFound
	}
	if err != nil {
		return nil, nil, nil, err
	}
	if rec.IsPaid {
		return nil, nil, nil, ErrDueAlreadyPaid
	}

	paidAt := time.Now()
	if err := s.dueRepo.MarkPaid(ctx, rec.ID, paidAt); err != nil {
		return nil, nil, nil, fmt.Errorf("mark due record paid: %w", err)
	}
	rec.IsPaid = true
	paidAtStr := paidAt.Format(time.RFC3339)
	rec.PaidAt = &paidAtStr

	tx := &domain.Transaction{
		UserID:      userID,
		Particulars: fmt.Sprintf("Payment received from %s for %s", rec.CustomerName, rec.ProductOrdered),
		AmountCents: rec.AmountDueCents,
		Type:        domain.TransactionTypeCredit,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, nil, nil, fmt.Errorf("create settlement transaction: %w", err)
	}

	bal, err := s.fetchOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	bal.AccountBalanceCents += rec.AmountDueCents
	bal.TotalDueCents -= rec.AmountDueCents
	if err := s.balRepo.Update(ctx, bal); err != nil {
		return nil, nil, nil, fmt.Errorf("update balance: %w", err)
	}

	return rec, tx, bal, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, userID int32) (*domain.Balance, error) {
	unlock := s.lockUser(userID)
	defer unlock()
	return s.fetchOrCreateBalance(ctx, userID)
}

func (s *ledgerService) fetchOrCreateBalance(ctx context.Context, userID int32) (*domain.Balance, error) {
	bal, err := s.balRepo.GetByUserID(ctx, userID)
	if err == nil {
		return bal, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get balance: %w", err)
	}

	bal = &domain.Balance{UserID: userID}
	if err := s.balRepo.Create(ctx, bal); err != nil {
		return nil, fmt.Errorf("create balance: %w", err)
	}
	return bal, nil
}
