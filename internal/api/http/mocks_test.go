package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shopbook-backend/internal/domain"
)

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, userID int32, particulars string, amountCents int64, txType domain.TransactionType) (*domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, particulars, amountCents, txType)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID int32) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerService) CreateDueRecord(ctx context.Context, userID int32, rec *domain.DueRecord) (*domain.DueRecord, error) {
	args := m.Called(ctx, userID, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DueRecord), args.Error(1)
}

func (m *MockLedgerService) ListDueRecords(ctx context.Context, userID int32) ([]domain.DueRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DueRecord), args.Error(1)
}

func (m *MockLedgerService) SettleDueRecord(ctx context.Context, userID, dueRecordID int32) (*domain.DueRecord, *domain.Transaction, *domain.Balance, error) {
	args := m.Called(ctx, userID, dueRecordID)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(*domain.DueRecord), args.Get(1).(*domain.Transaction), args.Get(2).(*domain.Balance), args.Error(3)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID int32) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}
