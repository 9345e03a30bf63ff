package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/repository"
)

type receiptService struct {
	receiptRepo repository.ReceiptRepository
}

func NewReceiptService(receiptRepo repository.ReceiptRepository) ReceiptService {
	return &receiptService{receiptRepo: receiptRepo}
}

func (s *receiptService) CreateReceipt(ctx context.Context, userID int32, receipt *domain.Receipt) (*domain.Receipt, error) {
	receipt.UserID = userID
	if receipt.ReceiptNumber == "" {
		receipt.ReceiptNumber = generateReceiptNumber()
	}
	if receipt.TotalCents == 0 {
		for _, it := range receipt.Items {
			receipt.TotalCents += int64(it.Quantity) * it.PriceCents
		}
	}
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("create receipt: %w", err)
	}
	return receipt, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, userID int32) ([]domain.Receipt, error) {
	return s.receiptRepo.ListByUser(ctx, userID)
}

func generateReceiptNumber() string {
	return "RCP-" + strings.ToUpper(uuid.New().String()[:8])
}
