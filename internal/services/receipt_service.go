package services

import (
	"kasir/internal/models"
	"kasir/internal/repositories"
	"kasir/pkg/receipt"
)

// ReceiptService handles retrieval, deletion and hard-copy rendering of past
// receipts.
type ReceiptService struct {
	repo repositories.ReceiptRepository
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(repo repositories.ReceiptRepository) *ReceiptService {
	return &ReceiptService{
		repo: repo,
	}
}

// ListReceipts returns all receipt headers, newest first.
func (s *ReceiptService) ListReceipts() ([]models.Receipt, error) {
	return s.repo.ListAll()
}

// GetReceipt returns one receipt with its line items.
func (s *ReceiptService) GetReceipt(id uint) (*models.Receipt, error) {
	return s.repo.GetByID(id)
}

// DeleteReceipt removes a receipt and its line items.
func (s *ReceiptService) DeleteReceipt(id uint) error {
	return s.repo.Delete(id)
}

// RenderReceipt formats a stored receipt for hard copy.
func (s *ReceiptService) RenderReceipt(id uint) (string, error) {
	r, err := s.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	return receipt.Render(r), nil
}
