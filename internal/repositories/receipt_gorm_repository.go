package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kasir/internal/models"
)

// GORMReceiptRepository is a GORM implementation of ReceiptRepository.
type GORMReceiptRepository struct {
	db *gorm.DB
}

// NewGORMReceiptRepository creates a new instance of GORMReceiptRepository.
func NewGORMReceiptRepository(db *gorm.DB) *GORMReceiptRepository {
	return &GORMReceiptRepository{
		db: db,
	}
}

// Save persists the receipt header and all its line items atomically. The
// header is inserted first so its generated identifier exists before any
// line item row references it.
func (r *GORMReceiptRepository) Save(receipt *models.Receipt) (uint, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			return fmt.Errorf("failed to insert receipt header: %w", err)
		}
		for i := range receipt.Items {
			receipt.Items[i].ReceiptID = receipt.ReceiptID
			if err := tx.Create(&receipt.Items[i]).Error; err != nil {
				return fmt.Errorf("failed to insert receipt item %q: %w", receipt.Items[i].ProductName, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save receipt: %w", err)
	}
	return receipt.ReceiptID, nil
}

// ListAll retrieves all receipt headers, newest first by date. Line items
// are not loaded.
func (r *GORMReceiptRepository) ListAll() ([]models.Receipt, error) {
	var receipts []models.Receipt
	if err := r.db.Order("Date DESC").Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// GetByID retrieves one receipt with its line items. The read is two-step:
// header first, then items by parent id.
func (r *GORMReceiptRepository) GetByID(id uint) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.First(&receipt, "ReceiptId = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("receipt %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get receipt %d: %w", id, err)
	}

	if err := r.db.Where("ReceiptId = ?", id).Find(&receipt.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to load items for receipt %d: %w", id, err)
	}
	return &receipt, nil
}

// Delete removes a receipt and its line items. Items are deleted before the
// header to respect the parent/child relationship; a missing header rolls
// the whole transaction back.
func (r *GORMReceiptRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ReceiptId = ?", id).Delete(&models.ReceiptItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete items for receipt %d: %w", id, err)
		}

		res := tx.Where("ReceiptId = ?", id).Delete(&models.Receipt{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete receipt %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("receipt %d: %w", id, ErrNotFound)
		}
		return nil
	})
}
