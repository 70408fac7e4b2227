package repositories

import "kasir/internal/models"

// ReceiptRepository defines the interface for receipt data access. A receipt
// and its line items are always written and deleted together; no partial
// receipt is ever visible.
type ReceiptRepository interface {
	// Save inserts the receipt header, captures its generated identifier,
	// then inserts one row per line item, all in one transaction. Any
	// failure rolls back the entire receipt.
	Save(receipt *models.Receipt) (uint, error)
	// ListAll returns receipt headers without line items, newest first.
	ListAll() ([]models.Receipt, error)
	// GetByID returns a receipt with its line items, or ErrNotFound.
	GetByID(id uint) (*models.Receipt, error)
	// Delete removes the line items and then the header in one transaction.
	// Returns ErrNotFound (and rolls back) when the header does not exist.
	Delete(id uint) error
}
