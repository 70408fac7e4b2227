package repositories

import (
	"kasir/internal/models"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	// ListCategories returns category names in creation order.
	ListCategories() ([]string, error)
	// List returns products joined with their category label, ordered by
	// name. An empty category returns the whole catalog; products with a
	// missing category still surface with an empty label.
	List(category string) ([]models.Product, error)
	// Search returns products whose name contains term, case-insensitively.
	Search(term string) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// Update overwrites all mutable product fields by id, resolving the
	// category label to its row first. Returns ErrCategoryNotFound without
	// writing anything when the label does not resolve.
	Update(product *models.Product) error
	// AdjustStock decrements stock by quantitySold, clamped to a floor of
	// zero in a single statement.
	AdjustStock(id uint, quantitySold int) error
	GetStock(id uint) (int, error)
}
