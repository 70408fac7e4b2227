package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kasir/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// ListCategories returns all category names ordered by their identifier.
func (r *GORMProductRepository) ListCategories() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Category{}).
		Order("CategoryId").
		Pluck("Name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return names, nil
}

// catalogQuery is the shared projection for List and Search: a left join so
// products with a null category still surface.
func (r *GORMProductRepository) catalogQuery() *gorm.DB {
	return r.db.Table("Products").
		Select("Products.*, Categories.Name AS Category").
		Joins("LEFT JOIN Categories ON Products.CategoryId = Categories.CategoryId").
		Order("Products.Name")
}

// List retrieves products, optionally filtered to one category.
func (r *GORMProductRepository) List(category string) ([]models.Product, error) {
	query := r.catalogQuery()
	if category != "" {
		query = query.Where("Categories.Name = ?", category)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Search retrieves products whose name matches term as a case-insensitive
// substring.
func (r *GORMProductRepository) Search(term string) ([]models.Product, error) {
	var products []models.Product
	err := r.catalogQuery().
		Where("Products.Name LIKE ?", "%"+term+"%").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its identifier.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.catalogQuery().
		Where("Products.ProductId = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of the product identified by
// product.ProductID. The category label is resolved to its identifier first;
// an unknown label fails the whole update with no partial write.
func (r *GORMProductRepository) Update(product *models.Product) error {
	var category models.Category
	err := r.db.Where("Name = ?", product.Category).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category %q: %w", product.Category, ErrCategoryNotFound)
		}
		return fmt.Errorf("failed to resolve category %q: %w", product.Category, err)
	}

	res := r.db.Model(&models.Product{}).
		Where("ProductId = ?", product.ProductID).
		Updates(map[string]interface{}{
			"Name":       product.Name,
			"Price":      product.Price,
			"CategoryId": category.CategoryID,
			"ImagePath":  product.ImagePath,
			"Stock":      product.Stock,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ProductID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", product.ProductID, ErrNotFound)
	}
	return nil
}

// AdjustStock decrements the stock of a product by quantitySold. The floor
// at zero is applied in the same statement, so there is no read-then-write
// window.
func (r *GORMProductRepository) AdjustStock(id uint, quantitySold int) error {
	res := r.db.Model(&models.Product{}).
		Where("ProductId = ?", id).
		Update("Stock", gorm.Expr("MAX(0, Stock - ?)", quantitySold))
	if res.Error != nil {
		return fmt.Errorf("failed to adjust stock for product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetStock returns the current stock count for a product.
func (r *GORMProductRepository) GetStock(id uint) (int, error) {
	var product models.Product
	err := r.db.Select("Stock").Where("ProductId = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("failed to get stock for product %d: %w", id, err)
	}
	return product.Stock, nil
}
