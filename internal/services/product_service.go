package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

// ProductService handles business logic for the product catalog. Input
// validation happens here, before any store call is attempted.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// ListCategories returns all category names in creation order.
func (s *ProductService) ListCategories() ([]string, error) {
	return s.repo.ListCategories()
}

// ListProducts returns the catalog, optionally filtered to one category.
func (s *ProductService) ListProducts(category string) ([]models.Product, error) {
	return s.repo.List(category)
}

// SearchProducts returns products whose name contains term.
func (s *ProductService) SearchProducts(term string) ([]models.Product, error) {
	return s.repo.Search(term)
}

// GetProduct retrieves a single product by its identifier.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// UpdateProduct overwrites all mutable fields of a product. The product is
// validated first (non-negative price and stock, a name, a category label);
// a validation fault means the store is never touched.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	if product.Category == "" {
		return fmt.Errorf("invalid product: category is required")
	}
	return s.repo.Update(product)
}

// GetStock returns the current stock count for a product.
func (s *ProductService) GetStock(id uint) (int, error) {
	return s.repo.GetStock(id)
}
