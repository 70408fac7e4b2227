package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"kasir/internal/models"
	"kasir/internal/repositories"
)

// CartState is the checkout state machine position.
type CartState int

const (
	// CartBuilding accepts cart mutations.
	CartBuilding CartState = iota
	// AwaitingPayment accepts only Settle or Cancel.
	AwaitingPayment
)

// Checkout flow errors.
var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInsufficientTender = errors.New("tendered amount is below the cart total")
	ErrNotBuilding        = errors.New("cart is not in the building state")
	ErrNotAwaitingPayment = errors.New("checkout is not awaiting payment")
	ErrLineNotFound       = errors.New("product is not in the cart")
)

// CheckoutService is the transaction orchestrator: it owns the in-memory
// cart, walks the Cart-Building -> Awaiting-Payment -> Settled sequence, and
// composes the receipt save and stock adjustments into one logical unit of
// work.
type CheckoutService struct {
	receiptRepo repositories.ReceiptRepository
	productRepo repositories.ProductRepository

	sessionID string
	state     CartState
	items     []models.CartItem
}

// NewCheckoutService creates a new CheckoutService with an empty cart.
func NewCheckoutService(receiptRepo repositories.ReceiptRepository, productRepo repositories.ProductRepository) *CheckoutService {
	return &CheckoutService{
		receiptRepo: receiptRepo,
		productRepo: productRepo,
		sessionID:   uuid.New().String(),
		state:       CartBuilding,
	}
}

// SessionID identifies this cart session in log output.
func (s *CheckoutService) SessionID() string { return s.sessionID }

// State returns the current checkout state.
func (s *CheckoutService) State() CartState { return s.state }

// Items returns a copy of the current cart lines.
func (s *CheckoutService) Items() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Total returns the sum of (unit price x quantity) over all cart lines.
func (s *CheckoutService) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.TotalPrice()
	}
	return total
}

// AddProduct adds one unit of a product to the cart, merging into an
// existing line when present. Adding a unit beyond the currently known
// available stock is rejected, not capped.
func (s *CheckoutService) AddProduct(product models.Product) error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}

	available, err := s.productRepo.GetStock(product.ProductID)
	if err != nil {
		return fmt.Errorf("failed to check stock for %s: %w", product.Name, err)
	}

	for i := range s.items {
		if s.items[i].Product.ProductID == product.ProductID {
			if s.items[i].Quantity+1 > available {
				return fmt.Errorf("%s: only %d left: %w", product.Name, available, ErrInsufficientStock)
			}
			s.items[i].Quantity++
			return nil
		}
	}

	if available < 1 {
		return fmt.Errorf("%s is out of stock: %w", product.Name, ErrInsufficientStock)
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	return nil
}

// IncreaseQuantity adds one unit to an existing cart line.
func (s *CheckoutService) IncreaseQuantity(productID uint) error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}
	for i := range s.items {
		if s.items[i].Product.ProductID != productID {
			continue
		}
		available, err := s.productRepo.GetStock(productID)
		if err != nil {
			return fmt.Errorf("failed to check stock: %w", err)
		}
		if s.items[i].Quantity+1 > available {
			return fmt.Errorf("%s: only %d left: %w", s.items[i].Product.Name, available, ErrInsufficientStock)
		}
		s.items[i].Quantity++
		return nil
	}
	return ErrLineNotFound
}

// DecreaseQuantity removes one unit from a cart line, dropping the line when
// it reaches zero.
func (s *CheckoutService) DecreaseQuantity(productID uint) error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}
	for i := range s.items {
		if s.items[i].Product.ProductID != productID {
			continue
		}
		s.items[i].Quantity--
		if s.items[i].Quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		return nil
	}
	return ErrLineNotFound
}

// RemoveLine removes a whole cart line.
func (s *CheckoutService) RemoveLine(productID uint) error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}
	for i := range s.items {
		if s.items[i].Product.ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Clear empties the cart.
func (s *CheckoutService) Clear() error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}
	s.items = nil
	return nil
}

// BeginPayment transitions to Awaiting-Payment. The cart must be non-empty.
func (s *CheckoutService) BeginPayment() error {
	if s.state != CartBuilding {
		return ErrNotBuilding
	}
	if len(s.items) == 0 {
		return ErrCartEmpty
	}
	s.state = AwaitingPayment
	return nil
}

// Cancel abandons payment and returns to Cart-Building. The cart is left
// untouched and no store calls occur.
func (s *CheckoutService) Cancel() error {
	if s.state != AwaitingPayment {
		return ErrNotAwaitingPayment
	}
	s.state = CartBuilding
	return nil
}

// Settle completes the checkout: the tendered amount must cover the cart
// total (sub-total tender is rejected outright). A snapshot of the cart
// lines is persisted as a receipt; on save failure the checkout drops back
// to Cart-Building with the cart intact and no stock is adjusted. On
// success every line's quantity is deducted from stock and the cart is
// cleared.
func (s *CheckoutService) Settle(amountTendered float64) (*models.Receipt, error) {
	if s.state != AwaitingPayment {
		return nil, ErrNotAwaitingPayment
	}

	total := s.Total()
	if amountTendered < total {
		return nil, fmt.Errorf("tendered %.2f against total %.2f: %w", amountTendered, total, ErrInsufficientTender)
	}

	// Snapshot the cart so later mutation cannot alter the saved receipt.
	items := make([]models.ReceiptItem, len(s.items))
	for i, line := range s.items {
		items[i] = models.ReceiptItem{
			ProductID:   line.Product.ProductID,
			ProductName: line.Product.Name,
			Price:       line.Product.Price,
			Quantity:    line.Quantity,
		}
	}

	receipt := &models.Receipt{
		Date:       time.Now(),
		Total:      total,
		AmountPaid: amountTendered,
		Change:     amountTendered - total,
		Items:      items,
	}

	receiptID, err := s.receiptRepo.Save(receipt)
	if err != nil {
		s.state = CartBuilding
		return nil, fmt.Errorf("failed to save receipt: %w", err)
	}

	for _, item := range items {
		if err := s.productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
			// The receipt is already committed; a failed adjustment is
			// reported but does not unwind the sale.
			log.Printf("Warning: failed to adjust stock for product %d (session %s): %v", item.ProductID, s.sessionID, err)
		}
	}

	log.Printf("Receipt #%d settled for session %s (total %.2f)", receiptID, s.sessionID, total)
	s.items = nil
	s.state = CartBuilding
	return receipt, nil
}
