package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kasir/internal/models"
	"kasir/internal/services"
)

// MockReceiptRepository is a mock implementation of repositories.ReceiptRepository
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) Save(receipt *models.Receipt) (uint, error) {
	args := m.Called(receipt)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockReceiptRepository) ListAll() ([]models.Receipt, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) GetByID(id uint) (*models.Receipt, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

var (
	coffee = models.Product{ProductID: 1, Name: "Coffee", Price: 2.50, Category: "Beverages"}
	chips  = models.Product{ProductID: 8, Name: "Chips", Price: 1.25, Category: "Snacks"}
)

func newCheckout(t *testing.T) (*services.CheckoutService, *MockReceiptRepository, *MockProductRepository) {
	t.Helper()
	receiptRepo := new(MockReceiptRepository)
	productRepo := new(MockProductRepository)
	return services.NewCheckoutService(receiptRepo, productRepo), receiptRepo, productRepo
}

func TestCheckoutScenario(t *testing.T) {
	checkout, receiptRepo, productRepo := newCheckout(t)

	productRepo.On("GetStock", uint(1)).Return(100, nil).Twice()
	productRepo.On("GetStock", uint(8)).Return(50, nil).Once()

	require.NoError(t, checkout.AddProduct(coffee))
	require.NoError(t, checkout.IncreaseQuantity(coffee.ProductID))
	require.NoError(t, checkout.AddProduct(chips))
	assert.InDelta(t, 6.25, checkout.Total(), 1e-9)

	require.NoError(t, checkout.BeginPayment())
	assert.Equal(t, services.AwaitingPayment, checkout.State())

	receiptRepo.On("Save", mock.AnythingOfType("*models.Receipt")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Receipt).ReceiptID = 7
		}).
		Return(uint(7), nil).Once()
	productRepo.On("AdjustStock", uint(1), 2).Return(nil).Once()
	productRepo.On("AdjustStock", uint(8), 1).Return(nil).Once()

	settled, err := checkout.Settle(10.00)
	require.NoError(t, err)
	assert.EqualValues(t, 7, settled.ReceiptID)
	assert.InDelta(t, 6.25, settled.Total, 1e-9)
	assert.InDelta(t, 10.00, settled.AmountPaid, 1e-9)
	assert.InDelta(t, 3.75, settled.Change, 1e-9)
	require.Len(t, settled.Items, 2)
	assert.Equal(t, "Coffee", settled.Items[0].ProductName)
	assert.Equal(t, 2, settled.Items[0].Quantity)

	// The cart is cleared and the machine is back to building.
	assert.Empty(t, checkout.Items())
	assert.Equal(t, services.CartBuilding, checkout.State())

	receiptRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestSettleRejectsInsufficientTender(t *testing.T) {
	checkout, receiptRepo, productRepo := newCheckout(t)

	productRepo.On("GetStock", uint(1)).Return(100, nil).Twice()
	productRepo.On("GetStock", uint(8)).Return(50, nil).Once()
	require.NoError(t, checkout.AddProduct(coffee))
	require.NoError(t, checkout.IncreaseQuantity(coffee.ProductID))
	require.NoError(t, checkout.AddProduct(chips))
	require.NoError(t, checkout.BeginPayment())

	_, err := checkout.Settle(5.00)
	assert.ErrorIs(t, err, services.ErrInsufficientTender)

	// Nothing was persisted, no stock adjusted, the cart survives.
	receiptRepo.AssertNotCalled(t, "Save", mock.Anything)
	productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
	assert.Equal(t, services.AwaitingPayment, checkout.State())

	require.NoError(t, checkout.Cancel())
	assert.Equal(t, services.CartBuilding, checkout.State())
	assert.Len(t, checkout.Items(), 2)
}

func TestBeginPaymentRequiresNonEmptyCart(t *testing.T) {
	checkout, _, _ := newCheckout(t)
	assert.ErrorIs(t, checkout.BeginPayment(), services.ErrCartEmpty)
}

func TestAddProductRejectsOversell(t *testing.T) {
	checkout, _, productRepo := newCheckout(t)

	// One unit left: first add succeeds, the second is rejected, not capped.
	productRepo.On("GetStock", uint(1)).Return(1, nil)
	require.NoError(t, checkout.AddProduct(coffee))
	assert.ErrorIs(t, checkout.AddProduct(coffee), services.ErrInsufficientStock)
	assert.ErrorIs(t, checkout.IncreaseQuantity(coffee.ProductID), services.ErrInsufficientStock)

	require.Len(t, checkout.Items(), 1)
	assert.Equal(t, 1, checkout.Items()[0].Quantity)

	// Out of stock entirely.
	productRepo.On("GetStock", uint(8)).Return(0, nil).Once()
	assert.ErrorIs(t, checkout.AddProduct(chips), services.ErrInsufficientStock)
}

func TestCartMutationOnlyWhileBuilding(t *testing.T) {
	checkout, _, productRepo := newCheckout(t)

	productRepo.On("GetStock", uint(1)).Return(100, nil).Once()
	require.NoError(t, checkout.AddProduct(coffee))
	require.NoError(t, checkout.BeginPayment())

	assert.ErrorIs(t, checkout.AddProduct(chips), services.ErrNotBuilding)
	assert.ErrorIs(t, checkout.IncreaseQuantity(1), services.ErrNotBuilding)
	assert.ErrorIs(t, checkout.DecreaseQuantity(1), services.ErrNotBuilding)
	assert.ErrorIs(t, checkout.RemoveLine(1), services.ErrNotBuilding)
	assert.ErrorIs(t, checkout.Clear(), services.ErrNotBuilding)

	// Cancel is only legal while awaiting payment.
	require.NoError(t, checkout.Cancel())
	assert.ErrorIs(t, checkout.Cancel(), services.ErrNotAwaitingPayment)
}

func TestDecreaseAndRemoveLines(t *testing.T) {
	checkout, _, productRepo := newCheckout(t)

	productRepo.On("GetStock", uint(1)).Return(100, nil)
	productRepo.On("GetStock", uint(8)).Return(50, nil)
	require.NoError(t, checkout.AddProduct(coffee))
	require.NoError(t, checkout.IncreaseQuantity(coffee.ProductID))
	require.NoError(t, checkout.AddProduct(chips))

	require.NoError(t, checkout.DecreaseQuantity(coffee.ProductID))
	assert.Equal(t, 1, checkout.Items()[0].Quantity)

	// Decreasing to zero drops the line.
	require.NoError(t, checkout.DecreaseQuantity(coffee.ProductID))
	require.Len(t, checkout.Items(), 1)
	assert.Equal(t, "Chips", checkout.Items()[0].Product.Name)

	require.NoError(t, checkout.RemoveLine(chips.ProductID))
	assert.Empty(t, checkout.Items())

	assert.ErrorIs(t, checkout.RemoveLine(99), services.ErrLineNotFound)
	assert.ErrorIs(t, checkout.DecreaseQuantity(99), services.ErrLineNotFound)
}

func TestSettleSaveFailureKeepsCartIntact(t *testing.T) {
	checkout, receiptRepo, productRepo := newCheckout(t)

	productRepo.On("GetStock", uint(1)).Return(100, nil).Once()
	require.NoError(t, checkout.AddProduct(coffee))
	require.NoError(t, checkout.BeginPayment())

	receiptRepo.On("Save", mock.AnythingOfType("*models.Receipt")).
		Return(uint(0), fmt.Errorf("disk full")).Once()

	_, err := checkout.Settle(10.00)
	assert.Error(t, err)

	// Back to building with the cart intact; no stock was touched.
	assert.Equal(t, services.CartBuilding, checkout.State())
	assert.Len(t, checkout.Items(), 1)
	productRepo.AssertNotCalled(t, "AdjustStock", mock.Anything, mock.Anything)
	receiptRepo.AssertExpectations(t)
}
