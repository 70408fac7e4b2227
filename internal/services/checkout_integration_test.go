package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir/internal/database"
	"kasir/internal/models"
	"kasir/internal/repositories"
	"kasir/internal/services"
)

// TestCheckoutAgainstSeededStore exercises the whole checkout flow against a
// real SQLite store seeded with the default catalog.
func TestCheckoutAgainstSeededStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kasir.db")
	db, err := database.Setup(path)
	require.NoError(t, err)

	productRepo := repositories.NewGORMProductRepository(db)
	receiptRepo := repositories.NewGORMReceiptRepository(db)
	checkout := services.NewCheckoutService(receiptRepo, productRepo)
	receipts := services.NewReceiptService(receiptRepo)

	findSeeded := func(name string) models.Product {
		results, err := productRepo.Search(name)
		require.NoError(t, err)
		require.Len(t, results, 1)
		return results[0]
	}
	seededCoffee := findSeeded("Coffee")
	seededChips := findSeeded("Chips")

	require.NoError(t, checkout.AddProduct(seededCoffee))
	require.NoError(t, checkout.IncreaseQuantity(seededCoffee.ProductID))
	require.NoError(t, checkout.AddProduct(seededChips))
	require.NoError(t, checkout.BeginPayment())

	settled, err := checkout.Settle(10.00)
	require.NoError(t, err)
	assert.InDelta(t, 6.25, settled.Total, 1e-9)
	assert.InDelta(t, 3.75, settled.Change, 1e-9)

	// The receipt round-trips with both line items.
	stored, err := receipts.GetReceipt(settled.ReceiptID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	var sum float64
	for _, item := range stored.Items {
		sum += item.Price * float64(item.Quantity)
	}
	assert.InDelta(t, stored.Total, sum, 1e-9)

	// Stock was deducted per line.
	coffeeStock, err := productRepo.GetStock(seededCoffee.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 98, coffeeStock)
	chipsStock, err := productRepo.GetStock(seededChips.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 49, chipsStock)

	// The receipt can be rendered and deleted afterwards.
	out, err := receipts.RenderReceipt(settled.ReceiptID)
	require.NoError(t, err)
	assert.Contains(t, out, "Coffee x2")
	assert.Contains(t, out, "$6.25")

	require.NoError(t, receipts.DeleteReceipt(settled.ReceiptID))
	_, err = receipts.GetReceipt(settled.ReceiptID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
