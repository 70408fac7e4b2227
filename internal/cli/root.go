// Package cli is the presentation layer: a set of cobra commands that call
// the services and render their results as text. No business rule lives
// here.
package cli

import (
	"github.com/spf13/cobra"

	"kasir/internal/services"
)

// Deps carries the services the commands call into.
type Deps struct {
	Auth      *services.AuthService
	Products  *services.ProductService
	Checkout  *services.CheckoutService
	Receipts  *services.ReceiptService
	ImagesDir string
}

// NewRootCmd builds the kasir command tree.
func NewRootCmd(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "kasir",
		Short:         "Single-station point of sale",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(deps),
		newCategoriesCmd(deps),
		newProductsCmd(deps),
		newProductUpdateCmd(deps),
		newCheckoutCmd(deps),
		newReceiptsCmd(deps),
	)
	return root
}
