package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kasir/internal/services"
	"kasir/pkg/receipt"
)

func newCheckoutCmd(deps *Deps) *cobra.Command {
	var (
		items    []string
		tendered string
	)

	cmd := &cobra.Command{
		Use:   "checkout --item id:qty [--item id:qty ...] --tendered amount",
		Short: "Assemble a cart and settle it against a tendered cash amount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range items {
				productID, quantity, err := parseItemSpec(spec)
				if err != nil {
					return err
				}

				product, err := deps.Products.GetProduct(productID)
				if err != nil {
					return err
				}
				for i := 0; i < quantity; i++ {
					if i == 0 {
						err = deps.Checkout.AddProduct(*product)
					} else {
						err = deps.Checkout.IncreaseQuantity(productID)
					}
					if err != nil {
						return err
					}
				}
			}

			amount, err := strconv.ParseFloat(tendered, 64)
			if err != nil {
				return fmt.Errorf("invalid tendered amount %q: %w", tendered, err)
			}

			if err := deps.Checkout.BeginPayment(); err != nil {
				return err
			}

			settled, err := deps.Checkout.Settle(amount)
			if err != nil {
				if errors.Is(err, services.ErrInsufficientTender) {
					// Back to cart building; nothing was persisted.
					_ = deps.Checkout.Cancel()
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), receipt.Render(settled))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&items, "item", nil, "cart line as productID:quantity")
	cmd.Flags().StringVar(&tendered, "tendered", "", "cash amount tendered")
	cmd.MarkFlagRequired("item")
	cmd.MarkFlagRequired("tendered")
	return cmd
}

func parseItemSpec(spec string) (uint, int, error) {
	idPart, qtyPart, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid item %q, expected productID:quantity", spec)
	}
	id, err := strconv.ParseUint(idPart, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid product id in %q: %w", spec, err)
	}
	qty, err := strconv.Atoi(qtyPart)
	if err != nil || qty < 1 {
		return 0, 0, fmt.Errorf("invalid quantity in %q", spec)
	}
	return uint(id), qty, nil
}
