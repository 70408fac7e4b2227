package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newReceiptsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipts",
		Short: "Review past transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := deps.Receipts.ListReceipts()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTOTAL\tPAID\tCHANGE")
			for _, r := range receipts {
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t$%.2f\t$%.2f\n",
					r.ReceiptID, r.Date.Format("2006-01-02 15:04:05"), r.Total, r.AmountPaid, r.Change)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(newReceiptShowCmd(deps), newReceiptDeleteCmd(deps), newReceiptPrintCmd(deps))
	return cmd
}

func newReceiptShowCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a receipt with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReceiptID(args[0])
			if err != nil {
				return err
			}

			r, err := deps.Receipts.GetReceipt(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Receipt #%d  %s\n", r.ReceiptID, r.Date.Format("2006-01-02 15:04:05"))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tQTY\tPRICE\tAMOUNT")
			for _, item := range r.Items {
				fmt.Fprintf(w, "%s\t%d\t$%.2f\t$%.2f\n",
					item.ProductName, item.Quantity, item.Price, item.Price*float64(item.Quantity))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total $%.2f  Paid $%.2f  Change $%.2f\n", r.Total, r.AmountPaid, r.Change)
			return nil
		},
	}
}

func newReceiptDeleteCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a receipt and its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(deps.Auth); err != nil {
				return err
			}

			id, err := parseReceiptID(args[0])
			if err != nil {
				return err
			}
			if err := deps.Receipts.DeleteReceipt(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Receipt %d deleted\n", id)
			return nil
		},
	}
}

func newReceiptPrintCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "print <id>",
		Short: "Render a receipt for hard copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReceiptID(args[0])
			if err != nil {
				return err
			}

			out, err := deps.Receipts.RenderReceipt(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func parseReceiptID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid receipt id %q: %w", arg, err)
	}
	return uint(id), nil
}
