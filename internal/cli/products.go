package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"kasir/internal/models"
	"kasir/pkg/images"
)

func newCategoriesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := deps.Products.ListCategories()
			if err != nil {
				return err
			}
			for _, name := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newProductsCmd(deps *Deps) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				products []models.Product
				err      error
			)
			if search != "" {
				products, err = deps.Products.SearchProducts(search)
			} else {
				products, err = deps.Products.ListProducts(category)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tSTOCK\tIMAGE")
			for _, p := range products {
				image := ""
				if path, err := images.Locate(deps.ImagesDir, p.Name); err == nil {
					image = path
				}
				fmt.Fprintf(w, "%d\t%s\t$%.2f\t%s\t%d\t%s\n",
					p.ProductID, p.Name, p.Price, p.Category, p.Stock, image)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category name")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive name search")
	return cmd
}

func newProductUpdateCmd(deps *Deps) *cobra.Command {
	var (
		id        uint
		name      string
		price     float64
		category  string
		stock     int
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "product-update",
		Short: "Overwrite a product's fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(deps.Auth); err != nil {
				return err
			}

			product := &models.Product{
				ProductID: id,
				Name:      name,
				Price:     price,
				Category:  category,
				Stock:     stock,
			}
			if imagePath != "" {
				product.ImagePath = &imagePath
			}

			if err := deps.Products.UpdateProduct(product); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %d updated\n", id)
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "product id")
	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().IntVar(&stock, "stock", 0, "stock count")
	cmd.Flags().StringVar(&imagePath, "image", "", "image path")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("category")
	return cmd
}
