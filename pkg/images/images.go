// Package images maps product names to display assets. It is cosmetic
// presentation plumbing and not part of the data contract.
package images

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoImage is returned when neither a product image nor the default image
// exists.
var ErrNoImage = errors.New("no image found")

// imageKeys maps a lowercase product-name substring to an asset key. First
// match wins.
var imageKeys = []struct {
	substr string
	key    string
}{
	{"candy", "Candy"},
	{"chips", "Chips"},
	{"chocolate", "Chocolate"},
	{"coffee", "Coffee"},
	{"cookies", "Cookies"},
	{"crackers", "Crackers"},
	{"energy", "Energy"},
	{"fruit", "Fruit"},
	{"granola", "Granola"},
	{"juice", "Juice"},
	{"lemonade", "Lemonade"},
	{"nuts", "Nuts"},
	{"popcorn", "Popcorn"},
	{"pretzels", "Pretzels"},
	{"protein", "Protein"},
	{"soda", "Soda"},
	{"tea", "Tea"},
	{"trail", "Trail"},
	{"water", "Water"},
}

// Key returns the asset key for a product name, or "" when no substring
// matches.
func Key(productName string) string {
	name := strings.ToLower(productName)
	for _, entry := range imageKeys {
		if strings.Contains(name, entry.substr) {
			return entry.key
		}
	}
	return ""
}

// Locate resolves a product name to an image file under dir, falling back to
// default.png when the product has no dedicated asset.
func Locate(dir, productName string) (string, error) {
	if key := Key(productName); key != "" {
		path := filepath.Join(dir, key+".png")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	fallback := filepath.Join(dir, "default.png")
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}
	return "", fmt.Errorf("product %q: %w", productName, ErrNoImage)
}

// EnsureDir creates the images folder on demand.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create images folder: %w", err)
	}
	return nil
}
