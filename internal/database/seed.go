package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kasir/internal/models"
)

// Default operator account created at first run.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
	defaultAdminFullName = "System Administrator"
)

type seedProduct struct {
	name  string
	price float64
	stock int
}

var seedBeverages = []seedProduct{
	{"Coffee", 2.50, 100},
	{"Tea", 1.75, 100},
	{"Soda", 1.50, 100},
	{"Water", 1.00, 100},
	{"Juice", 2.25, 100},
	{"Lemonade", 1.85, 100},
	{"Energy Drink", 3.50, 100},
}

var seedSnacks = []seedProduct{
	{"Chips", 1.25, 50},
	{"Chocolate Bar", 1.50, 50},
	{"Candy", 0.75, 50},
	{"Cookies", 2.00, 50},
	{"Nuts", 2.50, 50},
	{"Popcorn", 1.75, 50},
	{"Protein Bar", 2.75, 50},
	{"Trail Mix", 3.00, 50},
	{"Pretzels", 1.25, 50},
	{"Crackers", 1.65, 50},
	{"Granola Bar", 1.45, 50},
	{"Fruit Snacks", 1.35, 50},
}

// Seed inserts the default admin account and the fixed sample catalog. When
// categories already exist the product and category tables are cleared first
// (identity counters included) so reseeding never duplicates rows.
func Seed(db *gorm.DB) error {
	if err := seedDefaultUser(db); err != nil {
		return err
	}
	return seedSampleProducts(db)
}

func seedDefaultUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("Username = ?", DefaultAdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	user := models.User{
		Username: DefaultAdminUsername,
		Password: string(hash),
		FullName: defaultAdminFullName,
		IsAdmin:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed default user: %w", err)
	}
	return nil
}

func seedSampleProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		// Clear existing data so reseeding cannot duplicate rows.
		if err := db.Exec("DELETE FROM Products").Error; err != nil {
			return fmt.Errorf("failed to clear products: %w", err)
		}
		if err := db.Exec("DELETE FROM Categories").Error; err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}
		if err := db.Exec("DELETE FROM sqlite_sequence WHERE name='Products' OR name='Categories'").Error; err != nil {
			return fmt.Errorf("failed to reset identity counters: %w", err)
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		beverages := models.Category{Name: "Beverages"}
		if err := tx.Create(&beverages).Error; err != nil {
			return fmt.Errorf("failed to create Beverages category: %w", err)
		}
		snacks := models.Category{Name: "Snacks"}
		if err := tx.Create(&snacks).Error; err != nil {
			return fmt.Errorf("failed to create Snacks category: %w", err)
		}

		if err := insertSeedProducts(tx, beverages.CategoryID, seedBeverages); err != nil {
			return err
		}
		return insertSeedProducts(tx, snacks.CategoryID, seedSnacks)
	})
}

func insertSeedProducts(tx *gorm.DB, categoryID uint, items []seedProduct) error {
	for _, item := range items {
		catID := categoryID
		product := models.Product{
			Name:       item.name,
			Price:      item.price,
			CategoryID: &catID,
			Stock:      item.stock,
		}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", item.name, err)
		}
	}
	return nil
}
