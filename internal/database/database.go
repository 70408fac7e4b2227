package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kasir/internal/models"
)

// requiredTables are the five tables the application cannot run without.
var requiredTables = []string{"Users", "Categories", "Products", "Receipts", "ReceiptItems"}

// Open opens (or creates) the SQLite database file at path.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// Initialize ensures the full schema exists and seeds the default catalog
// when needed. Table creation runs inside a single transaction so one schema
// generation is all-or-nothing. A store is considered unseeded when the
// database file is new or the Categories table is empty.
func Initialize(db *gorm.DB, freshFile bool) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&models.User{},
			&models.Category{},
			&models.Product{},
			&models.Receipt{},
			&models.ReceiptItem{},
		)
	})
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	needsSeeding := freshFile
	if !needsSeeding {
		var categoryCount int64
		if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
			return fmt.Errorf("failed to check seed state: %w", err)
		}
		needsSeeding = categoryCount == 0
	}

	if needsSeeding {
		log.Println("Database tables are empty, seeding default data")
		if err := Seed(db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return nil
}

// Verify checks that every required table is present by name. If any table
// is missing the backing file is deleted entirely and the store is rebuilt
// from scratch. This is a destructive recovery path with no backup; callers
// must switch to the returned handle.
func Verify(path string, db *gorm.DB) (*gorm.DB, error) {
	for _, table := range requiredTables {
		if db.Migrator().HasTable(table) {
			continue
		}
		log.Printf("Table %q not found, recreating database", table)

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove corrupt database: %w", err)
		}

		fresh, err := Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to reopen database: %w", err)
		}
		if err := Initialize(fresh, true); err != nil {
			return nil, fmt.Errorf("failed to recreate database: %w", err)
		}
		return fresh, nil
	}
	return db, nil
}

// Setup is the full first-contact sequence: open, initialize, verify.
func Setup(path string) (*gorm.DB, error) {
	_, statErr := os.Stat(path)
	freshFile := os.IsNotExist(statErr)

	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := Initialize(db, freshFile); err != nil {
		return nil, err
	}
	return Verify(path, db)
}
