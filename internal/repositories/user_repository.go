package repositories

import "kasir/internal/models"

// UserRepository defines the interface for operator account data access.
// Accounts are seeded once and only read afterwards.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}
