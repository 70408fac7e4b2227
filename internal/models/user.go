package models

import "time"

// User represents an operator account. Accounts are created once at seed
// time and only ever read afterwards; passwords are stored as bcrypt hashes.
type User struct {
	UserID    uint      `json:"user_id" gorm:"column:UserId;primaryKey"`
	Username  string    `json:"username" gorm:"column:Username;uniqueIndex;not null" validate:"required,min=3,max=100"`
	Password  string    `gorm:"column:Password;not null"` // No json tag for security
	FullName  string    `json:"full_name" gorm:"column:FullName"`
	IsAdmin   bool      `json:"is_admin" gorm:"column:IsAdmin;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"column:CreatedAt"`
}

// TableName keeps the legacy table name of the on-disk schema.
func (User) TableName() string { return "Users" }
