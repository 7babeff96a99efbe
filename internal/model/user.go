package model

import "time"

// Input limits enforced at the HTTP boundary.
const (
	MaxEmailLength      = 50
	MaxPasswordLength   = 72 // bcrypt ignores anything past 72 bytes
	MaxWordLength       = 30
	MaxDefinitionLength = 100
)

// User represents an account that can log in. IsAdmin grants dictionary mutation and promotion.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
