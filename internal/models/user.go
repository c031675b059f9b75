package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username, case-sensitive
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
