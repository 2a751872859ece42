package models

import "time"

// User represents a hosting account holder
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
