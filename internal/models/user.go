package models

import (
	"time"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	PasswordHash []byte     `db:"password_hash"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    *time.Time `db:"created_at"`
}
