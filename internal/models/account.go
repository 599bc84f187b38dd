package models

import "time"

// Account is the tenant unit: one Google Ads customer managed by the app.
type Account struct {
	ID               string     `db:"id"`
	Name             string     `db:"name"`
	GoogleCustomerID string     `db:"google_customer_id"`
	AutoPauseEnabled bool       `db:"auto_pause_enabled"`
	CreatedAt        *time.Time `db:"created_at"`
}

type AccountUser struct {
	AccountID string     `db:"account_id"`
	UserID    string     `db:"user_id"`
	Role      string     `db:"role"`
	CreatedAt *time.Time `db:"created_at"`
}

// Membership is AccountUser joined with the user row, for member listings.
type Membership struct {
	UserID   string `db:"user_id"`
	Email    string `db:"email"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
}
