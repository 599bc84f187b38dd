package service

import "errors"

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAnalyst = "analyst"
	RoleViewer  = "viewer"
)

// ErrForbidden is returned when the caller's account role is below the
// one an operation requires.
var ErrForbidden = errors.New("insufficient role for this operation")

var roleRank = map[string]int{
	RoleViewer:  1,
	RoleAnalyst: 2,
	RoleManager: 3,
	RoleAdmin:   4,
	RoleOwner:   5,
}

// ValidRole reports whether role is one of the account membership roles.
func ValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleAtLeast reports whether role grants at least the privileges of min.
func RoleAtLeast(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}
