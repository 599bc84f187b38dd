package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrEmailExists   = errors.New("user with this email already exists")
	ErrAccountExists = errors.New("account with this customer id already exists")
)
