package store

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrNestedTransaction   = errors.New("store is already in a transaction")
	ErrUnsupportedDriver   = errors.New("unsupported database driver")
)
