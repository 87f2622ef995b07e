package service

import "errors"

var (
	ErrSameAccount = errors.New("source and destination must differ")
)
