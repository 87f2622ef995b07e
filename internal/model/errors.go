package model

import "errors"

var (
	ErrInvalidAccountID   = errors.New("invalid account id")
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrSequenceOutOfRange = errors.New("account sequence out of range")
	ErrInvalidPolicy      = errors.New("invalid account policy")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrBlankHolderName    = errors.New("holder name can't be empty")
)
