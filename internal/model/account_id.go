package model

import (
	"fmt"
	"regexp"
	"strings"
)

type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

// AccountTypes lists every supported type in display order.
var AccountTypes = []AccountType{Savings, Checking}

func ParseAccountType(raw string) (AccountType, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "SAVINGS", "SAV", "S":
		return Savings, nil
	case "CHECKING", "CHK", "C":
		return Checking, nil
	default:
		return "", fmt.Errorf("%w: %q (must be savings or checking)", ErrUnknownAccountType, raw)
	}
}

func (t AccountType) Prefix() string {
	switch t {
	case Savings:
		return "SAV"
	case Checking:
		return "CHK"
	default:
		return ""
	}
}

func (t AccountType) Description() string {
	switch t {
	case Savings:
		return "Savings Account"
	case Checking:
		return "Checking Account"
	default:
		return "Unknown"
	}
}

func (t AccountType) Valid() bool {
	return t == Savings || t == Checking
}

const maxSequence = 999999

var accountIDPattern = regexp.MustCompile(`^(SAV|CHK)\d{6}$`)

// AccountID is a type prefix followed by a six digit sequence, e.g. SAV000001.
type AccountID string

func ParseAccountID(raw string) (AccountID, error) {
	value := strings.TrimSpace(raw)
	if !accountIDPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountID, raw)
	}
	return AccountID(value), nil
}

func NewAccountID(accType AccountType, sequence int) (AccountID, error) {
	if !accType.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, string(accType))
	}
	if sequence < 1 || sequence > maxSequence {
		return "", fmt.Errorf("%w: %d", ErrSequenceOutOfRange, sequence)
	}
	return AccountID(fmt.Sprintf("%s%06d", accType.Prefix(), sequence)), nil
}

// Type derives the account type from the prefix.
func (id AccountID) Type() AccountType {
	switch {
	case strings.HasPrefix(string(id), "SAV"):
		return Savings
	case strings.HasPrefix(string(id), "CHK"):
		return Checking
	default:
		return ""
	}
}

func (id AccountID) String() string {
	return string(id)
}
