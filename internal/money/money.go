// Package money provides a currency-bound decimal amount.
//
// Every Money value is normalized to the canonical number of fractional
// digits of its currency (ISO 4217) using banker's rounding, so arithmetic
// never accumulates more than one unit of error in the last digit.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrInvalidAmount    = errors.New("invalid amount")
)

// Money is an immutable amount in a single currency. The zero value is not
// meaningful; build values with New, Of, Parse or Zero.
type Money struct {
	amount   decimal.Decimal
	currency currency.Unit
}

// ParseCurrency validates an ISO 4217 code.
func ParseCurrency(code string) (currency.Unit, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return unit, nil
}

// Scale returns the canonical fractional digits of the currency.
func Scale(unit currency.Unit) int32 {
	scale, _ := currency.Standard.Rounding(unit)
	return int32(scale)
}

func New(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{
		amount:   amount.RoundBank(Scale(unit)),
		currency: unit,
	}
}

// Of builds a Money from a decimal amount and an ISO currency code.
func Of(amount decimal.Decimal, code string) (Money, error) {
	unit, err := ParseCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return New(amount, unit), nil
}

// Parse builds a Money from a textual amount such as "150.25".
func Parse(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return Of(d, code)
}

// MustParse is Parse for constants and tests. It panics on bad input.
func MustParse(amount, code string) Money {
	m, err := Parse(amount, code)
	if err != nil {
		panic(err)
	}
	return m
}

func Zero(unit currency.Unit) Money {
	return New(decimal.Zero, unit)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() currency.Unit {
	return m.currency
}

func (m Money) CurrencyCode() string {
	return m.currency.String()
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return New(m.amount.Add(other.amount), m.currency), nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return New(m.amount.Sub(other.amount), m.currency), nil
}

// Compare returns -1, 0 or +1 like decimal.Cmp.
func (m Money) Compare(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

func (m Money) IsGreaterThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c > 0, err
}

func (m Money) IsLessThan(other Money) (bool, error) {
	c, err := m.Compare(other)
	return c < 0, err
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// MulRate multiplies the amount by a plain rate, e.g. an interest rate.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return New(m.amount.Mul(rate), m.currency)
}

func (m Money) Neg() Money {
	return New(m.amount.Neg(), m.currency)
}

// Equal reports whether both currency and normalized amount match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// StringFixed formats only the amount using the currency scale.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(Scale(m.currency))
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency, m.StringFixed())
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
