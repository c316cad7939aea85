package types

import (
	"fmt"

	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
)

// Money is an amount in a specific currency. Fee amounts are never negative.
type Money struct {
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Currency string          `yaml:"currency" json:"currency"`
}

// NewMoney creates a Money value from a decimal amount.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromFloat creates a Money value from a float amount.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(amount), Currency: currency}
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Add returns the sum of two amounts. The currencies must match; summing
// across currencies requires conversion first.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, errors.Newf(errors.ErrCodeCurrencyMismatch,
			"cannot add %s to %s", other.Currency, m.Currency)
	}

	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// String returns the amount followed by the currency, e.g. "1.25 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
