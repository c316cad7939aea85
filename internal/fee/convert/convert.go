// Package convert normalizes computed fees into a caller-requested
// settlement currency. Rate discovery is the collaborator's concern; this
// package only consumes rates.
package convert

import (
	"sync"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
)

// Converter converts an amount between currencies and knows the account's
// base settlement currency. Implementations are synchronous and side-effect
// free from the fee engine's point of view.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	AccountCurrency() string
}

// Normalize converts a fee into the target currency.
//
// A zero fee short-circuits to a zero fee in the target currency without
// consulting the converter, so the null-fee case never fails even when no
// rate is configured for an otherwise-untraded pair.
func Normalize(converter Converter, fee types.Money, target string) (types.Money, error) {
	if fee.Currency == target {
		return fee, nil
	}

	if fee.IsZero() {
		return types.ZeroMoney(target), nil
	}

	if converter == nil {
		return types.Money{}, errors.Newf(errors.ErrCodeMissingConversionRate,
			"no converter configured to convert %s to %s", fee.Currency, target)
	}

	amount, err := converter.Convert(fee.Amount, fee.Currency, target)
	if err != nil {
		return types.Money{}, err
	}

	return types.NewMoney(amount, target), nil
}

// StaticConverter is an in-memory rate table. It answers direct rates and
// their inverses.
type StaticConverter struct {
	mu              sync.RWMutex
	accountCurrency string
	rates           map[string]decimal.Decimal
}

// NewStaticConverter creates a converter with the given account settlement
// currency and no rates.
func NewStaticConverter(accountCurrency string) *StaticConverter {
	return &StaticConverter{
		accountCurrency: accountCurrency,
		rates:           make(map[string]decimal.Decimal),
	}
}

func rateKey(from, to string) string {
	return from + "/" + to
}

// SetRate stores the conversion rate from one currency to another. The rate
// must be positive so the inverse stays well-defined.
func (c *StaticConverter) SetRate(from, to string, rate float64) error {
	if rate <= 0 {
		return errors.Newf(errors.ErrCodeInvalidRate, "conversion rate %f is not positive", rate)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.rates[rateKey(from, to)] = decimal.NewFromFloat(rate)

	return nil
}

// Convert converts the amount using a direct rate or the inverse of the
// opposite direction. A missing rate for a non-zero amount is an error the
// fee engine propagates unchanged.
func (c *StaticConverter) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if rate, ok := c.rates[rateKey(from, to)]; ok {
		return amount.Mul(rate), nil
	}

	if rate, ok := c.rates[rateKey(to, from)]; ok {
		return amount.Div(rate), nil
	}

	return decimal.Zero, errors.Newf(errors.ErrCodeMissingConversionRate,
		"no conversion rate from %s to %s", from, to)
}

// AccountCurrency returns the account's base settlement currency.
func (c *StaticConverter) AccountCurrency() string {
	return c.accountCurrency
}
