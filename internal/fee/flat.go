package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
)

// FlatFeeModel charges a fixed amount per order in a fixed settlement
// currency, independent of price, quantity and security type.
type FlatFeeModel struct {
	amount   decimal.Decimal
	currency string
}

// NewFlatFeeModel creates a flat per-order fee model. Negative amounts are a
// configuration error.
func NewFlatFeeModel(amount float64, currency string) (*FlatFeeModel, error) {
	if amount < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidRate, "flat fee %f is negative", amount)
	}

	if currency == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "flat fee has no currency")
	}

	return &FlatFeeModel{
		amount:   decimal.NewFromFloat(amount),
		currency: currency,
	}, nil
}

// ComputeFee returns the configured flat amount.
func (m *FlatFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	return types.NewMoney(m.amount, m.currency), nil
}
