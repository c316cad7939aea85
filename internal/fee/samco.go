package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// SamcoFeeModel bills Indian equities at a flat rupee amount per order, or
// the percentage of notional when that comes out lower.
type SamcoFeeModel struct {
	flat decimal.Decimal
	rate decimal.Decimal
}

// NewSamcoFeeModel creates the Samco fee model.
func NewSamcoFeeModel() *SamcoFeeModel {
	return &SamcoFeeModel{
		flat: decimal.RequireFromString("20"),
		rate: decimal.RequireFromString("0.005"),
	}
}

// ComputeFee computes the Samco brokerage for a single order.
func (m *SamcoFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeEquity {
		return types.Money{}, unsupportedSecurityType(VenueSamco, req.Security.Type)
	}

	pct := m.rate.Mul(notionalOf(req.Security, req.Order))

	fee := m.flat
	if pct.LessThan(fee) {
		fee = pct
	}

	return types.NewMoney(fee, "INR"), nil
}
