package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// ZerodhaFeeModel bills Indian equities at a fraction of notional capped at a
// flat rupee amount per order, whichever is lower.
type ZerodhaFeeModel struct {
	rate decimal.Decimal
	cap  decimal.Decimal
}

// NewZerodhaFeeModel creates the Zerodha fee model.
func NewZerodhaFeeModel() *ZerodhaFeeModel {
	return &ZerodhaFeeModel{
		rate: decimal.RequireFromString("0.0003"),
		cap:  decimal.RequireFromString("20"),
	}
}

// ComputeFee computes the Zerodha brokerage for a single order.
func (m *ZerodhaFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeEquity {
		return types.Money{}, unsupportedSecurityType(VenueZerodha, req.Security.Type)
	}

	fee := m.rate.Mul(notionalOf(req.Security, req.Order))
	if fee.GreaterThan(m.cap) {
		fee = m.cap
	}

	return types.NewMoney(fee, "INR"), nil
}
