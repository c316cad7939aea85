package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// ExanteFeeModel bills equities per share, options and futures per contract,
// and forex as a fraction of notional, all in USD.
type ExanteFeeModel struct {
	equityPerShare decimal.Decimal
	derivePerLot   decimal.Decimal
	forexRate      decimal.Decimal
	equityMinimum  decimal.Decimal
}

// NewExanteFeeModel creates the Exante fee model.
func NewExanteFeeModel() *ExanteFeeModel {
	return &ExanteFeeModel{
		equityPerShare: decimal.RequireFromString("0.02"),
		derivePerLot:   decimal.RequireFromString("1.50"),
		forexRate:      decimal.RequireFromString("0.00025"),
		equityMinimum:  decimal.RequireFromString("0.02"),
	}
}

// ComputeFee computes the Exante commission for a single order.
func (m *ExanteFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	qty := decimal.NewFromFloat(req.Order.AbsQuantity())

	switch req.Security.Type {
	case types.SecurityTypeEquity:
		raw := m.equityPerShare.Mul(qty)

		return types.NewMoney(applyMinimum(raw, m.equityMinimum), "USD"), nil
	case types.SecurityTypeOption, types.SecurityTypeFuture, types.SecurityTypeFutureOption:
		return types.NewMoney(m.derivePerLot.Mul(qty), "USD"), nil
	case types.SecurityTypeForex:
		fee := m.forexRate.Mul(notionalOf(req.Security, req.Order))

		return types.NewMoney(fee, "USD"), nil
	default:
		return types.Money{}, unsupportedSecurityType(VenueExante, req.Security.Type)
	}
}
