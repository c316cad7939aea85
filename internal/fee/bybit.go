package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// BybitFeeModel charges the non-VIP Bybit maker/taker percentage of notional,
// with separate rates for spot and derivatives, billed in the quote currency.
type BybitFeeModel struct {
	spotRate       MakerTakerRate
	derivativeRate MakerTakerRate
}

// NewBybitFeeModel creates the Bybit fee model.
func NewBybitFeeModel() *BybitFeeModel {
	return &BybitFeeModel{
		spotRate:       NewMakerTakerRate("0.001", "0.001"),
		derivativeRate: NewMakerTakerRate("0.0002", "0.00055"),
	}
}

// ComputeFee computes the Bybit fee for a single order.
func (m *BybitFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	var rates MakerTakerRate

	switch req.Security.Type {
	case types.SecurityTypeCrypto:
		rates = m.spotRate
	case types.SecurityTypeCryptoFuture:
		rates = m.derivativeRate
	default:
		return types.Money{}, unsupportedSecurityType(VenueBybit, req.Security.Type)
	}

	rate := rates.RateFor(ClassifyLiquidity(req.Order))
	fee := rate.Mul(notionalOf(req.Security, req.Order))

	return types.NewMoney(fee, req.Security.QuoteCurrency), nil
}
