package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// AlpacaFeeModel charges nothing on equities and a maker/taker percentage of
// notional on crypto, billed in the quote currency.
type AlpacaFeeModel struct {
	cryptoRate MakerTakerRate
}

// NewAlpacaFeeModel creates the Alpaca fee model.
func NewAlpacaFeeModel() *AlpacaFeeModel {
	return &AlpacaFeeModel{
		cryptoRate: NewMakerTakerRate("0.0015", "0.0025"),
	}
}

// ComputeFee computes the Alpaca commission for a single order.
func (m *AlpacaFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	switch req.Security.Type {
	case types.SecurityTypeEquity:
		return types.ZeroMoney("USD"), nil
	case types.SecurityTypeCrypto:
		rate := m.cryptoRate.RateFor(ClassifyLiquidity(req.Order))
		fee := rate.Mul(notionalOf(req.Security, req.Order))

		return types.NewMoney(fee, req.Security.QuoteCurrency), nil
	default:
		return types.Money{}, unsupportedSecurityType(VenueAlpaca, req.Security.Type)
	}
}
