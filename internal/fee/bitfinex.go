package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// BitfinexFeeModel charges the Bitfinex base maker/taker percentage of
// notional on spot and derivatives, billed in the quote currency.
type BitfinexFeeModel struct {
	rate MakerTakerRate
}

// NewBitfinexFeeModel creates the Bitfinex fee model.
func NewBitfinexFeeModel() *BitfinexFeeModel {
	return &BitfinexFeeModel{
		rate: NewMakerTakerRate("0.001", "0.002"),
	}
}

// ComputeFee computes the Bitfinex fee for a single order.
func (m *BitfinexFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	switch req.Security.Type {
	case types.SecurityTypeCrypto, types.SecurityTypeCryptoFuture:
	default:
		return types.Money{}, unsupportedSecurityType(VenueBitfinex, req.Security.Type)
	}

	rate := m.rate.RateFor(ClassifyLiquidity(req.Order))
	fee := rate.Mul(notionalOf(req.Security, req.Order))

	return types.NewMoney(fee, req.Security.QuoteCurrency), nil
}
