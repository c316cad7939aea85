package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// BinanceFuturesFeeModel reproduces the Binance perpetual futures schedule.
// USDT-margined and BUSD-margined contracts carry different maker/taker
// rates, partitioned by the contract's quote currency. Fees are a percentage
// of notional billed in the margin currency.
type BinanceFuturesFeeModel struct {
	usdtRate MakerTakerRate
	busdRate MakerTakerRate
}

// NewBinanceFuturesFeeModel creates the Binance futures fee model.
func NewBinanceFuturesFeeModel() *BinanceFuturesFeeModel {
	return &BinanceFuturesFeeModel{
		usdtRate: NewMakerTakerRate("0.0002", "0.0004"),
		busdRate: NewMakerTakerRate("0.00012", "0.00036"),
	}
}

// ComputeFee computes the Binance futures fee for a single order.
func (m *BinanceFuturesFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeCryptoFuture {
		return types.Money{}, unsupportedSecurityType(VenueBinanceFutures, req.Security.Type)
	}

	rates := m.usdtRate
	if req.Security.QuoteCurrency == "BUSD" {
		rates = m.busdRate
	}

	rate := rates.RateFor(ClassifyLiquidity(req.Order))
	fee := rate.Mul(notionalOf(req.Security, req.Order))

	return types.NewMoney(fee, req.Security.QuoteCurrency), nil
}
