package fee

import (
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// usdPeggedAssets marks the assets Binance treats as USD-stable. A pair of
// two such assets rates on the stable-pair schedule instead of the general
// one.
var usdPeggedAssets = map[string]bool{
	"USD":   true,
	"USDT":  true,
	"BUSD":  true,
	"USDC":  true,
	"USDP":  true,
	"TUSD":  true,
	"FDUSD": true,
	"DAI":   true,
}

// isStablePair reports whether both legs of a currency pair are USD-pegged.
func isStablePair(base, quote string) bool {
	return usdPeggedAssets[base] && usdPeggedAssets[quote]
}

// BinanceFeeModel reproduces the Binance spot schedule. Rates are selected by
// the order's timestamp; stable-coin pairs consult an independent table that
// went to zero when Binance removed fees on them.
//
// Fees are charged in the received asset: buys pay in the base currency
// (rate times quantity), sells pay in the quote currency (rate times
// notional).
type BinanceFeeModel struct {
	general *TimeSchedule
	stable  *TimeSchedule
}

// NewBinanceFeeModel creates the Binance spot fee model.
func NewBinanceFeeModel() *BinanceFeeModel {
	general, err := NewTimeSchedule(
		RateChange{
			EffectiveFrom: time.Date(2017, 7, 14, 0, 0, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0.001", "0.001"),
		},
	)
	if err != nil {
		panic(err)
	}

	// Binance removed fees on stable pairs on 2022-07-08.
	stable, err := NewTimeSchedule(
		RateChange{
			EffectiveFrom: time.Date(2017, 7, 14, 0, 0, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0.001", "0.001"),
		},
		RateChange{
			EffectiveFrom: time.Date(2022, 7, 8, 0, 0, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0", "0"),
		},
	)
	if err != nil {
		panic(err)
	}

	return &BinanceFeeModel{
		general: general,
		stable:  stable,
	}
}

// ComputeFee computes the Binance spot fee for a single order.
func (m *BinanceFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeCrypto {
		return types.Money{}, unsupportedSecurityType(VenueBinance, req.Security.Type)
	}

	schedule := m.general
	if isStablePair(req.Security.BaseCurrency, req.Security.QuoteCurrency) {
		schedule = m.stable
	}

	rate := schedule.RateAt(req.Order.Time).RateFor(ClassifyLiquidity(req.Order))
	qty := decimal.NewFromFloat(req.Order.AbsQuantity())

	// Buys receive base currency, sells receive quote currency; the fee is
	// deducted from the received side.
	if req.Order.IsBuy() && req.Security.BaseCurrency != "" {
		return types.NewMoney(rate.Mul(qty), req.Security.BaseCurrency), nil
	}

	return types.NewMoney(rate.Mul(notionalOf(req.Security, req.Order)), req.Security.QuoteCurrency), nil
}
