package fee

import (
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
)

// CoinbaseFeeModel reproduces the Coinbase Pro schedule, which changed rates
// at several historical cutover dates. The rate table is selected by the
// order's timestamp so backtests spanning a cutover bill each order at the
// schedule that was live when it traded.
type CoinbaseFeeModel struct {
	schedule *TimeSchedule
}

// NewCoinbaseFeeModel creates the Coinbase fee model.
func NewCoinbaseFeeModel() *CoinbaseFeeModel {
	schedule, err := NewTimeSchedule(
		// Maker orders traded free until March 2019.
		RateChange{
			EffectiveFrom: time.Date(2015, 1, 26, 0, 0, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0", "0.003"),
		},
		RateChange{
			EffectiveFrom: time.Date(2019, 3, 23, 1, 30, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0.0015", "0.0025"),
		},
		RateChange{
			EffectiveFrom: time.Date(2019, 10, 8, 0, 30, 0, 0, time.UTC),
			Rate:          NewMakerTakerRate("0.005", "0.005"),
		},
	)
	if err != nil {
		panic(err)
	}

	return &CoinbaseFeeModel{schedule: schedule}
}

// ComputeFee computes the Coinbase fee for a single order.
func (m *CoinbaseFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeCrypto {
		return types.Money{}, unsupportedSecurityType(VenueCoinbase, req.Security.Type)
	}

	rate := m.schedule.RateAt(req.Order.Time).RateFor(ClassifyLiquidity(req.Order))
	fee := rate.Mul(notionalOf(req.Security, req.Order))

	return types.NewMoney(fee, req.Security.QuoteCurrency), nil
}
