package fee

import (
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// KrakenFeeModel reproduces the Kraken tiered maker/taker schedule. The
// active tier is selected by the account's trailing traded notional, reset at
// each calendar month boundary. An order is billed at the tier active before
// its own volume contribution, so a single large order never discounts
// itself.
type KrakenFeeModel struct {
	tiers  *TierTable
	volume *VolumeTracker
}

// NewKrakenFeeModel creates the Kraken fee model.
func NewKrakenFeeModel() *KrakenFeeModel {
	tiers, err := NewTierTable(
		Tier{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0.0016", "0.0026")},
		Tier{Threshold: decimal.NewFromInt(50_000), Rate: NewMakerTakerRate("0.0014", "0.0024")},
		Tier{Threshold: decimal.NewFromInt(100_000), Rate: NewMakerTakerRate("0.0012", "0.0022")},
		Tier{Threshold: decimal.NewFromInt(250_000), Rate: NewMakerTakerRate("0.001", "0.002")},
		Tier{Threshold: decimal.NewFromInt(500_000), Rate: NewMakerTakerRate("0.0008", "0.0018")},
		Tier{Threshold: decimal.NewFromInt(1_000_000), Rate: NewMakerTakerRate("0.0006", "0.0016")},
		Tier{Threshold: decimal.NewFromInt(2_500_000), Rate: NewMakerTakerRate("0.0004", "0.0014")},
		Tier{Threshold: decimal.NewFromInt(5_000_000), Rate: NewMakerTakerRate("0.0002", "0.0012")},
		Tier{Threshold: decimal.NewFromInt(10_000_000), Rate: NewMakerTakerRate("0", "0.001")},
	)
	if err != nil {
		panic(err)
	}

	return &KrakenFeeModel{
		tiers:  tiers,
		volume: NewVolumeTracker(),
	}
}

// ComputeFee computes the Kraken fee for a single order and accumulates its
// notional into the account's monthly volume.
func (m *KrakenFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeCrypto {
		return types.Money{}, unsupportedSecurityType(VenueKraken, req.Security.Type)
	}

	notional := notionalOf(req.Security, req.Order)
	liquidity := ClassifyLiquidity(req.Order)

	var fee types.Money

	err := m.volume.Bill(DefaultAccount, req.Order.Time, notional, func(accumulated decimal.Decimal) error {
		tier := m.tiers.TierFor(accumulated)
		raw := tier.Rate.RateFor(liquidity).Mul(notional)
		raw = applyMinimum(raw, tier.Minimum)

		fee = types.NewMoney(raw, req.Security.QuoteCurrency)

		return nil
	})
	if err != nil {
		return types.Money{}, err
	}

	return fee, nil
}

// Accumulated exposes the account's monthly traded notional, mainly for
// portfolio reporting.
func (m *KrakenFeeModel) Accumulated(account string, at time.Time) decimal.Decimal {
	return m.volume.Accumulated(account, at)
}
