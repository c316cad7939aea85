package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// InteractiveBrokersFeeModel reproduces the IB tiered commission schedule.
//
// Equities are billed per share at a rate that improves with the account's
// monthly traded share volume, floored at 0.35 USD per order and capped at 1%
// of trade value. Options are billed per contract at a premium-dependent rate
// with a 1.00 USD per-order minimum that applies once to a combo order as a
// whole. Futures and future options are billed per contract. Forex is billed
// as a fraction of notional with a 2.00 USD minimum. All fees are charged in
// USD.
type InteractiveBrokersFeeModel struct {
	equityTiers  *TierTable
	equityVolume *VolumeTracker

	equityMinimum decimal.Decimal
	// equityMaximumPct caps the equity commission at this fraction of trade
	// value.
	equityMaximumPct decimal.Decimal

	optionMinimum decimal.Decimal
	futureRate    decimal.Decimal
	forexRate     decimal.Decimal
	forexMinimum  decimal.Decimal
}

// NewInteractiveBrokersFeeModel creates the IB fee model with its published
// tiered schedule.
func NewInteractiveBrokersFeeModel() *InteractiveBrokersFeeModel {
	// Per-share USD rates by monthly share volume. Maker and taker are not
	// distinguished, so both sides carry the same rate.
	tiers, err := NewTierTable(
		Tier{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0.0035", "0.0035")},
		Tier{Threshold: decimal.NewFromInt(300_000), Rate: NewMakerTakerRate("0.002", "0.002")},
		Tier{Threshold: decimal.NewFromInt(3_000_000), Rate: NewMakerTakerRate("0.0015", "0.0015")},
		Tier{Threshold: decimal.NewFromInt(20_000_000), Rate: NewMakerTakerRate("0.001", "0.001")},
		Tier{Threshold: decimal.NewFromInt(100_000_000), Rate: NewMakerTakerRate("0.0005", "0.0005")},
	)
	if err != nil {
		// The shipped table is static; failing here is a programmer error.
		panic(err)
	}

	return &InteractiveBrokersFeeModel{
		equityTiers:      tiers,
		equityVolume:     NewVolumeTracker(),
		equityMinimum:    decimal.RequireFromString("0.35"),
		equityMaximumPct: decimal.RequireFromString("0.01"),
		optionMinimum:    decimal.RequireFromString("1.00"),
		futureRate:       decimal.RequireFromString("0.85"),
		forexRate:        decimal.RequireFromString("0.00002"),
		forexMinimum:     decimal.RequireFromString("2.00"),
	}
}

// ComputeFee computes the IB commission for a single order.
func (m *InteractiveBrokersFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	switch req.Security.Type {
	case types.SecurityTypeEquity:
		return m.equityFee(req)
	case types.SecurityTypeOption:
		fee, err := m.optionLegFee(req)
		if err != nil {
			return types.Money{}, err
		}

		fee.Amount = applyMinimum(fee.Amount, m.optionMinimum)

		return fee, nil
	case types.SecurityTypeFuture, types.SecurityTypeFutureOption:
		contracts := decimal.NewFromFloat(req.Order.AbsQuantity())

		return types.NewMoney(m.futureRate.Mul(contracts), "USD"), nil
	case types.SecurityTypeForex:
		raw := m.forexRate.Mul(notionalOf(req.Security, req.Order))

		return types.NewMoney(applyMinimum(raw, m.forexMinimum), "USD"), nil
	default:
		return types.Money{}, unsupportedSecurityType(VenueInteractiveBrokers, req.Security.Type)
	}
}

// ComputeLegFee rates one combo leg without the order-level minimum.
func (m *InteractiveBrokersFeeModel) ComputeLegFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type == types.SecurityTypeOption {
		return m.optionLegFee(req)
	}

	return m.ComputeFee(req)
}

// OrderMinimum returns the order-level floor for the leg's schedule. Only the
// option schedule carries one.
func (m *InteractiveBrokersFeeModel) OrderMinimum(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type == types.SecurityTypeOption {
		return types.NewMoney(m.optionMinimum, "USD"), nil
	}

	return types.ZeroMoney("USD"), nil
}

// equityFee bills per share at the monthly-volume tier active before this
// order, then accumulates the order's share count.
func (m *InteractiveBrokersFeeModel) equityFee(req FeeRequest) (types.Money, error) {
	shares := decimal.NewFromFloat(req.Order.AbsQuantity())

	var fee types.Money

	err := m.equityVolume.Bill(DefaultAccount, req.Order.Time, shares, func(accumulated decimal.Decimal) error {
		tier := m.equityTiers.TierFor(accumulated)
		raw := tier.Rate.Taker.Mul(shares)
		raw = applyMinimum(raw, m.equityMinimum)

		tradeValue := notionalOf(req.Security, req.Order)
		raw = applyMaximum(raw, m.equityMaximumPct.Mul(tradeValue))

		fee = types.NewMoney(raw, "USD")

		return nil
	})
	if err != nil {
		return types.Money{}, err
	}

	return fee, nil
}

// optionLegFee is the premium-dependent per-contract commission without the
// per-order minimum. Deep out-of-the-money contracts are billed less.
func (m *InteractiveBrokersFeeModel) optionLegFee(req FeeRequest) (types.Money, error) {
	var perContract decimal.Decimal

	switch premium := req.Security.Price; {
	case premium < 0.05:
		perContract = decimal.RequireFromString("0.25")
	case premium < 0.10:
		perContract = decimal.RequireFromString("0.50")
	default:
		perContract = decimal.RequireFromString("0.65")
	}

	contracts := decimal.NewFromFloat(req.Order.AbsQuantity())

	return types.NewMoney(perContract.Mul(contracts), "USD"), nil
}
