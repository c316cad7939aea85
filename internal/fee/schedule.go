package fee

import (
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
)

// MakerTakerRate is a pair of percentage rates applied to notional value.
type MakerTakerRate struct {
	Maker decimal.Decimal
	Taker decimal.Decimal
}

// NewMakerTakerRate builds a rate pair from string representations so shipped
// schedules stay bit-exact. It panics on malformed input, which is a
// programmer error in a schedule literal.
func NewMakerTakerRate(maker, taker string) MakerTakerRate {
	return MakerTakerRate{
		Maker: decimal.RequireFromString(maker),
		Taker: decimal.RequireFromString(taker),
	}
}

// RateFor returns the rate for the given liquidity side.
func (r MakerTakerRate) RateFor(liquidity Liquidity) decimal.Decimal {
	if liquidity == LiquidityMaker {
		return r.Maker
	}

	return r.Taker
}

// validate checks rate invariants shared by every schedule: rates are
// non-negative and the maker rate never exceeds the taker rate.
func (r MakerTakerRate) validate() error {
	if r.Maker.IsNegative() || r.Taker.IsNegative() {
		return errors.New(errors.ErrCodeInvalidRate, "negative fee rate")
	}

	if r.Maker.GreaterThan(r.Taker) {
		return errors.Newf(errors.ErrCodeInvalidRate,
			"maker rate %s exceeds taker rate %s", r.Maker, r.Taker)
	}

	return nil
}

// notionalOf returns |quantity| * price * contractMultiplier as a decimal.
func notionalOf(security *types.Security, order *types.Order) decimal.Decimal {
	qty := decimal.NewFromFloat(order.AbsQuantity())
	price := decimal.NewFromFloat(security.Price)
	multiplier := decimal.NewFromFloat(security.Multiplier())

	return qty.Mul(price).Mul(multiplier)
}

// applyMinimum clamps a raw fee up to the schedule floor. Amounts are never
// clamped down.
func applyMinimum(raw, minimum decimal.Decimal) decimal.Decimal {
	if raw.LessThan(minimum) {
		return minimum
	}

	return raw
}

// applyMaximum caps a raw fee at the schedule ceiling when one applies.
func applyMaximum(raw, maximum decimal.Decimal) decimal.Decimal {
	if maximum.IsPositive() && raw.GreaterThan(maximum) {
		return maximum
	}

	return raw
}

// RateChange is one cutover entry of a time-varying schedule.
type RateChange struct {
	// EffectiveFrom is the first instant the rate applies.
	EffectiveFrom time.Time
	Rate          MakerTakerRate
}

// TimeSchedule selects a rate pair by the order's timestamp, so backtests
// reproduce the schedule that was live when the order traded.
type TimeSchedule struct {
	changes []RateChange
}

// NewTimeSchedule builds a time-varying schedule. Entries must be sorted
// ascending by effective date; a misordered table fails at construction.
func NewTimeSchedule(changes ...RateChange) (*TimeSchedule, error) {
	if len(changes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTimeSchedule, "time schedule has no entries")
	}

	for i, change := range changes {
		if err := change.Rate.validate(); err != nil {
			return nil, err
		}

		if i > 0 && !changes[i-1].EffectiveFrom.Before(change.EffectiveFrom) {
			return nil, errors.Newf(errors.ErrCodeInvalidTimeSchedule,
				"time schedule entries not sorted ascending at index %d", i)
		}
	}

	return &TimeSchedule{changes: changes}, nil
}

// RateAt returns the rate of the greatest entry effective at or before t.
// Times before the first cutover use the first entry.
func (s *TimeSchedule) RateAt(t time.Time) MakerTakerRate {
	selected := s.changes[0].Rate

	for _, change := range s.changes {
		if change.EffectiveFrom.After(t) {
			break
		}

		selected = change.Rate
	}

	return selected
}

// Tier is one volume bracket of a tiered schedule.
type Tier struct {
	// Threshold is the cumulative trailing volume at which this tier
	// becomes active.
	Threshold decimal.Decimal
	Rate      MakerTakerRate
	// Minimum is the per-order fee floor at this tier. Zero means no floor.
	Minimum decimal.Decimal
}

// TierTable is an ordered set of volume brackets. The first tier must start
// at zero volume and thresholds must strictly ascend.
type TierTable struct {
	tiers []Tier
}

// NewTierTable validates and builds a tier table. Malformed tables are a
// programmer error surfaced at strategy construction, not at computation.
func NewTierTable(tiers ...Tier) (*TierTable, error) {
	if len(tiers) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTierTable, "tier table has no tiers")
	}

	if !tiers[0].Threshold.IsZero() {
		return nil, errors.New(errors.ErrCodeInvalidTierTable, "first tier threshold must be zero")
	}

	for i, tier := range tiers {
		if err := tier.Rate.validate(); err != nil {
			return nil, err
		}

		if tier.Minimum.IsNegative() {
			return nil, errors.New(errors.ErrCodeInvalidTierTable, "negative tier minimum")
		}

		if i > 0 && tiers[i-1].Threshold.GreaterThanOrEqual(tier.Threshold) {
			return nil, errors.Newf(errors.ErrCodeInvalidTierTable,
				"tier thresholds not strictly ascending at index %d", i)
		}
	}

	return &TierTable{tiers: tiers}, nil
}

// TierFor returns the highest tier whose threshold is at or below the given
// trailing volume.
func (t *TierTable) TierFor(volume decimal.Decimal) Tier {
	selected := t.tiers[0]

	for _, tier := range t.tiers {
		if tier.Threshold.GreaterThan(volume) {
			break
		}

		selected = tier
	}

	return selected
}

// Tiers returns the table entries in ascending threshold order.
func (t *TierTable) Tiers() []Tier {
	return t.tiers
}
