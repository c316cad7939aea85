package fee

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ScheduleTestSuite struct {
	suite.Suite
}

func TestScheduleSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTestSuite))
}

func (suite *ScheduleTestSuite) TestMakerTakerRateFor() {
	rate := NewMakerTakerRate("0.001", "0.002")

	suite.Equal("0.001", rate.RateFor(LiquidityMaker).String())
	suite.Equal("0.002", rate.RateFor(LiquidityTaker).String())
}

func (suite *ScheduleTestSuite) TestNotional() {
	security := testSecurity(types.SecurityTypeFuture, 50, "USD", "")
	security.ContractMultiplier = 20
	order := marketOrder(-3, testTime)

	suite.Equal("3000", notionalOf(security, order).String())
}

func (suite *ScheduleTestSuite) TestNotionalDefaultsMultiplierToOne() {
	security := testSecurity(types.SecurityTypeEquity, 100, "USD", "")
	order := marketOrder(2, testTime)

	suite.Equal("200", notionalOf(security, order).String())
}

func (suite *ScheduleTestSuite) TestApplyMinimum() {
	min := decimal.RequireFromString("1")

	suite.Equal("1", applyMinimum(decimal.RequireFromString("0.5"), min).String())
	suite.Equal("1", applyMinimum(decimal.RequireFromString("1"), min).String())
	suite.Equal("2", applyMinimum(decimal.RequireFromString("2"), min).String())
}

func (suite *ScheduleTestSuite) TestApplyMaximum() {
	max := decimal.RequireFromString("10")

	suite.Equal("10", applyMaximum(decimal.RequireFromString("15"), max).String())
	suite.Equal("5", applyMaximum(decimal.RequireFromString("5"), max).String())

	// A zero maximum means no cap
	suite.Equal("15", applyMaximum(decimal.RequireFromString("15"), decimal.Zero).String())
}

func (suite *ScheduleTestSuite) TestTimeScheduleSelectsByOrderTime() {
	first := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := NewTimeSchedule(
		RateChange{EffectiveFrom: first, Rate: NewMakerTakerRate("0.001", "0.002")},
		RateChange{EffectiveFrom: second, Rate: NewMakerTakerRate("0.0005", "0.001")},
	)
	suite.NoError(err)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"before first cutover uses first entry", first.AddDate(-1, 0, 0), "0.002"},
		{"at first cutover", first, "0.002"},
		{"between cutovers", first.AddDate(0, 6, 0), "0.002"},
		{"at second cutover", second, "0.001"},
		{"after second cutover", second.AddDate(1, 0, 0), "0.001"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, schedule.RateAt(tc.at).Taker.String())
		})
	}
}

func (suite *ScheduleTestSuite) TestTimeScheduleValidation() {
	t1 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewTimeSchedule()
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimeSchedule))

	_, err = NewTimeSchedule(
		RateChange{EffectiveFrom: t2, Rate: NewMakerTakerRate("0", "0")},
		RateChange{EffectiveFrom: t1, Rate: NewMakerTakerRate("0", "0")},
	)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimeSchedule))

	_, err = NewTimeSchedule(
		RateChange{EffectiveFrom: t1, Rate: NewMakerTakerRate("0.002", "0.001")},
	)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidRate))
}

func (suite *ScheduleTestSuite) TestTierTableSelection() {
	table, err := NewTierTable(
		Tier{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0.001", "0.002")},
		Tier{Threshold: decimal.NewFromInt(1000), Rate: NewMakerTakerRate("0.0005", "0.001")},
		Tier{Threshold: decimal.NewFromInt(10000), Rate: NewMakerTakerRate("0.0002", "0.0005")},
	)
	suite.NoError(err)

	tests := []struct {
		name     string
		volume   int64
		expected string
	}{
		{"zero volume", 0, "0.002"},
		{"below first threshold", 999, "0.002"},
		{"at first threshold", 1000, "0.001"},
		{"between thresholds", 5000, "0.001"},
		{"at top threshold", 10000, "0.0005"},
		{"above top threshold", 50000, "0.0005"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			tier := table.TierFor(decimal.NewFromInt(tc.volume))
			suite.Equal(tc.expected, tier.Rate.Taker.String())
		})
	}
}

func (suite *ScheduleTestSuite) TestTierTableValidation() {
	tests := []struct {
		name  string
		tiers []Tier
		code  errors.ErrorCode
	}{
		{
			name:  "empty table",
			tiers: nil,
			code:  errors.ErrCodeInvalidTierTable,
		},
		{
			name: "first tier not zero",
			tiers: []Tier{
				{Threshold: decimal.NewFromInt(100), Rate: NewMakerTakerRate("0", "0")},
			},
			code: errors.ErrCodeInvalidTierTable,
		},
		{
			name: "thresholds not ascending",
			tiers: []Tier{
				{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0", "0")},
				{Threshold: decimal.NewFromInt(100), Rate: NewMakerTakerRate("0", "0")},
				{Threshold: decimal.NewFromInt(100), Rate: NewMakerTakerRate("0", "0")},
			},
			code: errors.ErrCodeInvalidTierTable,
		},
		{
			name: "maker above taker",
			tiers: []Tier{
				{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0.002", "0.001")},
			},
			code: errors.ErrCodeInvalidRate,
		},
		{
			name: "negative minimum",
			tiers: []Tier{
				{Threshold: decimal.Zero, Rate: NewMakerTakerRate("0", "0"), Minimum: decimal.NewFromInt(-1)},
			},
			code: errors.ErrCodeInvalidTierTable,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			_, err := NewTierTable(tc.tiers...)
			suite.Error(err)
			suite.True(errors.HasCode(err, tc.code))
		})
	}
}

func (suite *ScheduleTestSuite) TestShippedTierTablesKeepMakerBelowTaker() {
	models := []*TierTable{
		NewKrakenFeeModel().tiers,
		NewInteractiveBrokersFeeModel().equityTiers,
	}

	for _, table := range models {
		for _, tier := range table.Tiers() {
			suite.True(tier.Rate.Maker.LessThanOrEqual(tier.Rate.Taker))
		}
	}
}
