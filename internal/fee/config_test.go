package fee

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/internal/version"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestLoadScheduleConfig() {
	data := []byte(`
venue: my_broker
kind: percentage
maker: 0.001
taker: 0.003
`)

	config, err := LoadScheduleConfig(data)
	suite.NoError(err)
	suite.Equal("my_broker", config.Venue)
	suite.Equal(ScheduleKindPercentage, config.Kind)
	suite.Equal(0.003, config.Taker)
}

func (suite *ConfigTestSuite) TestLoadScheduleConfigRejectsBadYaml() {
	_, err := LoadScheduleConfig([]byte("kind: [unclosed"))
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ConfigTestSuite) TestValidate() {
	tests := []struct {
		name   string
		config ScheduleConfig
		code   errors.ErrorCode
	}{
		{
			name:   "missing venue",
			config: ScheduleConfig{Kind: ScheduleKindFlat, Currency: "USD"},
			code:   errors.ErrCodeInvalidConfiguration,
		},
		{
			name:   "unknown kind",
			config: ScheduleConfig{Venue: "v", Kind: "exotic"},
			code:   errors.ErrCodeInvalidConfiguration,
		},
		{
			name:   "flat without currency",
			config: ScheduleConfig{Venue: "v", Kind: ScheduleKindFlat, Amount: 1},
			code:   errors.ErrCodeInvalidConfiguration,
		},
		{
			name:   "negative rate",
			config: ScheduleConfig{Venue: "v", Kind: ScheduleKindPercentage, Taker: -0.001},
			code:   errors.ErrCodeInvalidConfiguration,
		},
		{
			name:   "maker above taker",
			config: ScheduleConfig{Venue: "v", Kind: ScheduleKindPercentage, Maker: 0.002, Taker: 0.001},
			code:   errors.ErrCodeInvalidRate,
		},
		{
			name:   "tiered without tiers",
			config: ScheduleConfig{Venue: "v", Kind: ScheduleKindTiered},
			code:   errors.ErrCodeInvalidConfiguration,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			err := tc.config.Validate()
			suite.True(errors.HasCode(err, tc.code))
		})
	}
}

func (suite *ConfigTestSuite) TestValidateChecksScheduleVersion() {
	restore := version.Version
	version.Version = "1.2.0"

	defer func() { version.Version = restore }()

	config := ScheduleConfig{
		Version:  "2.0.0",
		Venue:    "v",
		Kind:     ScheduleKindFlat,
		Currency: "USD",
	}
	err := config.Validate()
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))

	config.Version = "1.2.9"
	suite.NoError(config.Validate())
}

func (suite *ConfigTestSuite) TestGenerateSchema() {
	config := &ScheduleConfig{}

	schema, err := config.GenerateSchema()
	suite.NoError(err)
	suite.NotNil(schema)
	suite.Equal("fee-schedule-config", schema.Title)

	kind, ok := schema.Properties.Get("kind")
	suite.True(ok)
	suite.Contains(kind.Enum, ScheduleKindPercentage)
}

func (suite *ConfigTestSuite) TestFlatModel() {
	model, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue:    "fixed_desk",
		Kind:     ScheduleKindFlat,
		Currency: "USD",
		Amount:   4.95,
	})
	suite.NoError(err)

	fee, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeEquity, 100, "USD", ""),
		Order:    marketOrder(10, testTime),
	})
	suite.NoError(err)
	suite.Equal("4.95", fee.Amount.String())
	suite.Equal("USD", fee.Currency)
}

func (suite *ConfigTestSuite) TestPercentageModel() {
	model, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue: "pct_venue",
		Kind:  ScheduleKindPercentage,
		Maker: 0.001,
		Taker: 0.003,
	})
	suite.NoError(err)

	// A 100 USD notional market order at the 0.3% taker rate.
	fee, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 100, "USD", "BTC"),
		Order:    marketOrder(1, testTime),
	})
	suite.NoError(err)
	suite.Equal("0.3", fee.Amount.String())
	suite.Equal("USD", fee.Currency)

	maker, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 100, "USD", "BTC"),
		Order:    restingLimitOrder(1, 100, testTime),
	})
	suite.NoError(err)
	suite.Equal("0.1", maker.Amount.String())
}

func (suite *ConfigTestSuite) TestPercentageModelMinimum() {
	model, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue:   "pct_venue",
		Kind:    ScheduleKindPercentage,
		Taker:   0.003,
		Minimum: 1,
	})
	suite.NoError(err)

	fee, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 100, "USD", "BTC"),
		Order:    marketOrder(1, testTime),
	})
	suite.NoError(err)
	suite.Equal("1", fee.Amount.String())
}

func (suite *ConfigTestSuite) TestTieredModelTracksVolume() {
	model, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue: "tiered_venue",
		Kind:  ScheduleKindTiered,
		Tiers: []TierConfig{
			{Threshold: 0, Maker: 0.0002, Taker: 0.0004},
			{Threshold: 1_000_000, Maker: 0.0001, Taker: 0.0002},
		},
	})
	suite.NoError(err)

	// First order bills at tier one: 0.02% maker on 1000 notional.
	fee, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 1000, "USD", "BTC"),
		Order:    restingLimitOrder(1, 1000, testTime),
	})
	suite.NoError(err)
	suite.Equal("0.2", fee.Amount.String())
	suite.Equal("1000", model.volume.Accumulated(DefaultAccount, testTime).String())

	// Past the threshold the maker rate halves.
	_, err = model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 1_000_000, "USD", "BTC"),
		Order:    marketOrder(1, testTime.Add(time.Hour)),
	})
	suite.NoError(err)

	discounted, err := model.ComputeFee(FeeRequest{
		Security: testSecurity(types.SecurityTypeCrypto, 1000, "USD", "BTC"),
		Order:    restingLimitOrder(1, 1000, testTime.Add(2*time.Hour)),
	})
	suite.NoError(err)
	suite.Equal("0.1", discounted.Amount.String())
}

func (suite *ConfigTestSuite) TestTieredModelRejectsBadTable() {
	_, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue: "tiered_venue",
		Kind:  ScheduleKindTiered,
		Tiers: []TierConfig{
			{Threshold: 100, Maker: 0.0002, Taker: 0.0004},
		},
	})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTierTable))
}

func (suite *ConfigTestSuite) TestConfiguredModelRegistersAsVenue() {
	registry := NewDefaultRegistry()

	model, err := NewConfiguredFeeModel(&ScheduleConfig{
		Venue:    "my_broker",
		Kind:     ScheduleKindFlat,
		Currency: "USD",
		Amount:   1,
	})
	suite.Require().NoError(err)
	suite.NoError(registry.Register(Venue("my_broker"), model))

	resolved, err := registry.Get(Venue("my_broker"))
	suite.NoError(err)
	suite.Equal(model, resolved)
}
