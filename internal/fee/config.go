package fee

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/internal/version"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type ScheduleKind string

const (
	ScheduleKindFlat       ScheduleKind = "flat"
	ScheduleKindPercentage ScheduleKind = "percentage"
	ScheduleKindTiered     ScheduleKind = "tiered"
)

var AllScheduleKinds = []any{
	ScheduleKindFlat,
	ScheduleKindPercentage,
	ScheduleKindTiered,
}

// TierConfig is one volume bracket of a custom tiered schedule.
type TierConfig struct {
	Threshold float64 `yaml:"threshold" json:"threshold" jsonschema:"title=Threshold,description=Cumulative monthly volume at which this tier activates,minimum=0" validate:"gte=0"`
	Maker     float64 `yaml:"maker" json:"maker" jsonschema:"title=Maker Rate,minimum=0" validate:"gte=0"`
	Taker     float64 `yaml:"taker" json:"taker" jsonschema:"title=Taker Rate,minimum=0" validate:"gte=0"`
	Minimum   float64 `yaml:"minimum" json:"minimum" jsonschema:"title=Minimum Fee,minimum=0" validate:"gte=0"`
}

// ScheduleConfig declares a custom venue fee schedule with named, validated
// fields. It replaces constructor-supplied rate overrides: a misconfigured
// schedule fails at load, not mid-backtest.
type ScheduleConfig struct {
	// Version is the library version the schedule was written against. Empty
	// skips the compatibility check.
	Version string       `yaml:"version" json:"version" jsonschema:"title=Version,description=Library version the schedule targets"`
	Venue   string       `yaml:"venue" json:"venue" jsonschema:"title=Venue,description=Identifier the schedule registers under" validate:"required"`
	Kind    ScheduleKind `yaml:"kind" json:"kind" jsonschema:"title=Kind" validate:"required,oneof=flat percentage tiered"`
	// Currency the fee is billed in. Empty means the security's quote
	// currency; flat schedules must set it.
	Currency string       `yaml:"currency" json:"currency" jsonschema:"title=Currency,description=Billing currency; empty uses the security quote currency"`
	Amount   float64      `yaml:"amount" json:"amount" jsonschema:"title=Flat Amount,minimum=0" validate:"gte=0"`
	Maker    float64      `yaml:"maker" json:"maker" jsonschema:"title=Maker Rate,minimum=0" validate:"gte=0"`
	Taker    float64      `yaml:"taker" json:"taker" jsonschema:"title=Taker Rate,minimum=0" validate:"gte=0"`
	Minimum  float64      `yaml:"minimum" json:"minimum" jsonschema:"title=Minimum Fee,minimum=0" validate:"gte=0"`
	Tiers    []TierConfig `yaml:"tiers" json:"tiers" jsonschema:"title=Tiers" validate:"dive"`
}

// LoadScheduleConfig parses and validates a YAML schedule definition.
func LoadScheduleConfig(data []byte) (*ScheduleConfig, error) {
	var config ScheduleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse schedule config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the ScheduleConfig struct.
func (c *ScheduleConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid schedule config", err)
	}

	if err := version.CheckScheduleCompatibility(version.GetVersion(), c.Version); err != nil {
		return err
	}

	switch c.Kind {
	case ScheduleKindFlat:
		if c.Currency == "" {
			return errors.New(errors.ErrCodeInvalidConfiguration, "flat schedule needs a currency")
		}
	case ScheduleKindPercentage:
		if c.Maker > c.Taker {
			return errors.Newf(errors.ErrCodeInvalidRate,
				"maker rate %f exceeds taker rate %f", c.Maker, c.Taker)
		}
	case ScheduleKindTiered:
		if len(c.Tiers) == 0 {
			return errors.New(errors.ErrCodeInvalidConfiguration, "tiered schedule has no tiers")
		}
	}

	return nil
}

// GenerateSchema generates a JSON schema for the ScheduleConfig.
func (c *ScheduleConfig) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if strings.Contains(t.String(), "fee.ScheduleKind") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: AllScheduleKinds,
				}
			}
			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "fee-schedule-config"
	schema.Description = "Configuration schema for a custom venue fee schedule"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// ConfiguredFeeModel is a fee model built from a ScheduleConfig. It accepts
// every security type since the schedule author decides what trades on the
// venue.
type ConfiguredFeeModel struct {
	kind     ScheduleKind
	currency string
	flat     decimal.Decimal
	rate     MakerTakerRate
	minimum  decimal.Decimal
	tiers    *TierTable
	volume   *VolumeTracker
}

// NewConfiguredFeeModel builds a fee model from a validated schedule config.
func NewConfiguredFeeModel(config *ScheduleConfig) (*ConfiguredFeeModel, error) {
	if config == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "schedule config is nil")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	model := &ConfiguredFeeModel{
		kind:     config.Kind,
		currency: config.Currency,
		flat:     decimal.NewFromFloat(config.Amount),
		rate: MakerTakerRate{
			Maker: decimal.NewFromFloat(config.Maker),
			Taker: decimal.NewFromFloat(config.Taker),
		},
		minimum: decimal.NewFromFloat(config.Minimum),
	}

	if config.Kind == ScheduleKindTiered {
		tiers := make([]Tier, 0, len(config.Tiers))
		for _, tc := range config.Tiers {
			tiers = append(tiers, Tier{
				Threshold: decimal.NewFromFloat(tc.Threshold),
				Rate: MakerTakerRate{
					Maker: decimal.NewFromFloat(tc.Maker),
					Taker: decimal.NewFromFloat(tc.Taker),
				},
				Minimum: decimal.NewFromFloat(tc.Minimum),
			})
		}

		table, err := NewTierTable(tiers...)
		if err != nil {
			return nil, err
		}

		model.tiers = table
		model.volume = NewVolumeTracker()
	}

	return model, nil
}

// ComputeFee computes the fee per the configured schedule.
func (m *ConfiguredFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	currency := m.currency
	if currency == "" {
		currency = req.Security.QuoteCurrency
	}

	switch m.kind {
	case ScheduleKindFlat:
		return types.NewMoney(m.flat, currency), nil
	case ScheduleKindPercentage:
		rate := m.rate.RateFor(ClassifyLiquidity(req.Order))
		raw := rate.Mul(notionalOf(req.Security, req.Order))

		return types.NewMoney(applyMinimum(raw, m.minimum), currency), nil
	case ScheduleKindTiered:
		return m.tieredFee(req, currency)
	default:
		return types.Money{}, errors.Newf(errors.ErrCodeInvalidConfiguration, "unknown schedule kind %s", m.kind)
	}
}

func (m *ConfiguredFeeModel) tieredFee(req FeeRequest, currency string) (types.Money, error) {
	notional := notionalOf(req.Security, req.Order)
	liquidity := ClassifyLiquidity(req.Order)

	var fee types.Money

	err := m.volume.Bill(DefaultAccount, req.Order.Time, notional, func(accumulated decimal.Decimal) error {
		tier := m.tiers.TierFor(accumulated)
		raw := tier.Rate.RateFor(liquidity).Mul(notional)
		raw = applyMinimum(raw, tier.Minimum)

		fee = types.NewMoney(raw, currency)

		return nil
	})
	if err != nil {
		return types.Money{}, err
	}

	return fee, nil
}
