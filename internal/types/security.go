package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
)

type SecurityType string

const (
	SecurityTypeEquity       SecurityType = "EQUITY"
	SecurityTypeOption       SecurityType = "OPTION"
	SecurityTypeFuture       SecurityType = "FUTURE"
	SecurityTypeFutureOption SecurityType = "FUTURE_OPTION"
	SecurityTypeForex        SecurityType = "FOREX"
	SecurityTypeCfd          SecurityType = "CFD"
	SecurityTypeCrypto       SecurityType = "CRYPTO"
	SecurityTypeCryptoFuture SecurityType = "CRYPTO_FUTURE"
)

var AllSecurityTypes = []any{
	SecurityTypeEquity,
	SecurityTypeOption,
	SecurityTypeFuture,
	SecurityTypeFutureOption,
	SecurityTypeForex,
	SecurityTypeCfd,
	SecurityTypeCrypto,
	SecurityTypeCryptoFuture,
}

// Security is a read-only snapshot of the instrument an order trades.
// It is provided by the order-management subsystem and never mutated here.
type Security struct {
	Symbol string       `yaml:"symbol" json:"symbol" validate:"required"`
	Type   SecurityType `yaml:"type" json:"type" validate:"required,oneof=EQUITY OPTION FUTURE FUTURE_OPTION FOREX CFD CRYPTO CRYPTO_FUTURE"`
	// Price is the prevailing price used for notional calculations.
	Price float64 `yaml:"price" json:"price" validate:"required,gt=0"`
	// QuoteCurrency is the currency the instrument is quoted in.
	QuoteCurrency string `yaml:"quote_currency" json:"quote_currency" validate:"required"`
	// BaseCurrency is set for currency-pair instruments (forex, crypto).
	BaseCurrency string `yaml:"base_currency" json:"base_currency"`
	// ContractMultiplier scales one unit of quantity to notional value.
	// Zero is treated as 1.
	ContractMultiplier float64 `yaml:"contract_multiplier" json:"contract_multiplier" validate:"gte=0"`
	// MinimumPriceVariation is the instrument tick size.
	MinimumPriceVariation float64 `yaml:"minimum_price_variation" json:"minimum_price_variation" validate:"gte=0"`
}

// Validate validates the Security struct.
func (s *Security) Validate() error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSecurity, "invalid security", err)
	}

	return nil
}

// Multiplier returns the contract multiplier, defaulting to 1 when unset.
func (s *Security) Multiplier() float64 {
	if s.ContractMultiplier <= 0 {
		return 1
	}

	return s.ContractMultiplier
}
