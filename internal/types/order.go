package types

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
)

type OrderType string

const (
	OrderTypeMarket        OrderType = "MARKET"
	OrderTypeLimit         OrderType = "LIMIT"
	OrderTypeStop          OrderType = "STOP"
	OrderTypeStopLimit     OrderType = "STOP_LIMIT"
	OrderTypeLimitIfTouch  OrderType = "LIMIT_IF_TOUCHED"
	OrderTypeTrailingStop  OrderType = "TRAILING_STOP"
	OrderTypeMarketOnOpen  OrderType = "MARKET_ON_OPEN"
	OrderTypeMarketOnClose OrderType = "MARKET_ON_CLOSE"
	OrderTypeComboMarket   OrderType = "COMBO_MARKET"
	OrderTypeComboLimit    OrderType = "COMBO_LIMIT"
	OrderTypeComboLegLimit OrderType = "COMBO_LEG_LIMIT"
)

// IsLimit reports whether the order type carries a limit price.
func (t OrderType) IsLimit() bool {
	switch t {
	case OrderTypeLimit, OrderTypeStopLimit, OrderTypeLimitIfTouch, OrderTypeComboLimit, OrderTypeComboLegLimit:
		return true
	default:
		return false
	}
}

// IsCombo reports whether the order type is a multi-leg combo order.
func (t OrderType) IsCombo() bool {
	switch t {
	case OrderTypeComboMarket, OrderTypeComboLimit, OrderTypeComboLegLimit:
		return true
	default:
		return false
	}
}

// Quote is a bid/ask snapshot taken when the order was submitted.
type Quote struct {
	Bid float64 `yaml:"bid" json:"bid"`
	Ask float64 `yaml:"ask" json:"ask"`
}

// OrderProperties holds venue-specific order flags.
type OrderProperties struct {
	// PostOnly orders are rejected or re-priced by the venue if they would
	// cross the book, so they always rate as maker.
	PostOnly bool `yaml:"post_only" json:"post_only"`
}

// GroupOrderManager binds the sibling legs of a combo order.
type GroupOrderManager struct {
	ID string `yaml:"id" json:"id" validate:"required"`
	// Quantity is the number of combo units the parent order trades.
	Quantity float64 `yaml:"quantity" json:"quantity"`
	// OrderCount is the number of legs in the combo.
	OrderCount int `yaml:"order_count" json:"order_count"`
}

// Order is a read-only snapshot of a filled (or about-to-be-filled) order.
type Order struct {
	ID     string `yaml:"id" json:"id" validate:"required,uuid"`
	Symbol string `yaml:"symbol" json:"symbol" validate:"required"`
	// Quantity is signed: positive buys, negative sells.
	Quantity float64   `yaml:"quantity" json:"quantity" validate:"required"`
	Type     OrderType `yaml:"type" json:"type" validate:"required,oneof=MARKET LIMIT STOP STOP_LIMIT LIMIT_IF_TOUCHED TRAILING_STOP MARKET_ON_OPEN MARKET_ON_CLOSE COMBO_MARKET COMBO_LIMIT COMBO_LEG_LIMIT"`
	// Time is the submission timestamp. Time-varying schedules and rolling
	// volume windows key off this, never off the wall clock.
	Time time.Time `yaml:"time" json:"time" validate:"required"`
	// LimitPrice is set for limit-bearing order types.
	LimitPrice optional.Option[float64] `yaml:"limit_price" json:"limit_price"`
	// SubmissionQuote is the bid/ask snapshot at submission, when available.
	SubmissionQuote optional.Option[Quote] `yaml:"submission_quote" json:"submission_quote"`
	Properties      OrderProperties        `yaml:"properties" json:"properties"`
	// Group is set on combo order legs and shared between siblings.
	Group *GroupOrderManager `yaml:"group" json:"group"`
}

// Validate validates the Order struct.
func (o *Order) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOrder, "invalid order", err)
	}

	if o.Type.IsCombo() && o.Group == nil {
		return errors.New(errors.ErrCodeInvalidOrder, "combo order has no group order manager")
	}

	return nil
}

// IsBuy reports the order direction from the quantity sign.
func (o *Order) IsBuy() bool {
	return o.Quantity > 0
}

// AbsQuantity returns the unsigned order quantity.
func (o *Order) AbsQuantity() float64 {
	return math.Abs(o.Quantity)
}
