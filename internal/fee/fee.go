// Package fee computes the execution cost an account incurs when an order is
// filled. Every venue is a FeeModel strategy; a registry maps venue
// identifiers to strategies so the brokerage abstraction can select the right
// one when constructing a security.
package fee

import (
	"sync"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
)

// FeeRequest carries the read-only inputs of one fee computation.
type FeeRequest struct {
	Security *types.Security
	Order    *types.Order
}

// Validate checks that both members of the request are present.
func (r FeeRequest) Validate() error {
	if r.Security == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "fee request has no security")
	}

	if r.Order == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "fee request has no order")
	}

	return nil
}

// FeeModel computes the fee for a single order against a single security.
// Implementations are pure given their inputs and any accumulated volume
// state they own.
type FeeModel interface {
	ComputeFee(req FeeRequest) (types.Money, error)
}

// ComboFeeModel is implemented by strategies that rate multi-leg combo orders
// per leg with a single order-level minimum applied to the aggregate.
type ComboFeeModel interface {
	FeeModel
	// ComputeLegFee returns the fee for one combo leg without the
	// order-level minimum applied.
	ComputeLegFee(req FeeRequest) (types.Money, error)
	// OrderMinimum returns the order-level minimum fee of the schedule the
	// given leg is rated on. A zero amount means the schedule has no floor.
	OrderMinimum(req FeeRequest) (types.Money, error)
}

type Venue string

const (
	VenueZero               Venue = "zero"
	VenueInteractiveBrokers Venue = "interactive_brokers"
	VenueAlpaca             Venue = "alpaca"
	VenueTDAmeritrade       Venue = "td_ameritrade"
	VenueTradeStation       Venue = "tradestation"
	VenueExante             Venue = "exante"
	VenueWolverine          Venue = "wolverine"
	VenueZerodha            Venue = "zerodha"
	VenueSamco              Venue = "samco"
	VenueBinance            Venue = "binance"
	VenueBinanceFutures     Venue = "binance_futures"
	VenueBybit              Venue = "bybit"
	VenueCoinbase           Venue = "coinbase"
	VenueKraken             Venue = "kraken"
	VenueBitfinex           Venue = "bitfinex"
)

var AllVenues = []any{
	VenueZero,
	VenueInteractiveBrokers,
	VenueAlpaca,
	VenueTDAmeritrade,
	VenueTradeStation,
	VenueExante,
	VenueWolverine,
	VenueZerodha,
	VenueSamco,
	VenueBinance,
	VenueBinanceFutures,
	VenueBybit,
	VenueCoinbase,
	VenueKraken,
	VenueBitfinex,
}

// GetFeeModel returns a fresh strategy instance for the given venue.
// Tiered strategies own their volume state, so callers that need shared
// accumulation across call sites should construct once and reuse.
func GetFeeModel(venue Venue) (FeeModel, error) {
	switch venue {
	case VenueZero:
		return NewZeroFeeModel(), nil
	case VenueInteractiveBrokers:
		return NewInteractiveBrokersFeeModel(), nil
	case VenueAlpaca:
		return NewAlpacaFeeModel(), nil
	case VenueTDAmeritrade:
		return NewTDAmeritradeFeeModel(), nil
	case VenueTradeStation:
		return NewTradeStationFeeModel(), nil
	case VenueExante:
		return NewExanteFeeModel(), nil
	case VenueWolverine:
		return NewWolverineFeeModel(), nil
	case VenueZerodha:
		return NewZerodhaFeeModel(), nil
	case VenueSamco:
		return NewSamcoFeeModel(), nil
	case VenueBinance:
		return NewBinanceFeeModel(), nil
	case VenueBinanceFutures:
		return NewBinanceFuturesFeeModel(), nil
	case VenueBybit:
		return NewBybitFeeModel(), nil
	case VenueCoinbase:
		return NewCoinbaseFeeModel(), nil
	case VenueKraken:
		return NewKrakenFeeModel(), nil
	case VenueBitfinex:
		return NewBitfinexFeeModel(), nil
	default:
		return nil, errors.Newf(errors.ErrCodeUnknownVenue, "no fee model for venue %s", venue)
	}
}

// Registry maps venue identifiers to fee model instances. It is safe for
// concurrent use by order routing callbacks.
type Registry struct {
	mu     sync.RWMutex
	models map[Venue]FeeModel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[Venue]FeeModel),
	}
}

// NewDefaultRegistry creates a registry pre-populated with every built-in
// venue strategy.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	for _, v := range AllVenues {
		venue := v.(Venue)

		model, err := GetFeeModel(venue)
		if err != nil {
			// Every listed venue has a factory case; failing here is a
			// programmer error.
			panic(err)
		}

		if err := r.Register(venue, model); err != nil {
			panic(err)
		}
	}

	return r
}

// Register adds a fee model for a venue. Registering the same venue twice is
// a configuration error.
func (r *Registry) Register(venue Venue, model FeeModel) error {
	if model == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "fee model is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[venue]; ok {
		return errors.Newf(errors.ErrCodeVenueAlreadyExists, "fee model already registered for venue %s", venue)
	}

	r.models[venue] = model

	return nil
}

// Get returns the fee model registered for a venue.
func (r *Registry) Get(venue Venue) (FeeModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	model, ok := r.models[venue]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeUnknownVenue, "no fee model registered for venue %s", venue)
	}

	return model, nil
}

// Venues returns the identifiers currently registered.
func (r *Registry) Venues() []Venue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	venues := make([]Venue, 0, len(r.models))
	for v := range r.models {
		venues = append(venues, v)
	}

	return venues
}

// unsupportedSecurityType builds the error every strategy returns when it has
// no schedule for the security's type.
func unsupportedSecurityType(venue Venue, secType types.SecurityType) error {
	return errors.Newf(errors.ErrCodeUnsupportedSecurityType,
		"venue %s has no fee schedule for security type %s", venue, secType)
}
