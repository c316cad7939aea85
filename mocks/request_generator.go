package mocks

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// RequestGenerator generates realistic order/security pairs for fee model
// tests and benchmarks.
type RequestGenerator struct {
	rng *rand.Rand
}

// NewRequestGenerator creates a new RequestGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewRequestGenerator(seed int64) *RequestGenerator {
	return &RequestGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how order/security pairs are generated.
type GeneratorConfig struct {
	// Symbol is the trading symbol (e.g., "AAPL", "BTCUSDT")
	Symbol string
	// SecurityType is the asset class of the generated security
	SecurityType types.SecurityType
	// QuoteCurrency prices the instrument
	QuoteCurrency string
	// BaseCurrency is set for pair instruments
	BaseCurrency string
	// StartTime is the timestamp of the first order
	StartTime time.Time
	// Interval is the duration between orders
	Interval time.Duration
	// Count is the number of pairs to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement per step (0.01 = 1%)
	Volatility float64
	// QuantityBase is the average unsigned order quantity
	QuantityBase float64
	// LimitRatio is the fraction of orders generated as limit orders
	LimitRatio float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Symbol:        "BTCUSDT",
		SecurityType:  types.SecurityTypeCrypto,
		QuoteCurrency: "USDT",
		BaseCurrency:  "BTC",
		StartTime:     time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Interval:      time.Minute,
		Count:         1000,
		InitialPrice:  40000.0,
		Volatility:    0.002,
		QuantityBase:  1.0,
		LimitRatio:    0.5,
	}
}

// Generate produces Count security/order pairs following a random walk.
// Orders alternate randomly between sides; limit orders carry a submission
// quote around the prevailing price.
func (g *RequestGenerator) Generate(config GeneratorConfig) ([]types.Security, []types.Order) {
	securities := make([]types.Security, 0, config.Count)
	orders := make([]types.Order, 0, config.Count)

	price := config.InitialPrice
	timestamp := config.StartTime

	for i := 0; i < config.Count; i++ {
		// Random walk the price
		price *= 1 + (g.rng.Float64()*2-1)*config.Volatility
		if price <= 0 {
			price = config.InitialPrice
		}

		security := types.Security{
			Symbol:        config.Symbol,
			Type:          config.SecurityType,
			Price:         price,
			QuoteCurrency: config.QuoteCurrency,
			BaseCurrency:  config.BaseCurrency,
		}

		quantity := config.QuantityBase * (0.5 + g.rng.Float64())
		if g.rng.Intn(2) == 0 {
			quantity = -quantity
		}

		order := types.Order{
			ID:       uuid.New().String(),
			Symbol:   config.Symbol,
			Quantity: quantity,
			Type:     types.OrderTypeMarket,
			Time:     timestamp,
		}

		if g.rng.Float64() < config.LimitRatio {
			spread := price * 0.0002
			quote := types.Quote{
				Bid: price - spread/2,
				Ask: price + spread/2,
			}

			// Half the limit orders rest, half cross
			var limit float64
			if order.Quantity > 0 {
				limit = quote.Bid - math.Abs(g.rng.NormFloat64())*spread
				if g.rng.Intn(2) == 0 {
					limit = quote.Ask
				}
			} else {
				limit = quote.Ask + math.Abs(g.rng.NormFloat64())*spread
				if g.rng.Intn(2) == 0 {
					limit = quote.Bid
				}
			}

			order.Type = types.OrderTypeLimit
			order.LimitPrice = optional.Some(limit)
			order.SubmissionQuote = optional.Some(quote)
		}

		securities = append(securities, security)
		orders = append(orders, order)

		timestamp = timestamp.Add(config.Interval)
	}

	return securities, orders
}
