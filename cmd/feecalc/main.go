package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fees/internal/fee"
	"github.com/rxtech-lab/argo-fees/internal/fee/convert"
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/internal/version"
	"github.com/urfave/cli/v3"
)

// computeAction is the core logic executed by the CLI command. It builds the
// fee request from flags, runs the engine, and prints the resulting fee.
func computeAction(ctx context.Context, cmd *cli.Command) error {
	registry := fee.NewDefaultRegistry()

	// A custom schedule registers an extra venue next to the built-ins
	if schedulePath := cmd.String("schedule"); schedulePath != "" {
		data, err := os.ReadFile(schedulePath)
		if err != nil {
			return fmt.Errorf("failed to read schedule file: %w", err)
		}

		config, err := fee.LoadScheduleConfig(data)
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}

		model, err := fee.NewConfiguredFeeModel(config)
		if err != nil {
			return fmt.Errorf("failed to build schedule model: %w", err)
		}

		if err := registry.Register(fee.Venue(config.Venue), model); err != nil {
			return fmt.Errorf("failed to register schedule: %w", err)
		}
	}

	engine, err := fee.NewEngine(registry, nil, nil)
	if err != nil {
		return err
	}

	security := &types.Security{
		Symbol:             cmd.String("symbol"),
		Type:               types.SecurityType(cmd.String("security-type")),
		Price:              cmd.Float("price"),
		QuoteCurrency:      cmd.String("quote-currency"),
		BaseCurrency:       cmd.String("base-currency"),
		ContractMultiplier: cmd.Float("multiplier"),
	}
	if err := security.Validate(); err != nil {
		return err
	}

	orderTime := time.Now().UTC()
	if raw := cmd.String("time"); raw != "" {
		orderTime, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("failed to parse order time: %w", err)
		}
	}

	order := &types.Order{
		ID:       uuid.New().String(),
		Symbol:   cmd.String("symbol"),
		Quantity: cmd.Float("quantity"),
		Type:     types.OrderType(cmd.String("order-type")),
		Time:     orderTime,
		Properties: types.OrderProperties{
			PostOnly: cmd.Bool("post-only"),
		},
	}

	if limit := cmd.Float("limit-price"); limit > 0 {
		order.LimitPrice = optional.Some(limit)
	}

	if bid, ask := cmd.Float("bid"), cmd.Float("ask"); bid > 0 && ask > 0 {
		order.SubmissionQuote = optional.Some(types.Quote{Bid: bid, Ask: ask})
	}

	if err := order.Validate(); err != nil {
		return err
	}

	request := fee.FeeRequest{Security: security, Order: order}
	venue := fee.Venue(cmd.String("venue"))

	result, err := engine.ComputeFee(venue, request)
	if err != nil {
		return err
	}

	if settlement := cmd.String("settlement"); settlement != "" {
		var converter convert.Converter

		// The rate is keyed off the currency the fee was actually billed
		// in, which may be the base currency rather than the quote
		if rate := cmd.Float("rate"); rate > 0 {
			static := convert.NewStaticConverter(settlement)
			if err := static.SetRate(result.Currency, settlement, rate); err != nil {
				return err
			}

			converter = static
		}

		result, err = convert.Normalize(converter, result, settlement)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.Writer, result.String())

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "feecalc",
		Usage:   "Compute the execution fee an order would incur on a venue",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "venue",
				Aliases:  []string{"v"},
				Usage:    "Venue identifier (e.g. binance, interactive_brokers)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "symbol",
				Aliases:  []string{"s"},
				Usage:    "Instrument symbol",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "security-type",
				Usage: "Asset class (EQUITY, OPTION, FUTURE, FUTURE_OPTION, FOREX, CFD, CRYPTO, CRYPTO_FUTURE)",
				Value: string(types.SecurityTypeEquity),
			},
			&cli.FloatFlag{
				Name:     "price",
				Usage:    "Fill price",
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "quantity",
				Aliases:  []string{"q"},
				Usage:    "Signed order quantity (positive buys, negative sells)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "order-type",
				Usage: "Order type (MARKET, LIMIT, ...)",
				Value: string(types.OrderTypeMarket),
			},
			&cli.StringFlag{
				Name:  "quote-currency",
				Usage: "Currency the instrument is quoted in",
				Value: "USD",
			},
			&cli.StringFlag{
				Name:  "base-currency",
				Usage: "Base currency for pair instruments",
			},
			&cli.FloatFlag{
				Name:  "multiplier",
				Usage: "Contract multiplier (0 uses 1)",
			},
			&cli.FloatFlag{
				Name:  "limit-price",
				Usage: "Limit price for limit-bearing order types",
			},
			&cli.FloatFlag{
				Name:  "bid",
				Usage: "Bid at submission, for maker/taker classification",
			},
			&cli.FloatFlag{
				Name:  "ask",
				Usage: "Ask at submission, for maker/taker classification",
			},
			&cli.BoolFlag{
				Name:  "post-only",
				Usage: "Mark the order post-only (always rated maker)",
			},
			&cli.StringFlag{
				Name:  "time",
				Usage: "Order timestamp in RFC3339; defaults to now",
			},
			&cli.StringFlag{
				Name:  "settlement",
				Usage: "Convert the fee into this settlement currency",
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Conversion rate from the schedule currency to the settlement currency",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "Path to a custom venue schedule YAML file",
			},
		},
		Action: computeAction,
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
