package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// Liquidity classifies an order as adding liquidity (maker) or removing it
// (taker) for fee purposes.
type Liquidity string

const (
	LiquidityMaker Liquidity = "MAKER"
	LiquidityTaker Liquidity = "TAKER"
)

// ClassifyLiquidity determines the liquidity side of an order.
//
// Market-style orders always take. Limit-bearing orders take when they would
// cross the submission quote (buy limit at or above the ask, sell limit at or
// below the bid) and make otherwise. Post-only orders always make since the
// venue rejects or re-prices a crossing post-only order. A limit order with
// no submission quote is assumed to rest on the book.
func ClassifyLiquidity(order *types.Order) Liquidity {
	if order.Properties.PostOnly {
		return LiquidityMaker
	}

	if !order.Type.IsLimit() {
		return LiquidityTaker
	}

	if order.LimitPrice.IsNone() || order.SubmissionQuote.IsNone() {
		return LiquidityMaker
	}

	limit := order.LimitPrice.Unwrap()
	quote := order.SubmissionQuote.Unwrap()

	if order.IsBuy() {
		if quote.Ask > 0 && limit >= quote.Ask {
			return LiquidityTaker
		}
	} else {
		if quote.Bid > 0 && limit <= quote.Bid {
			return LiquidityTaker
		}
	}

	return LiquidityMaker
}
