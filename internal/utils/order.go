package utils

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-fees/internal/fee"
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
)

// MaxAffordableQuantity calculates the maximum quantity that can be bought
// with the given balance once the venue's fee is accounted for. The fee is
// probed with market orders, the worst case for maker/taker schedules.
//
// The probe must be billed in the security's quote currency. Schedules that
// accumulate volume record the probes, so size against a dedicated model
// instance when the billing model is shared.
func MaxAffordableQuantity(balance float64, security *types.Security, model fee.FeeModel, at time.Time) (float64, error) {
	unitCost := security.Price * security.Multiplier()
	if unitCost <= 0 || balance <= 0 {
		return 0, nil
	}

	// Initial rough estimate, ignoring fees
	maxQty := balance / unitCost

	// Iteratively refine by accounting for fees
	for i := 0; i < 10; i++ {
		probe := &types.Order{
			ID:       uuid.New().String(),
			Symbol:   security.Symbol,
			Quantity: maxQty,
			Type:     types.OrderTypeMarket,
			Time:     at,
		}

		probeFee, err := model.ComputeFee(fee.FeeRequest{Security: security, Order: probe})
		if err != nil {
			return 0, err
		}

		if probeFee.Currency != security.QuoteCurrency {
			return 0, errors.Newf(errors.ErrCodeCurrencyMismatch,
				"fee billed in %s but balance is %s", probeFee.Currency, security.QuoteCurrency)
		}

		feeAmount, _ := probeFee.Amount.Float64()

		totalCost := maxQty*unitCost + feeAmount
		if totalCost <= balance {
			break
		}

		// Adjust quantity down proportionally
		maxQty = maxQty * (balance / totalCost)
	}

	return maxQty, nil
}

// RoundToDecimalPrecision rounds the quantity down to the specified decimal
// precision.
func RoundToDecimalPrecision(quantity float64, decimalPrecision int) float64 {
	multiplier := math.Pow10(decimalPrecision)

	return math.Floor(quantity*multiplier) / multiplier
}

// OrderQuantityByPercentage calculates the affordable quantity for the given
// percentage of the balance.
func OrderQuantityByPercentage(balance float64, security *types.Security, model fee.FeeModel, percentage float64, at time.Time) (float64, error) {
	return MaxAffordableQuantity(balance*percentage, security, model, at)
}
