package utils

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-fees/internal/fee"
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type OrderUtilsTestSuite struct {
	suite.Suite
}

func TestOrderUtilsSuite(t *testing.T) {
	suite.Run(t, new(OrderUtilsTestSuite))
}

var sizingTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func cryptoSecurity(price float64) *types.Security {
	return &types.Security{
		Symbol:        "BTCUSDT",
		Type:          types.SecurityTypeCrypto,
		Price:         price,
		QuoteCurrency: "USDT",
		BaseCurrency:  "BTC",
	}
}

func (suite *OrderUtilsTestSuite) TestMaxAffordableQuantityWithoutFees() {
	qty, err := MaxAffordableQuantity(1000, cryptoSecurity(100), fee.NewZeroFeeModel(), sizingTime)
	suite.NoError(err)
	suite.InDelta(10, qty, 1e-9)
}

func (suite *OrderUtilsTestSuite) TestMaxAffordableQuantityAccountsForFees() {
	model, err := fee.NewConfiguredFeeModel(&fee.ScheduleConfig{
		Venue: "sizing",
		Kind:  fee.ScheduleKindPercentage,
		Taker: 0.003,
	})
	suite.Require().NoError(err)

	qty, err := MaxAffordableQuantity(1003, cryptoSecurity(100), model, sizingTime)
	suite.NoError(err)
	// qty * 100 * 1.003 must fit in 1003
	suite.InDelta(10, qty, 0.01)
	suite.LessOrEqual(qty*100*1.003, 1003*(1+1e-6))
}

func (suite *OrderUtilsTestSuite) TestMaxAffordableQuantityEdgeCases() {
	qty, err := MaxAffordableQuantity(0, cryptoSecurity(100), fee.NewZeroFeeModel(), sizingTime)
	suite.NoError(err)
	suite.Zero(qty)

	qty, err = MaxAffordableQuantity(1000, cryptoSecurity(0), fee.NewZeroFeeModel(), sizingTime)
	suite.NoError(err)
	suite.Zero(qty)
}

func (suite *OrderUtilsTestSuite) TestMaxAffordableQuantityRejectsForeignFeeCurrency() {
	model, err := fee.NewFlatFeeModel(1.5, "USD")
	suite.Require().NoError(err)

	security := cryptoSecurity(100)
	security.QuoteCurrency = "EUR"

	_, err = MaxAffordableQuantity(1000, security, model, sizingTime)
	suite.True(errors.HasCode(err, errors.ErrCodeCurrencyMismatch))
}

func (suite *OrderUtilsTestSuite) TestRoundToDecimalPrecision() {
	tests := []struct {
		name      string
		quantity  float64
		precision int
		expected  float64
	}{
		{"two decimals", 10.567, 2, 10.56},
		{"whole units", 10.999, 0, 10},
		{"already exact", 1.25, 2, 1.25},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.InDelta(tc.expected, RoundToDecimalPrecision(tc.quantity, tc.precision), 1e-9)
		})
	}
}

func (suite *OrderUtilsTestSuite) TestOrderQuantityByPercentage() {
	qty, err := OrderQuantityByPercentage(1000, cryptoSecurity(100), fee.NewZeroFeeModel(), 0.5, sizingTime)
	suite.NoError(err)
	suite.InDelta(5, qty, 1e-9)
}
