package convert

import (
	"testing"

	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConvertTestSuite struct {
	suite.Suite
}

func TestConvertSuite(t *testing.T) {
	suite.Run(t, new(ConvertTestSuite))
}

func (suite *ConvertTestSuite) TestStaticConverterDirectRate() {
	converter := NewStaticConverter("USD")
	suite.NoError(converter.SetRate("EUR", "USD", 1.1))
	suite.Equal("USD", converter.AccountCurrency())

	converted, err := converter.Convert(decimal.NewFromInt(100), "EUR", "USD")
	suite.NoError(err)
	suite.Equal("110", converted.String())
}

func (suite *ConvertTestSuite) TestStaticConverterInverseRate() {
	converter := NewStaticConverter("USD")
	suite.NoError(converter.SetRate("EUR", "USD", 1.25))

	converted, err := converter.Convert(decimal.NewFromInt(100), "USD", "EUR")
	suite.NoError(err)
	suite.Equal("80", converted.String())
}

func (suite *ConvertTestSuite) TestStaticConverterSameCurrency() {
	converter := NewStaticConverter("USD")

	converted, err := converter.Convert(decimal.NewFromInt(5), "USD", "USD")
	suite.NoError(err)
	suite.Equal("5", converted.String())
}

func (suite *ConvertTestSuite) TestStaticConverterMissingRate() {
	converter := NewStaticConverter("USD")

	_, err := converter.Convert(decimal.NewFromInt(5), "GBP", "JPY")
	suite.True(errors.HasCode(err, errors.ErrCodeMissingConversionRate))
}

func (suite *ConvertTestSuite) TestSetRateRejectsNonPositive() {
	converter := NewStaticConverter("USD")

	suite.True(errors.HasCode(converter.SetRate("EUR", "USD", 0), errors.ErrCodeInvalidRate))
	suite.True(errors.HasCode(converter.SetRate("EUR", "USD", -1), errors.ErrCodeInvalidRate))
}

func (suite *ConvertTestSuite) TestNormalizeSameCurrencyPassthrough() {
	fee := types.NewMoney(decimal.NewFromInt(3), "USD")

	normalized, err := Normalize(nil, fee, "USD")
	suite.NoError(err)
	suite.Equal(fee, normalized)
}

func (suite *ConvertTestSuite) TestNormalizeZeroFeeNeedsNoRate() {
	normalized, err := Normalize(nil, types.ZeroMoney("EUR"), "USD")
	suite.NoError(err)
	suite.True(normalized.IsZero())
	suite.Equal("USD", normalized.Currency)
}

func (suite *ConvertTestSuite) TestNormalizeWithoutConverter() {
	fee := types.NewMoney(decimal.NewFromInt(3), "EUR")

	_, err := Normalize(nil, fee, "USD")
	suite.True(errors.HasCode(err, errors.ErrCodeMissingConversionRate))
}

func (suite *ConvertTestSuite) TestNormalizeConverts() {
	converter := NewStaticConverter("USD")
	suite.NoError(converter.SetRate("EUR", "USD", 1.1))

	normalized, err := Normalize(converter, types.NewMoney(decimal.NewFromInt(10), "EUR"), "USD")
	suite.NoError(err)
	suite.Equal("11", normalized.Amount.String())
	suite.Equal("USD", normalized.Currency)
}

func (suite *ConvertTestSuite) TestNormalizePropagatesMissingRate() {
	converter := NewStaticConverter("USD")

	_, err := Normalize(converter, types.NewMoney(decimal.NewFromInt(10), "GBP"), "USD")
	suite.True(errors.HasCode(err, errors.ErrCodeMissingConversionRate))
}
