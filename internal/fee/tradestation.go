package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// TradeStationFeeModel charges nothing on equities, a fixed USD amount per
// option contract, and a fixed USD amount per futures contract.
type TradeStationFeeModel struct {
	optionPerContract decimal.Decimal
	futurePerContract decimal.Decimal
}

// NewTradeStationFeeModel creates the TradeStation fee model.
func NewTradeStationFeeModel() *TradeStationFeeModel {
	return &TradeStationFeeModel{
		optionPerContract: decimal.RequireFromString("0.60"),
		futurePerContract: decimal.RequireFromString("1.50"),
	}
}

// ComputeFee computes the TradeStation commission for a single order.
func (m *TradeStationFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	contracts := decimal.NewFromFloat(req.Order.AbsQuantity())

	switch req.Security.Type {
	case types.SecurityTypeEquity:
		return types.ZeroMoney("USD"), nil
	case types.SecurityTypeOption:
		return types.NewMoney(m.optionPerContract.Mul(contracts), "USD"), nil
	case types.SecurityTypeFuture, types.SecurityTypeFutureOption:
		return types.NewMoney(m.futurePerContract.Mul(contracts), "USD"), nil
	default:
		return types.Money{}, unsupportedSecurityType(VenueTradeStation, req.Security.Type)
	}
}
