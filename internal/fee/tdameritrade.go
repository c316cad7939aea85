package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// TDAmeritradeFeeModel charges nothing on equities and a fixed USD amount per
// option contract.
type TDAmeritradeFeeModel struct {
	optionPerContract decimal.Decimal
}

// NewTDAmeritradeFeeModel creates the TD Ameritrade fee model.
func NewTDAmeritradeFeeModel() *TDAmeritradeFeeModel {
	return &TDAmeritradeFeeModel{
		optionPerContract: decimal.RequireFromString("0.65"),
	}
}

// ComputeFee computes the TD Ameritrade commission for a single order.
func (m *TDAmeritradeFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	switch req.Security.Type {
	case types.SecurityTypeEquity:
		return types.ZeroMoney("USD"), nil
	case types.SecurityTypeOption:
		contracts := decimal.NewFromFloat(req.Order.AbsQuantity())

		return types.NewMoney(m.optionPerContract.Mul(contracts), "USD"), nil
	default:
		return types.Money{}, unsupportedSecurityType(VenueTDAmeritrade, req.Security.Type)
	}
}
