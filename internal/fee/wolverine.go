package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/shopspring/decimal"
)

// WolverineFeeModel bills US equities per share in USD. No other asset class
// is routed through Wolverine.
type WolverineFeeModel struct {
	perShare decimal.Decimal
}

// NewWolverineFeeModel creates the Wolverine execution services fee model.
func NewWolverineFeeModel() *WolverineFeeModel {
	return &WolverineFeeModel{
		perShare: decimal.RequireFromString("0.005"),
	}
}

// ComputeFee computes the Wolverine commission for a single order.
func (m *WolverineFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	if req.Security.Type != types.SecurityTypeEquity {
		return types.Money{}, unsupportedSecurityType(VenueWolverine, req.Security.Type)
	}

	shares := decimal.NewFromFloat(req.Order.AbsQuantity())

	return types.NewMoney(m.perShare.Mul(shares), "USD"), nil
}
