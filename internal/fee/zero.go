package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/types"
)

// ZeroFeeModel charges nothing for any security type.
type ZeroFeeModel struct{}

// NewZeroFeeModel creates a fee model that always returns zero.
func NewZeroFeeModel() *ZeroFeeModel {
	return &ZeroFeeModel{}
}

// ComputeFee returns a zero fee in the security's quote currency.
func (m *ZeroFeeModel) ComputeFee(req FeeRequest) (types.Money, error) {
	if err := req.Validate(); err != nil {
		return types.Money{}, err
	}

	return types.ZeroMoney(req.Security.QuoteCurrency), nil
}
