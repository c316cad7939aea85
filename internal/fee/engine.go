package fee

import (
	"github.com/rxtech-lab/argo-fees/internal/fee/convert"
	"github.com/rxtech-lab/argo-fees/internal/logger"
	"github.com/rxtech-lab/argo-fees/internal/types"
	"github.com/rxtech-lab/argo-fees/pkg/errors"
	"go.uber.org/zap"
)

// Engine is the dispatch layer callers book fees through. It resolves the
// venue strategy, runs it, and optionally normalizes the result into a
// settlement currency.
type Engine struct {
	registry  *Registry
	converter convert.Converter
	logger    *logger.Logger
}

// NewEngine creates a fee engine. The converter may be nil when callers never
// request normalization into another currency.
func NewEngine(registry *Registry, converter convert.Converter, log *logger.Logger) (*Engine, error) {
	if registry == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "registry is nil")
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Engine{
		registry:  registry,
		converter: converter,
		logger:    log,
	}, nil
}

// ComputeFee computes the fee for one order in the currency the venue's
// schedule declares.
func (e *Engine) ComputeFee(venue Venue, req FeeRequest) (types.Money, error) {
	model, err := e.registry.Get(venue)
	if err != nil {
		return types.Money{}, err
	}

	fee, err := model.ComputeFee(req)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeUnsupportedSecurityType) {
			e.logger.Warn("security type not supported by venue fee schedule",
				zap.String("venue", string(venue)),
				zap.String("symbol", req.Security.Symbol),
				zap.String("security_type", string(req.Security.Type)))
		}

		return types.Money{}, err
	}

	return fee, nil
}

// ComputeFeeIn computes the fee and converts it into the requested settlement
// currency. Zero fees convert without a configured rate.
func (e *Engine) ComputeFeeIn(venue Venue, req FeeRequest, settlementCurrency string) (types.Money, error) {
	fee, err := e.ComputeFee(venue, req)
	if err != nil {
		return types.Money{}, err
	}

	return convert.Normalize(e.converter, fee, settlementCurrency)
}

// ComputeComboFee rates a multi-leg combo order. Each leg is rated
// independently against its own security, the per-leg fees are normalized to
// the settlement currency and summed, and the schedule's order-level minimum
// is applied once to the aggregate rather than once per leg.
func (e *Engine) ComputeComboFee(venue Venue, legs []FeeRequest, settlementCurrency string) (types.Money, error) {
	if len(legs) == 0 {
		return types.Money{}, errors.New(errors.ErrCodeInvalidParameter, "combo order has no legs")
	}

	if settlementCurrency == "" {
		return types.Money{}, errors.New(errors.ErrCodeInvalidParameter, "combo fee needs a settlement currency")
	}

	if err := validateComboGroup(legs); err != nil {
		return types.Money{}, err
	}

	model, err := e.registry.Get(venue)
	if err != nil {
		return types.Money{}, err
	}

	total := types.ZeroMoney(settlementCurrency)

	comboModel, supportsCombo := model.(ComboFeeModel)
	if !supportsCombo {
		// Venues without an order-level minimum sum plain per-leg fees.
		for _, leg := range legs {
			legFee, err := model.ComputeFee(leg)
			if err != nil {
				return types.Money{}, err
			}

			normalized, err := convert.Normalize(e.converter, legFee, settlementCurrency)
			if err != nil {
				return types.Money{}, err
			}

			total, err = total.Add(normalized)
			if err != nil {
				return types.Money{}, err
			}
		}

		return total, nil
	}

	minimum := types.ZeroMoney(settlementCurrency)

	for _, leg := range legs {
		legFee, err := comboModel.ComputeLegFee(leg)
		if err != nil {
			return types.Money{}, err
		}

		normalized, err := convert.Normalize(e.converter, legFee, settlementCurrency)
		if err != nil {
			return types.Money{}, err
		}

		total, err = total.Add(normalized)
		if err != nil {
			return types.Money{}, err
		}

		legMinimum, err := comboModel.OrderMinimum(leg)
		if err != nil {
			return types.Money{}, err
		}

		normalizedMinimum, err := convert.Normalize(e.converter, legMinimum, settlementCurrency)
		if err != nil {
			return types.Money{}, err
		}

		if normalizedMinimum.Amount.GreaterThan(minimum.Amount) {
			minimum = normalizedMinimum
		}
	}

	total.Amount = applyMinimum(total.Amount, minimum.Amount)

	return total, nil
}

// validateComboGroup checks that every leg shares one group order manager.
func validateComboGroup(legs []FeeRequest) error {
	var groupID string

	for _, leg := range legs {
		if leg.Order == nil || leg.Order.Group == nil {
			continue
		}

		if groupID == "" {
			groupID = leg.Order.Group.ID

			continue
		}

		if leg.Order.Group.ID != groupID {
			return errors.Newf(errors.ErrCodeInvalidOrder,
				"combo legs belong to different groups: %s and %s", groupID, leg.Order.Group.ID)
		}
	}

	return nil
}
