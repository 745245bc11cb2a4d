package pricing

import (
	"math"

	"github.com/kanata-kan/explorekg-backend-sub001/config"
	"github.com/kanata-kan/explorekg-backend-sub001/models"

	"go.uber.org/zap"
)

// Engine defaults, used whenever the configured value is absent or out of
// range. The tolerance is shared by the engine and its validator so both
// sides of a comparison round the same way.
const (
	DefaultTaxRate     = 0.10
	DefaultDepositRate = 0.20
	DefaultTolerance   = 0.01
)

// Engine computes and cross-checks pricing breakdowns. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	TaxRate     float64
	DepositRate float64
	Tolerance   float64
	Strict      bool
	Logger      *zap.Logger
}

// NewEngine builds an engine from the loaded application config, falling
// back to the defaults for any rate outside its legal range.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		TaxRate:     resolveRate(config.AppConfig.TaxRate, DefaultTaxRate, logger, "TAX_RATE"),
		DepositRate: resolveRate(config.AppConfig.DepositRate, DefaultDepositRate, logger, "DEPOSIT_RATE"),
		Tolerance:   resolveTolerance(config.AppConfig.PricingTolerance),
		Strict:      config.AppConfig.PricingStrict,
		Logger:      logger,
	}
}

func resolveRate(configured, fallback float64, logger *zap.Logger, name string) float64 {
	if configured < 0 || configured > 1 {
		if logger != nil {
			logger.Warn("configured rate out of range, using default",
				zap.String("key", name),
				zap.Float64("configured", configured),
				zap.Float64("default", fallback))
		}
		return fallback
	}
	return configured
}

func resolveTolerance(configured float64) float64 {
	if configured <= 0 {
		return DefaultTolerance
	}
	return configured
}

// Round normalizes a monetary amount to cents, half away from zero.
func (e *Engine) Round(v float64) float64 {
	return math.Round(v*100) / 100
}

func (e *Engine) tolerance() float64 {
	if e.Tolerance <= 0 {
		return DefaultTolerance
	}
	return e.Tolerance
}

func (e *Engine) withinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= e.tolerance()
}

// ComputeBreakdown runs the discount, tax and deposit rules over a subtotal
// and returns a breakdown that satisfies the engine's own validator. Tax is
// charged on the discounted amount.
func (e *Engine) ComputeBreakdown(subtotal, discountPercent float64, includeDeposit bool) (models.PricingBreakdown, error) {
	discountAmount, err := e.CalculateDiscountAmount(subtotal, discountPercent)
	if err != nil {
		return models.PricingBreakdown{}, err
	}

	taxable := subtotal - discountAmount
	tax, err := e.CalculateTax(taxable)
	if err != nil {
		return models.PricingBreakdown{}, err
	}

	breakdown := models.PricingBreakdown{
		Subtotal:        e.Round(subtotal),
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		Tax:             tax,
		FinalTotal:      e.Round(subtotal - discountAmount + tax),
	}

	if includeDeposit {
		deposit, err := e.CalculateDeposit(breakdown.FinalTotal)
		if err != nil {
			return models.PricingBreakdown{}, err
		}
		breakdown.Deposit = &deposit
	}

	return breakdown, nil
}
