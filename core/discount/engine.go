package discount

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"webdev-cost/core/types"
	"webdev-cost/internal/errors"
	"webdev-cost/internal/logging"
)

// Messages shown in the discount breakdown
const (
	MessageNoDiscount    = "No discount selected or applied."
	MessageInvalidPrice  = "Please enter a positive estimated price."
	MessageNotCalculated = "Enter a base price and click calculate."
)

// Line is one row of the itemized discount breakdown
type Line struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Text   string          `json:"text,omitempty"`
}

// Result is a fully derived discount calculation
type Result struct {
	BasePrice      decimal.Decimal `json:"base_price"`
	Applied        Kind            `json:"applied"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	Lines          []Line          `json:"lines"`

	// Message explains an empty result
	Message string `json:"message,omitempty"`

	// Err is set when the base price could not be discounted
	Err error `json:"-"`
}

// Headline is the on-screen final price line
func (r Result) Headline() string {
	return "Final Price: " + types.FormatAmount(r.FinalPrice)
}

// Engine applies discounts. It is stateless.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a discount engine
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logging.OrNop(logger)}
}

// Apply takes the selected discount off basePrice. A non-positive base
// price yields a zero Result carrying MessageInvalidPrice and an
// InvalidPrice error instead of failing.
func (e *Engine) Apply(basePrice decimal.Decimal, selection Kind) Result {
	if !basePrice.IsPositive() {
		err := errors.InvalidPrice("base price must be positive").WithContext("base_price", basePrice.String())
		e.logger.Warn("discount not applied", zap.Error(err))
		return Result{
			BasePrice:      decimal.Zero,
			Applied:        None,
			DiscountAmount: decimal.Zero,
			FinalPrice:     decimal.Zero,
			Lines:          []Line{},
			Message:        MessageInvalidPrice,
			Err:            err,
		}
	}

	lines := []Line{{Label: "Base Estimated Price", Amount: basePrice}}

	applied := None
	amount := decimal.Zero
	if rate := selection.Rate(); rate.IsPositive() {
		applied = selection
		amount = basePrice.Mul(rate)
		lines = append(lines, Line{Label: "- " + selection.Label(), Amount: amount.Neg()})
	} else {
		lines = append(lines, Line{Text: MessageNoDiscount})
	}

	final := nonNegative(basePrice.Sub(amount))
	lines = append(lines, Line{Label: "Final Price", Amount: final})

	e.logger.Debug("discount applied",
		zap.String("base_price", basePrice.String()),
		zap.String("discount", applied.String()),
		zap.String("final_price", final.String()),
	)

	return Result{
		BasePrice:      basePrice,
		Applied:        applied,
		DiscountAmount: amount,
		FinalPrice:     final,
		Lines:          lines,
	}
}

// ApplyFlags applies the highest-priority checked discount
func (e *Engine) ApplyFlags(basePrice decimal.Decimal, flags Flags) Result {
	return e.Apply(basePrice, flags.Selection())
}

var defaultEngine = NewEngine(nil)

// ApplyDiscount applies selection to basePrice with the default engine
func ApplyDiscount(basePrice decimal.Decimal, selection Kind) Result {
	return defaultEngine.Apply(basePrice, selection)
}

func nonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
