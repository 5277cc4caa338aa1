package domain

import "math"

// Down payment ratios applied to the vehicle price.
const (
	MinDownPaymentRatio     = 0.10
	MaxDownPaymentRatio     = 0.50
	DefaultDownPaymentRatio = 0.20
)

// PaymentResult is the outcome of the annuity formula. Degenerate is set when
// the inputs (or the arithmetic) could not produce a meaningful installment,
// in which case Amount is always zero.
type PaymentResult struct {
	Amount     int64
	Degenerate bool
}

// DownPaymentBounds holds the allowed down payment range for a price.
type DownPaymentBounds struct {
	Min     int64 `json:"min"`
	Max     int64 `json:"max"`
	Default int64 `json:"default"`
}

// Clamp forces amount into [Min, Max].
func (b DownPaymentBounds) Clamp(amount int64) int64 {
	if amount < b.Min {
		return b.Min
	}
	if amount > b.Max {
		return b.Max
	}
	return amount
}

// CalculatePayment applies the fixed-rate annuity formula
//
//	payment = L * r * (1+r)^n / ((1+r)^n - 1),  r = rate / 1200
//
// and reports degenerate inputs explicitly instead of leaking NaN or Inf.
func CalculatePayment(loanAmount int64, annualRatePercent float64, termMonths int) PaymentResult {
	if loanAmount <= 0 || termMonths <= 0 || !(annualRatePercent > 0) {
		return PaymentResult{Degenerate: true}
	}

	r := annualRatePercent / (12 * 100)
	factor := math.Pow(1+r, float64(termMonths))
	denominator := factor - 1
	if denominator == 0 {
		return PaymentResult{Degenerate: true}
	}

	payment := float64(loanAmount) * r * factor / denominator
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment > math.MaxInt64 {
		return PaymentResult{Degenerate: true}
	}

	return PaymentResult{Amount: int64(math.Round(payment))}
}

// ComputeMonthlyPayment returns the rounded monthly installment, or 0 for
// degenerate inputs.
func ComputeMonthlyPayment(loanAmount int64, annualRatePercent float64, termMonths int) int64 {
	return CalculatePayment(loanAmount, annualRatePercent, termMonths).Amount
}

// ComputeDownPaymentBounds derives the min/max/default down payment for a price.
// A negative price is treated as zero.
func ComputeDownPaymentBounds(principal int64) DownPaymentBounds {
	if principal < 0 {
		principal = 0
	}
	p := float64(principal)
	return DownPaymentBounds{
		Min:     int64(math.Round(p * MinDownPaymentRatio)),
		Max:     int64(math.Round(p * MaxDownPaymentRatio)),
		Default: int64(math.Round(p * DefaultDownPaymentRatio)),
	}
}

// ComputeLoanAmount is the financed balance. It never goes below zero.
func ComputeLoanAmount(principal, downPayment int64) int64 {
	if principal-downPayment < 0 {
		return 0
	}
	return principal - downPayment
}
