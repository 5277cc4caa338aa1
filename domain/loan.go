package domain

import (
	"fmt"
	"math"
	"slices"
)

// Allowed repayment terms, in months.
var AllowedTerms = []int{36, 48, 60, 72, 84}

const (
	DefaultTermMonths = 60

	MinAnnualRate     = 7.0
	MaxAnnualRate     = 15.0
	DefaultAnnualRate = 8.5
	RateStep          = 0.1
)

// IsAllowedTerm reports whether term is one of AllowedTerms.
func IsAllowedTerm(term int) bool {
	return slices.Contains(AllowedTerms, term)
}

// LoanQuote is an immutable snapshot of the calculator inputs for one vehicle
// price. Every With* method returns a new quote with the derived fields
// recomputed; the receiver is left untouched.
type LoanQuote struct {
	Principal         int64   `json:"principal"`
	DownPayment       int64   `json:"down_payment"`
	LoanAmount        int64   `json:"loan_amount"`
	TermMonths        int     `json:"term_months"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	MonthlyPayment    int64   `json:"monthly_payment"`
}

// NewLoanQuote builds the default quote for a price.
func NewLoanQuote(principal int64) LoanQuote {
	if principal < 0 {
		principal = 0
	}
	q := LoanQuote{
		Principal:         principal,
		DownPayment:       ComputeDownPaymentBounds(principal).Default,
		TermMonths:        DefaultTermMonths,
		AnnualRatePercent: DefaultAnnualRate,
	}
	return q.recompute()
}

// Bounds returns the down payment range for the quote's principal.
func (q LoanQuote) Bounds() DownPaymentBounds {
	return ComputeDownPaymentBounds(q.Principal)
}

// WithDownPayment clamps amount into the allowed range.
func (q LoanQuote) WithDownPayment(amount int64) LoanQuote {
	q.DownPayment = q.Bounds().Clamp(amount)
	return q.recompute()
}

// WithTerm fails with ErrInvalidTerm unless term is one of AllowedTerms.
func (q LoanQuote) WithTerm(term int) (LoanQuote, error) {
	if !IsAllowedTerm(term) {
		return q, fmt.Errorf("%w: %d", ErrInvalidTerm, term)
	}
	q.TermMonths = term
	return q.recompute(), nil
}

// WithRate clamps rate into [MinAnnualRate, MaxAnnualRate] at RateStep resolution.
func (q LoanQuote) WithRate(rate float64) LoanQuote {
	q.AnnualRatePercent = ClampRate(rate)
	return q.recompute()
}

// Reset discards any adjustments and returns the defaults for the same price.
func (q LoanQuote) Reset() LoanQuote {
	return NewLoanQuote(q.Principal)
}

// TotalPayment is the sum of all installments.
func (q LoanQuote) TotalPayment() int64 {
	return q.MonthlyPayment * int64(q.TermMonths)
}

// TotalInterest is what the buyer pays on top of the financed balance.
func (q LoanQuote) TotalInterest() int64 {
	interest := q.TotalPayment() - q.LoanAmount
	if interest < 0 {
		return 0
	}
	return interest
}

func (q LoanQuote) recompute() LoanQuote {
	q.LoanAmount = ComputeLoanAmount(q.Principal, q.DownPayment)
	q.MonthlyPayment = ComputeMonthlyPayment(q.LoanAmount, q.AnnualRatePercent, q.TermMonths)
	return q
}

// ClampRate forces an annual rate into the offered range, snapped to RateStep.
// NaN falls back to the default rate.
func ClampRate(rate float64) float64 {
	if math.IsNaN(rate) {
		return DefaultAnnualRate
	}
	rate = math.Round(rate*10) / 10
	return math.Min(math.Max(rate, MinAnnualRate), MaxAnnualRate)
}

// QuoteRequest carries caller adjustments. Nil fields fall back to defaults.
type QuoteRequest struct {
	Price             int64    `json:"price" validate:"required,gt=0"`
	DownPayment       *int64   `json:"down_payment,omitempty" validate:"omitempty,gte=0"`
	TermMonths        *int     `json:"term_months,omitempty" validate:"omitempty,oneof=36 48 60 72 84"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty" validate:"omitempty,gte=7,lte=15"`
}

// QuoteResult is a computed quote as returned to callers.
type QuoteResult struct {
	ID            string            `json:"id,omitempty"`
	Quote         LoanQuote         `json:"quote"`
	Bounds        DownPaymentBounds `json:"down_payment_bounds"`
	TotalPayment  int64             `json:"total_payment"`
	TotalInterest int64             `json:"total_interest"`
	Formatted     map[string]string `json:"formatted,omitempty"`
}

// FinanceOptions describes the inputs the calculator accepts.
type FinanceOptions struct {
	Terms              []int   `json:"terms"`
	DefaultTermMonths  int     `json:"default_term_months"`
	MinAnnualRate      float64 `json:"min_annual_rate"`
	MaxAnnualRate      float64 `json:"max_annual_rate"`
	DefaultAnnualRate  float64 `json:"default_annual_rate"`
	RateStep           float64 `json:"rate_step"`
	MinDownPaymentPct  float64 `json:"min_down_payment_pct"`
	MaxDownPaymentPct  float64 `json:"max_down_payment_pct"`
	DefaultDownPayment float64 `json:"default_down_payment_pct"`
}

// DefaultFinanceOptions returns the fixed option set offered to buyers.
func DefaultFinanceOptions() FinanceOptions {
	return FinanceOptions{
		Terms:              slices.Clone(AllowedTerms),
		DefaultTermMonths:  DefaultTermMonths,
		MinAnnualRate:      MinAnnualRate,
		MaxAnnualRate:      MaxAnnualRate,
		DefaultAnnualRate:  DefaultAnnualRate,
		RateStep:           RateStep,
		MinDownPaymentPct:  MinDownPaymentRatio * 100,
		MaxDownPaymentPct:  MaxDownPaymentRatio * 100,
		DefaultDownPayment: DefaultDownPaymentRatio * 100,
	}
}
