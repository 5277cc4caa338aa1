package domain

type TermComparisonRequest struct {
	QuoteRequest
	MaxMonthlyPayment int64 `json:"max_monthly_payment,omitempty" validate:"gte=0"`
}

type TermOption struct {
	TermMonths     int   `json:"term_months"`
	MonthlyPayment int64 `json:"monthly_payment"`
	TotalPayment   int64 `json:"total_payment"`
	TotalInterest  int64 `json:"total_interest"`
	Affordable     bool  `json:"affordable"`
}

type TermComparisonResult struct {
	LoanAmount      int64        `json:"loan_amount"`
	RecommendedTerm int          `json:"recommended_term"`
	Options         []TermOption `json:"options"`
	Reason          string       `json:"reason"`
}
