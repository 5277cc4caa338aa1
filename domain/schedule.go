package domain

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Month     int   `json:"month"`
	Payment   int64 `json:"payment"`
	Interest  int64 `json:"interest"`
	Principal int64 `json:"principal"`
	Balance   int64 `json:"balance"`
}

type ScheduleResult struct {
	Quote         LoanQuote     `json:"quote"`
	TotalPayment  int64         `json:"total_payment"`
	TotalInterest int64         `json:"total_interest"`
	Rows          []ScheduleRow `json:"rows"`
}
