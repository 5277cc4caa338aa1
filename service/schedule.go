package service

import (
	"context"
	"math"

	"dealer-finance/domain"
)

// Schedule builds the month-by-month amortization table for the request.
func (s *LoanService) Schedule(
	ctx context.Context,
	req domain.QuoteRequest,
) (domain.ScheduleResult, error) {
	q, err := s.BuildQuote(req)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	var result domain.ScheduleResult
	key := scheduleCachePrefix + cacheKey(q)
	if s.fromCache(ctx, key, &result) {
		return result, nil
	}

	result = BuildSchedule(q)
	s.toCache(ctx, key, result)
	return result, nil
}

// BuildSchedule splits every installment into interest and principal. The
// final row absorbs rounding so the balance always closes at exactly zero.
func BuildSchedule(q domain.LoanQuote) domain.ScheduleResult {
	result := domain.ScheduleResult{
		Quote: q,
		Rows:  []domain.ScheduleRow{},
	}
	if q.LoanAmount == 0 || q.MonthlyPayment == 0 {
		return result
	}

	r := q.AnnualRatePercent / (12 * 100)
	balance := q.LoanAmount

	for month := 1; month <= q.TermMonths && balance > 0; month++ {
		interest := int64(math.Round(float64(balance) * r))
		payment := q.MonthlyPayment
		principal := payment - interest

		if month == q.TermMonths || principal > balance {
			principal = balance
			payment = principal + interest
		}
		balance -= principal

		result.Rows = append(result.Rows, domain.ScheduleRow{
			Month:     month,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
		result.TotalPayment += payment
		result.TotalInterest += interest
	}

	return result
}
