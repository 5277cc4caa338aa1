package service

import (
	"context"
	"fmt"

	"dealer-finance/domain"
	"dealer-finance/logger"
)

type TermComparisonService struct {
	loanService *LoanService
}

func NewTermComparisonService(loanService *LoanService) *TermComparisonService {
	return &TermComparisonService{loanService: loanService}
}

// CompareTerms prices the same loan over every offered term and recommends
// the shortest one that fits the monthly budget. Shorter terms always carry
// less total interest, so the shortest affordable term is the cheapest.
func (s *TermComparisonService) CompareTerms(
	ctx context.Context,
	input domain.TermComparisonRequest,
) (domain.TermComparisonResult, error) {
	if input.MaxMonthlyPayment < 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: got %d", domain.ErrInvalidBudget, input.MaxMonthlyPayment)
	}

	base, err := s.loanService.BuildQuote(input.QuoteRequest)
	if err != nil {
		return domain.TermComparisonResult{}, err
	}

	result := domain.TermComparisonResult{
		LoanAmount: base.LoanAmount,
		Options:    make([]domain.TermOption, 0, len(domain.AllowedTerms)),
	}

	for _, term := range domain.AllowedTerms {
		q, err := base.WithTerm(term)
		if err != nil {
			logger.FromContext(ctx).Warn("skipping term", "term", term, "error", err)
			continue
		}

		affordable := input.MaxMonthlyPayment == 0 || q.MonthlyPayment <= input.MaxMonthlyPayment
		result.Options = append(result.Options, domain.TermOption{
			TermMonths:     term,
			MonthlyPayment: q.MonthlyPayment,
			TotalPayment:   q.TotalPayment(),
			TotalInterest:  q.TotalInterest(),
			Affordable:     affordable,
		})

		if affordable && result.RecommendedTerm == 0 {
			result.RecommendedTerm = term
		}
	}

	if result.RecommendedTerm == 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: lowest installment is %s",
			domain.ErrNoAffordableTerm,
			s.loanService.Money().Format(result.Options[len(result.Options)-1].MonthlyPayment))
	}

	result.Reason = s.reason(input, result)
	return result, nil
}

func (s *TermComparisonService) reason(
	input domain.TermComparisonRequest,
	result domain.TermComparisonResult,
) string {
	if result.LoanAmount == 0 {
		return "Nothing to finance: the down payment covers the full price"
	}
	if input.MaxMonthlyPayment == 0 {
		return fmt.Sprintf("%d months has the lowest total interest", result.RecommendedTerm)
	}
	return fmt.Sprintf("%d months is the shortest term within a monthly budget of %s",
		result.RecommendedTerm, s.loanService.Money().Format(input.MaxMonthlyPayment))
}
