package repository

import (
	"context"

	"dealer-finance/domain"
)

type LoanRepository interface {
	Save(ctx context.Context, result domain.QuoteResult) error
	Recent(ctx context.Context, limit int) ([]domain.QuoteResult, error)
}
