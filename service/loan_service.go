package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"dealer-finance/domain"
	"dealer-finance/logger"
	"dealer-finance/metrics"
	"dealer-finance/repository"
)

type LoanService struct {
	repo  repository.LoanRepository
	cache repository.CacheRepository
	money *MoneyFormatter
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	money *MoneyFormatter,
) *LoanService {
	return &LoanService{repo: repo, cache: cache, money: money}
}

// BuildQuote validates the price and applies the caller's adjustments on top
// of the defaults. Down payment and rate are clamped; an unknown term is an error.
func (s *LoanService) BuildQuote(req domain.QuoteRequest) (domain.LoanQuote, error) {
	if req.Price <= 0 {
		return domain.LoanQuote{}, fmt.Errorf("%w: must be positive", domain.ErrInvalidPrice)
	}
	if req.Price > MaxVehiclePrice {
		return domain.LoanQuote{}, fmt.Errorf("%w: exceeds maximum of %d", domain.ErrInvalidPrice, int64(MaxVehiclePrice))
	}

	q := domain.NewLoanQuote(req.Price)
	if req.DownPayment != nil {
		q = q.WithDownPayment(*req.DownPayment)
	}
	if req.AnnualRatePercent != nil {
		q = q.WithRate(*req.AnnualRatePercent)
	}
	if req.TermMonths != nil {
		var err error
		if q, err = q.WithTerm(*req.TermMonths); err != nil {
			return domain.LoanQuote{}, err
		}
	}
	return q, nil
}

// Bounds returns the allowed down payment range for a price.
func (s *LoanService) Bounds(price int64) (domain.DownPaymentBounds, error) {
	if price <= 0 || price > MaxVehiclePrice {
		return domain.DownPaymentBounds{}, domain.ErrInvalidPrice
	}
	return domain.ComputeDownPaymentBounds(price), nil
}

// Quote computes the financing quote for the request.
func (s *LoanService) Quote(
	ctx context.Context,
	req domain.QuoteRequest,
) (domain.QuoteResult, error) {
	q, err := s.BuildQuote(req)
	if err != nil {
		return domain.QuoteResult{}, err
	}
	log := logger.FromContext(ctx)

	var result domain.QuoteResult
	key := quoteCachePrefix + cacheKey(q)
	if !s.fromCache(ctx, key, &result) {
		result = domain.QuoteResult{
			Quote:         q,
			Bounds:        q.Bounds(),
			TotalPayment:  q.TotalPayment(),
			TotalInterest: q.TotalInterest(),
			Formatted:     s.formatQuote(q),
		}
		s.toCache(ctx, key, result)
		metrics.QuotesComputed.WithLabelValues(strconv.Itoa(q.TermMonths)).Inc()
	}
	result.ID = uuid.NewString()

	// History is best-effort
	if err := s.repo.Save(ctx, result); err != nil {
		log.Warn("failed to save quote", "error", err)
	}

	log.Debug("quote computed",
		"price", q.Principal,
		"loan_amount", q.LoanAmount,
		"term", q.TermMonths,
		"rate", q.AnnualRatePercent,
		"monthly_payment", q.MonthlyPayment)

	return result, nil
}

// Recent returns the latest saved quotes, newest first.
func (s *LoanService) Recent(ctx context.Context, limit int) ([]domain.QuoteResult, error) {
	if limit <= 0 {
		limit = DefaultRecentQuotes
	}
	if limit > MaxRecentQuotes {
		limit = MaxRecentQuotes
	}
	return s.repo.Recent(ctx, limit)
}

// Money exposes the formatter used for display amounts.
func (s *LoanService) Money() *MoneyFormatter {
	return s.money
}

func (s *LoanService) formatQuote(q domain.LoanQuote) map[string]string {
	return map[string]string{
		"principal":       s.money.Format(q.Principal),
		"down_payment":    s.money.Format(q.DownPayment),
		"loan_amount":     s.money.Format(q.LoanAmount),
		"monthly_payment": s.money.Format(q.MonthlyPayment),
		"total_payment":   s.money.Format(q.TotalPayment()),
		"total_interest":  s.money.Format(q.TotalInterest()),
	}
}

func cacheKey(q domain.LoanQuote) string {
	return fmt.Sprintf("%d:%d:%d:%.1f", q.Principal, q.DownPayment, q.TermMonths, q.AnnualRatePercent)
}

func (s *LoanService) fromCache(ctx context.Context, key string, dst any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if ok && json.Unmarshal([]byte(raw), dst) == nil {
		metrics.QuoteCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
		return true
	}
	metrics.QuoteCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
	return false
}

// toCache never fails the request; a broken cache only costs a recomputation.
func (s *LoanService) toCache(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw)); err != nil {
		logger.FromContext(ctx).Warn("failed to cache quote", "key", key, "error", err)
	}
}
