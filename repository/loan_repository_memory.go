package repository

import (
	"context"
	"sync"

	"dealer-finance/domain"
)

// LoanRepositoryMemory keeps the most recent quotes in memory, oldest first.
type LoanRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.QuoteResult
}

// NewLoanRepositoryMemory creates a repository holding at most capacity
// quotes. A non-positive capacity means unbounded.
func NewLoanRepositoryMemory(capacity int) *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		capacity: capacity,
		data:     []domain.QuoteResult{},
	}
}

// Save stores the quote, dropping the oldest entries beyond capacity.
func (r *LoanRepositoryMemory) Save(_ context.Context, result domain.QuoteResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, result)
	if r.capacity > 0 && len(r.data) > r.capacity {
		r.data = append(r.data[:0:0], r.data[len(r.data)-r.capacity:]...)
	}
	return nil
}

// Recent returns up to limit quotes, newest first.
func (r *LoanRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.QuoteResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.QuoteResult, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
