package portfolios

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo used when no database is
// configured and by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]PublishedPortfolio // code -> document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]PublishedPortfolio),
	}
}

// Insert stores a published portfolio keyed by its code.
func (r *MemoryRepo) Insert(ctx context.Context, portfolio PublishedPortfolio) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[portfolio.Code] = portfolio
	return nil
}

// GetByCode returns the stored document for a code.
func (r *MemoryRepo) GetByCode(ctx context.Context, code string) (PublishedPortfolio, error) {
	if err := ctx.Err(); err != nil {
		return PublishedPortfolio{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	portfolio, ok := r.data[code]
	if !ok {
		return PublishedPortfolio{}, ErrNotFound
	}
	return portfolio, nil
}

// Len reports the number of stored documents.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ Repo = (*MemoryRepo)(nil)
