package portfolios

import "context"

// Repo defines persistence operations for published portfolios.
// Insert writes exactly one document; GetByCode returns ErrNotFound for an
// unknown code and must never mutate the stored document.
type Repo interface {
	Insert(ctx context.Context, portfolio PublishedPortfolio) error
	GetByCode(ctx context.Context, code string) (PublishedPortfolio, error)
}
