package portfolios

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. The nested records are stored as
// JSONB; code carries a unique index so lookups are O(1).
type PGRepo struct {
	DB *sql.DB
}

// Insert writes a new published portfolio document.
func (r *PGRepo) Insert(ctx context.Context, portfolio PublishedPortfolio) error {
	const query = `
INSERT INTO portfolios (
    id,
    code,
    personal_info,
    professional,
    ai_portfolio,
    views,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	personal, err := json.Marshal(portfolio.PersonalInfo)
	if err != nil {
		return fmt.Errorf("marshal personal info: %w", err)
	}
	professional, err := json.Marshal(portfolio.Professional)
	if err != nil {
		return fmt.Errorf("marshal professional: %w", err)
	}
	aiPortfolio, err := json.Marshal(portfolio.AIPortfolio)
	if err != nil {
		return fmt.Errorf("marshal ai portfolio: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		portfolio.ID,
		portfolio.Code,
		personal,
		professional,
		aiPortfolio,
		portfolio.Views,
		portfolio.CreatedAt,
	)
	return err
}

// GetByCode returns the document whose code equals the input.
func (r *PGRepo) GetByCode(ctx context.Context, code string) (PublishedPortfolio, error) {
	const query = `
SELECT id, code, personal_info, professional, ai_portfolio, views, created_at
FROM portfolios
WHERE code = $1
LIMIT 1`

	var (
		portfolio    PublishedPortfolio
		personal     []byte
		professional []byte
		aiPortfolio  []byte
	)
	err := r.DB.QueryRowContext(ctx, query, code).Scan(
		&portfolio.ID,
		&portfolio.Code,
		&personal,
		&professional,
		&aiPortfolio,
		&portfolio.Views,
		&portfolio.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PublishedPortfolio{}, ErrNotFound
		}
		return PublishedPortfolio{}, err
	}

	if err := json.Unmarshal(personal, &portfolio.PersonalInfo); err != nil {
		return PublishedPortfolio{}, fmt.Errorf("unmarshal personal info: %w", err)
	}
	if err := json.Unmarshal(professional, &portfolio.Professional); err != nil {
		return PublishedPortfolio{}, fmt.Errorf("unmarshal professional: %w", err)
	}
	if err := json.Unmarshal(aiPortfolio, &portfolio.AIPortfolio); err != nil {
		return PublishedPortfolio{}, fmt.Errorf("unmarshal ai portfolio: %w", err)
	}
	return portfolio, nil
}

var _ Repo = (*PGRepo)(nil)
