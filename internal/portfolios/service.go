package portfolios

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// Service contains the publish and retrieval logic for portfolios.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Publish validates the payload, assigns a fresh code, and inserts exactly one
// document. Republishing identical content always produces a new document with
// a new code; there is no dedup.
func (s *Service) Publish(ctx context.Context, req PublishRequest) (PublishedPortfolio, error) {
	if req.PersonalInfo == nil {
		return PublishedPortfolio{}, &ValidationError{Field: "personalInfo"}
	}
	if req.Professional == nil {
		return PublishedPortfolio{}, &ValidationError{Field: "professional"}
	}
	if req.AIPortfolio == nil {
		return PublishedPortfolio{}, &ValidationError{Field: "aiPortfolio"}
	}
	if strings.TrimSpace(req.PersonalInfo.Name) == "" {
		return PublishedPortfolio{}, &ValidationError{Field: "personalInfo.name"}
	}

	portfolio := PublishedPortfolio{
		ID:           uuid.NewString(),
		Code:         NewCode(),
		PersonalInfo: *req.PersonalInfo,
		Professional: *req.Professional,
		AIPortfolio:  *req.AIPortfolio,
		CreatedAt:    time.Now().UTC(),
		Views:        0,
	}

	if err := s.Repo.Insert(ctx, portfolio); err != nil {
		return PublishedPortfolio{}, err
	}

	metrics.IncPortfolioPublished()
	telemetry.Info("portfolio.published", map[string]any{
		"code": portfolio.Code,
		"name": portfolio.PersonalInfo.Name,
	})
	return portfolio, nil
}

// GetByCode looks up a published portfolio. Reads are idempotent; the stored
// document is never mutated.
func (s *Service) GetByCode(ctx context.Context, code string) (PublishedPortfolio, error) {
	portfolio, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.IncRetrievalMiss()
		}
		return PublishedPortfolio{}, err
	}
	metrics.IncRetrievalHit()
	return portfolio, nil
}

// MetaFor derives the public page title and description from a stored
// portfolio.
func MetaFor(portfolio PublishedPortfolio) Meta {
	name := portfolio.PersonalInfo.Name
	description := strings.TrimSpace(portfolio.AIPortfolio.Summary)
	if description == "" {
		description = name + "'s portfolio"
	}
	return Meta{
		Title:       name + " | Portfolio",
		Description: description,
	}
}
