package portfolios

import (
	"time"

	"portfolio-backend/internal/generate"
)

// PublishedPortfolio is the document stored per publish. It is immutable once
// written; Code is the sole public lookup key. Views is reserved and never
// incremented by this service.
type PublishedPortfolio struct {
	ID           string                      `json:"-"`
	Code         string                      `json:"code"`
	PersonalInfo generate.PersonalInfo       `json:"personalInfo"`
	Professional generate.Professional       `json:"professional"`
	AIPortfolio  generate.GeneratedPortfolio `json:"aiPortfolio"`
	CreatedAt    time.Time                   `json:"createdAt"`
	Views        int64                       `json:"views"`
}
