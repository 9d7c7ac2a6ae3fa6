package portfolios

import "portfolio-backend/internal/generate"

// PublishRequest is the publish endpoint body. Pointers distinguish absent
// sections from present-but-empty ones so validation can name the missing
// field.
type PublishRequest struct {
	PersonalInfo *generate.PersonalInfo       `json:"personalInfo"`
	Professional *generate.Professional       `json:"professional"`
	AIPortfolio  *generate.GeneratedPortfolio `json:"aiPortfolio"`
}

// PublishResponse is the success envelope of the publish endpoint.
type PublishResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	URL     string `json:"url"`
}

// PortfolioResponse is the success envelope of the retrieval endpoint.
type PortfolioResponse struct {
	Success   bool               `json:"success"`
	Portfolio PublishedPortfolio `json:"portfolio"`
}

// Meta is the page metadata derived from a published portfolio.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
