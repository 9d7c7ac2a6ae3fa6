package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires the generation endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

// GenerateResponse is the success envelope of the generation endpoint.
type GenerateResponse struct {
	Success     bool               `json:"success"`
	AIPortfolio GeneratedPortfolio `json:"aiPortfolio"`
}

func (h *Handler) generate(c *gin.Context) {
	var input InputProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	// Identity fields are rejected when absent; descriptive fields default to
	// empty and are coerced by the prompt builder.
	if strings.TrimSpace(input.PersonalInfo.Name) == "" {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "personalInfo.name is required")
		return
	}

	c.Set("generationDomain", input.Professional.Domain)

	portfolio, err := h.Svc.Generate(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrInputTooLarge):
			respond.Fail(c, http.StatusBadRequest, "input_too_large", MsgInputTooLarge)
		case errors.Is(err, ErrRateLimited):
			respond.Fail(c, http.StatusTooManyRequests, "rate_limited", MsgRateLimited)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Fail(c, http.StatusInternalServerError, "not_configured", "AI generation is not configured")
		default:
			// Covers malformed output and any other provider failure; the
			// detail is already logged, the caller gets the generic message.
			respond.Fail(c, http.StatusBadGateway, "generation_failed", MsgGenerationFailed)
		}
		return
	}

	respond.OK(c, GenerateResponse{Success: true, AIPortfolio: portfolio})
}
