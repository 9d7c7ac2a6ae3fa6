package portfolios

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires the publish and retrieval endpoints to the service.
type Handler struct {
	Svc           *Service
	PublicBaseURL string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, publicBaseURL string) *Handler {
	return &Handler{Svc: svc, PublicBaseURL: publicBaseURL}
}

// RegisterRoutes attaches portfolio routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/portfolio/publish", h.publish)
	rg.GET("/p/:code", h.get)
	rg.GET("/p/:code/meta", h.meta)
}

func (h *Handler) publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	portfolio, err := h.Svc.Publish(c.Request.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			respond.Fail(c, http.StatusBadRequest, "validation_error", validationErr.Error())
			return
		}
		respond.Fail(c, http.StatusInternalServerError, "persistence_error", "Failed to publish portfolio")
		return
	}

	c.Set("portfolioCode", portfolio.Code)
	respond.OK(c, PublishResponse{
		Success: true,
		Code:    portfolio.Code,
		URL:     h.PublicBaseURL + "/p/" + portfolio.Code,
	})
}

func (h *Handler) get(c *gin.Context) {
	code := c.Param("code")
	c.Set("portfolioCode", code)

	portfolio, err := h.Svc.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Fail(c, http.StatusNotFound, "not_found", "Portfolio not found")
			return
		}
		respond.Fail(c, http.StatusInternalServerError, "persistence_error", "Failed to load portfolio")
		return
	}

	respond.OK(c, PortfolioResponse{Success: true, Portfolio: portfolio})
}

func (h *Handler) meta(c *gin.Context) {
	code := c.Param("code")
	c.Set("portfolioCode", code)

	portfolio, err := h.Svc.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.JSON(c, http.StatusNotFound, Meta{Title: "Portfolio Not Found"})
			return
		}
		respond.Fail(c, http.StatusInternalServerError, "persistence_error", "Failed to load portfolio")
		return
	}

	respond.OK(c, MetaFor(portfolio))
}
