package prefill

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler serves the resume-prefill endpoint: extract text from an uploaded
// resume so the builder UI can prefill its free-text fields. Nothing is
// stored.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches prefill routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/prefill/resume", h.resume)
}

// PrefillResponse is the success envelope of the prefill endpoint.
type PrefillResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

func (h *Handler) resume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Fail(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}

	text, err := ExtractText(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Fail(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX resumes are supported")
			return
		}
		respond.Fail(c, http.StatusUnprocessableEntity, "extraction_failed", "could not extract text from file")
		return
	}

	respond.OK(c, PrefillResponse{Success: true, Text: text})
}
