package respond

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/telemetry"
)

// FailureResponse is the envelope for every failed request.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Fail sends a {success:false, error} response and logs the failure.
// The code is a stable machine-readable tag that goes to the log only;
// clients see the human-readable message.
func Fail(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, FailureResponse{Success: false, Error: message})
}
