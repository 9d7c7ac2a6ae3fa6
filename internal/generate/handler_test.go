package generate_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/generate"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
)

type scriptedLLM struct {
	output string
	err    error
}

func (s scriptedLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.output, nil
}

func newRouter(client scriptedLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := generate.NewHandler(generate.NewService(client))
	return server.NewRouter(server.RouterDeps{
		Config:          config.Config{Env: "dev"},
		GenerateHandler: handler,
	})
}

func TestGenerateEndpointSuccess(t *testing.T) {
	router := newRouter(scriptedLLM{output: `{"summary":"ok","skills":["Go","SQL"],"projects":[{"name":"Tool X","tech":["Go"],"description":"CLI"}]}`})

	body := `{"personalInfo":{"name":"Jane Doe","email":"jane@x.com","phone":"555"},` +
		`"professional":{"skills":"Go, SQL","domain":"software_developer"},` +
		`"projects":{"project1":"Tool X - a CLI built in Go"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Success     bool                        `json:"success"`
		AIPortfolio generate.GeneratedPortfolio `json:"aiPortfolio"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !out.Success {
		t.Fatalf("expected success=true")
	}
	if len(out.AIPortfolio.Skills) != 2 || len(out.AIPortfolio.Projects) < 1 {
		t.Fatalf("unexpected portfolio: %+v", out.AIPortfolio)
	}
}

func TestGenerateEndpointMalformedModelOutput(t *testing.T) {
	router := newRouter(scriptedLLM{output: "no json in this reply"})

	body := `{"personalInfo":{"name":"Jane Doe"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Success {
		t.Fatalf("expected success=false")
	}
	if out.Error != "AI generation failed" {
		t.Fatalf("expected generic failure message, got %q", out.Error)
	}
}

func TestGenerateEndpointRequiresName(t *testing.T) {
	router := newRouter(scriptedLLM{output: "{}"})

	body := `{"personalInfo":{"name":"   "},"professional":{"domain":"other"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "personalInfo.name") {
		t.Fatalf("expected field-level detail, got %s", resp.Body.String())
	}
}
