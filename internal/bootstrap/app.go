package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/generate"
	"portfolio-backend/internal/llm"
	"portfolio-backend/internal/llm/groq"
	"portfolio-backend/internal/portfolios"
	"portfolio-backend/internal/prefill"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server"
	"portfolio-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	PortfoliosRepo   portfolios.Repo
	GenerateService  *generate.Service
	PortfolioService *portfolios.Service
	GenerateHandler  *generate.Handler
	PortfolioHandler *portfolios.Handler
	PrefillHandler   *prefill.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo portfolios.Repo
	if sqlDB != nil {
		repo = &portfolios.PGRepo{DB: sqlDB}
	} else {
		repo = portfolios.NewMemoryRepo()
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		PortfoliosRepo:   repo,
		GenerateService:  generate.NewService(llmClient),
		PortfolioService: portfolios.NewService(repo),
		PrefillHandler:   prefill.NewHandler(),
	}
	app.GenerateHandler = generate.NewHandler(app.GenerateService)
	app.PortfolioHandler = portfolios.NewHandler(app.PortfolioService, cfg.PublicBaseURL)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		GenerateHandler:  app.GenerateHandler,
		PortfolioHandler: app.PortfolioHandler,
		PrefillHandler:   app.PrefillHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.IsDevLike() {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

// buildLLM resolves the model client. An unset provider yields the placeholder
// so misconfiguration fails loudly on first use in dev; a configured provider
// with a missing key fails here, at startup.
func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "groq":
		if cfg.GroqAPIKey == "" && cfg.IsDevLike() {
			log.Printf("bootstrap: GROQ_API_KEY empty; using placeholder LLM client")
			return llm.PlaceholderClient{}, nil
		}
		return groq.NewClient(cfg.GroqAPIKey, cfg.LLMModel)
	case "":
		return llm.PlaceholderClient{}, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
