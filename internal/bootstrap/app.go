package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/analyses"
	"resume-ats/internal/documents"
	"resume-ats/internal/scoring"
	"resume-ats/internal/services/health"
	"resume-ats/internal/shared/auth"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/server"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Engine           *scoring.Engine
	Verifier         *auth.Verifier
	DocumentsService *documents.Service
	AnalysesService  *analyses.Service
	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	Health           *health.Service
}

// Build wires services, handlers and the router from cfg.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.SetLevel(cfg.LogLevel)

	var verifier *auth.Verifier
	if cfg.AuthEnabled() {
		v, err := auth.NewVerifier(cfg.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("build verifier: %w", err)
		}
		verifier = v
	} else if !isDevLike(cfg.Env) {
		telemetry.Info("bootstrap.auth_disabled", map[string]any{"env": cfg.Env})
	}

	var engineOpts []scoring.Option
	if cfg.AnalysisSeed != nil {
		engineOpts = append(engineOpts, scoring.WithSeed(*cfg.AnalysisSeed))
	}
	engine := scoring.NewEngine(engineOpts...)

	docSvc := documents.NewService(documents.ParseExtractMode(cfg.ExtractMode), cfg.MaxUploadBytes)
	analysisSvc := analyses.NewService(engine, docSvc)
	analysisSvc.AnalysisDelay = cfg.AnalysisDelay
	analysisSvc.GenerationDelay = cfg.GenerationDelay
	analysisSvc.CheckContract = isDevLike(cfg.Env)

	app := &App{
		Config:           cfg,
		Engine:           engine,
		Verifier:         verifier,
		DocumentsService: docSvc,
		AnalysesService:  analysisSvc,
		DocumentsHandler: documents.NewHandler(docSvc),
		AnalysisHandler:  analyses.NewHandler(analysisSvc),
		Health:           health.NewService(cfg.Env, cfg.ExtractMode),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Verifier:        verifier,
		Health:          app.Health,
		AnalysisHandler: app.AnalysisHandler,
		DocumentHandler: app.DocumentsHandler,
		RateLimiter:     middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":            cfg.Env,
		"auth_enabled":   verifier != nil,
		"extract_mode":   string(docSvc.Mode),
		"seeded":         cfg.AnalysisSeed != nil,
		"max_upload":     docSvc.MaxBytes,
		"rate_limit_rps": cfg.RateLimitRPS,
	})
	return app, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
