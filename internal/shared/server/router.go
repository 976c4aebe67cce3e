package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/analyses"
	"resume-ats/internal/documents"
	"resume-ats/internal/services/health"
	"resume-ats/internal/shared/auth"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/metrics"
	"resume-ats/internal/shared/server/middleware"
	"resume-ats/internal/shared/server/respond"
)

const (
	apiPrefix = "/api/v1"

	rateGroupDefault = "DEFAULT"
	rateGroupUpload  = "UPLOAD"
	rateGroupOpen    = "OPEN"
)

// RouterDeps lists everything the HTTP layer needs.
type RouterDeps struct {
	Config          config.Config
	Verifier        *auth.Verifier
	Health          *health.Service
	AnalysisHandler *analyses.Handler
	DocumentHandler *documents.Handler
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Verifier, apiPrefix+"/health", apiPrefix+"/metrics"),
	)
	if deps.Config.RateLimitRPS > 0 && deps.Config.RateLimitBurst > 0 {
		r.Use(middleware.RateLimit(rateLimitConfig(deps)))
	}

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService(deps.Config.Env, deps.Config.ExtractMode)
	}

	api := r.Group(apiPrefix)
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitConfig(deps RouterDeps) middleware.RateLimitConfig {
	rps := deps.Config.RateLimitRPS
	burst := deps.Config.RateLimitBurst
	uploadBurst := burst / 2
	if uploadBurst < 1 {
		uploadBurst = 1
	}
	return middleware.RateLimitConfig{
		DefaultGroup: rateGroupDefault,
		Limiter:      deps.RateLimiter,
		GroupFor: func(c *gin.Context) string {
			switch c.FullPath() {
			case apiPrefix + "/health", apiPrefix + "/metrics":
				return rateGroupOpen
			case apiPrefix + "/analyze/upload", apiPrefix + "/documents/extract":
				return rateGroupUpload
			default:
				return rateGroupDefault
			}
		},
		Rules: map[string]middleware.RateLimitRule{
			rateGroupDefault: {Rate: rps, Burst: burst},
			rateGroupUpload:  {Rate: rps / 2, Burst: uploadBurst},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
