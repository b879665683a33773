package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/analyses"
	"career-navigator/internal/chat"
	"career-navigator/internal/services/health"
	"career-navigator/internal/sessions"
	"career-navigator/internal/shared/config"
	"career-navigator/internal/shared/metrics"
	"career-navigator/internal/shared/server/middleware"
	"career-navigator/internal/shared/server/respond"
)

const chatRateGroup = "CHAT"

// RouterDeps carries the handlers and shared state the routes need.
type RouterDeps struct {
	Config          config.Config
	Sessions        *sessions.Service
	Health          *health.Service
	Analyses        *analyses.Handler
	SessionsHandler *sessions.Handler
	Chat            *chat.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if deps.Config.Env == "dev" {
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(deps.Sessions,
			middleware.Route{Method: http.MethodGet, Path: "/api/v1/health"},
			middleware.Route{Method: http.MethodGet, Path: "/api/v1/roles"},
			middleware.Route{Method: http.MethodPost, Path: "/api/v1/sessions"},
			middleware.Route{Method: http.MethodGet, Path: "/metrics"},
		),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	deps.SessionsHandler.RegisterRoutes(api)
	deps.Analyses.RegisterRoutes(api)

	chatGroup := api.Group("")
	chatGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			chatRateGroup: {
				Rate:  deps.Config.ChatRatePerMin / 60,
				Burst: deps.Config.ChatRateBurst,
			},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return chatRateGroup
			}
			return ""
		},
		Limiter: deps.Limiter,
	}))
	deps.Chat.RegisterRoutes(chatGroup)

	return r
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
