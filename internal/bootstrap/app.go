package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"career-navigator/internal/analyses"
	"career-navigator/internal/chat"
	"career-navigator/internal/extract"
	"career-navigator/internal/llm"
	"career-navigator/internal/llm/gemini"
	"career-navigator/internal/services/health"
	"career-navigator/internal/sessions"
	"career-navigator/internal/shared/config"
	"career-navigator/internal/shared/server"
	"career-navigator/internal/shared/server/middleware"
	"career-navigator/internal/shared/telemetry"
	"career-navigator/internal/skills"
)

const sweepInterval = 5 * time.Minute

// App holds shared dependencies and the wired router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	SessionRepo     *sessions.MemoryRepo
	SessionsService *sessions.Service
	AnalysesService *analyses.Service
	ChatService     *chat.Service
	Advisor         llm.Advisor
	Limiter         *middleware.RateLimiter
	SessionsHandler *sessions.Handler
	AnalysisHandler *analyses.Handler
	ChatHandler     *chat.Handler
	HealthService   *health.Service
}

// Options overrides collaborators, mostly for tests.
type Options struct {
	Advisor llm.Advisor
	OCR     extract.OCR
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config, opts Options) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	advisor := opts.Advisor
	if advisor == nil {
		advisor = buildAdvisor(cfg)
	}
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		telemetry.Warn("bootstrap.advice_disabled", map[string]any{
			"reason": "GEMINI_API_KEY empty; chat replies will report the missing key",
		})
	}

	limiter := middleware.NewRateLimiter(nil)
	sessionRepo := sessions.NewMemoryRepo()
	sessionSvc := sessions.NewService(sessionRepo, cfg.SessionTTL)
	sessionSvc.OnEnd = limiter.Forget

	analysisSvc := analyses.NewService(skills.DefaultCatalog())
	chatSvc := chat.NewService(sessionSvc, advisor)
	healthSvc := health.NewService(strings.TrimSpace(cfg.GeminiAPIKey) != "", cfg.GeminiModel)

	app := &App{
		Config:          cfg,
		SessionRepo:     sessionRepo,
		SessionsService: sessionSvc,
		AnalysesService: analysisSvc,
		ChatService:     chatSvc,
		Advisor:         advisor,
		Limiter:         limiter,
		SessionsHandler: sessions.NewHandler(sessionSvc),
		AnalysisHandler: analyses.NewHandler(analysisSvc, extract.New(opts.OCR)),
		ChatHandler:     chat.NewHandler(chatSvc),
		HealthService:   healthSvc,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Sessions:        sessionSvc,
		Health:          healthSvc,
		Analyses:        app.AnalysisHandler,
		SessionsHandler: app.SessionsHandler,
		Chat:            app.ChatHandler,
		Limiter:         limiter,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"advice_model": cfg.GeminiModel,
		"session_ttl":  cfg.SessionTTL.String(),
		"roles":        len(analysisSvc.Catalog.Roles()),
	})
	return app, nil
}

func buildAdvisor(cfg config.Config) llm.Advisor {
	return gemini.NewClient(gemini.Options{
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		BaseURL:     cfg.GeminiBaseURL,
		BackoffBase: cfg.GeminiBackoffBase,
		Timeout:     cfg.GeminiTimeout,
		Logger:      telemetry.Logger().Named("advice"),
	})
}

// SweepSessions drops expired sessions until ctx is done.
func (a *App) SweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed := a.SessionRepo.Sweep(now.UTC())
			for _, id := range removed {
				a.Limiter.Forget(id)
			}
			if len(removed) > 0 {
				telemetry.Info("sessions.swept", map[string]any{"removed": len(removed)})
			}
		}
	}
}
