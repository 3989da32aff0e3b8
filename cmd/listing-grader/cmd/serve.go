package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sellersage/listing-grader/api/openapi"
	"github.com/sellersage/listing-grader/internal/api/handlers"
	"github.com/sellersage/listing-grader/internal/api/middleware"
	"github.com/sellersage/listing-grader/internal/config"
	"github.com/sellersage/listing-grader/internal/engine"
	"github.com/sellersage/listing-grader/internal/etsy"
	"github.com/sellersage/listing-grader/internal/notify"
	"github.com/sellersage/listing-grader/internal/store"
	"github.com/sellersage/listing-grader/pkg/grader"
	"github.com/sellersage/listing-grader/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	rl := etsy.NewRateLimiter(
		cfg.Etsy.RateLimit.PerSecond,
		cfg.Etsy.RateLimit.Burst,
		cfg.Etsy.RateLimit.DailyLimit,
	)
	tokens := etsy.NewOAuthTokenProvider(
		cfg.Etsy.APIKey,
		cfg.Etsy.SharedSecret,
		etsy.WithTokenURL(cfg.Etsy.TokenURL),
	)
	etsyClient := etsy.NewOpenAPIClient(
		cfg.Etsy.APIKey,
		tokens,
		etsy.WithBaseURL(cfg.Etsy.BaseURL),
		etsy.WithRateLimiter(rl),
	)

	g, err := grader.New(cfg.Grading.GraderWeights())
	if err != nil {
		return fmt.Errorf("building grader: %w", err)
	}

	eng, err := engine.NewEngine(st, etsyClient, g, buildNotifier(cfg, slogger),
		engine.WithLogger(slogger),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
		engine.WithMaxCallsPerCycle(cfg.Etsy.MaxCallsPerCycle),
		engine.WithAlertCooldown(cfg.Alerts.ReAlertsCooldown, cfg.Alerts.ReAlertsEnabled),
	)
	if err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	sched, err := engine.NewScheduler(
		eng,
		cfg.Schedule.RefreshInterval,
		cfg.Schedule.BenchmarkInterval,
		slogger,
	)
	if err != nil {
		return fmt.Errorf("building scheduler: %w", err)
	}

	e := newEcho(cfg, slogger, st, eng, etsyClient, rl)

	sched.Start()
	defer sched.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slogger.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slogger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	slogger.Info("server stopped")
	return nil
}

// newEcho builds the HTTP surface: operational endpoints on plain Echo,
// the versioned API on Huma, and Swagger UI for the embedded spec.
func newEcho(
	cfg *config.Config,
	slogger *slog.Logger,
	st store.Store,
	eng *engine.Engine,
	etsyClient etsy.EtsyClient,
	rl *etsy.RateLimiter,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(slogger))
	e.Use(middleware.RequestLog(slogger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("Listing Grader API", Version))

	handlers.RegisterGradeRoutes(api, handlers.NewGradeHandler(eng))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterShopRoutes(api, handlers.NewShopsHandler(eng, etsyClient))
	handlers.RegisterTrackedRoutes(api, handlers.NewTrackedHandler(st))
	handlers.RegisterTriggerRoutes(api,
		handlers.NewRefreshHandler(eng),
		handlers.NewRescoreHandler(eng),
	)
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	return e
}

// buildNotifier picks the configured notification backend, preferring
// Discord, then the generic webhook, then a logging no-op.
func buildNotifier(cfg *config.Config, slogger *slog.Logger) notify.Notifier {
	switch {
	case cfg.Notifications.Discord.Enabled:
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	case cfg.Notifications.Webhook.Enabled:
		return notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			cfg.Notifications.Webhook.Headers,
		)
	default:
		return notify.NewNoOpNotifier(slogger)
	}
}
