package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/userstub/config"
	"github.com/haguru/userstub/internal/interfaces"
	"github.com/haguru/userstub/internal/middleware"
	"github.com/haguru/userstub/internal/routes"
	"github.com/haguru/userstub/internal/server"
	"github.com/haguru/userstub/internal/userrepo/memory"
	"github.com/haguru/userstub/internal/userservice"
	"github.com/haguru/userstub/pkg/metrics"
	"github.com/haguru/userstub/pkg/zerolog"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ShutdownTimeout = 5 * time.Second

// App represents the main application, containing servers and configuration.
// It owns the user store for the lifetime of the process.
type App struct {
	Server        interfaces.Server
	MetricsServer interfaces.Server
	Config        *config.ServiceConfig
	Logger        interfaces.Logger
	UserService   *userservice.UserService
}

// NewApp creates and configures a new App instance.
func NewApp(cfg *config.ServiceConfig, logger interfaces.Logger) (*App, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zerolog.NewZerologLogger(cfg.ServiceName)
	}
	logger.SetLevel(cfg.LogLevel)

	app := &App{
		Config: cfg,
		Logger: logger,
	}

	metricsInstance := app.initializeMetrics()

	userRepo := memory.NewMemoryUserRepository()
	app.UserService = userservice.NewUserService(userRepo, logger)
	metricsInstance.SetGauge(routes.UsersStored, float64(userRepo.Count(context.Background())))

	app.Server = server.NewServer(cfg.Address(), logger)
	app.Server.Use(
		middleware.Recoverer(logger),
		middleware.RequestLogger(logger),
		middleware.RateLimitMiddleware(middleware.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)),
	)

	route := routes.NewRoute(metricsInstance, app.UserService, logger)
	if err := route.Register(app.Server); err != nil {
		return nil, fmt.Errorf("failed to add user routes: %v", err)
	}
	app.Server.Wrap(func(h http.Handler) http.Handler {
		return otelhttp.NewHandler(h, cfg.ServiceName)
	})

	if cfg.Metrics.Enabled {
		app.MetricsServer = server.NewServer(cfg.Metrics.Address(), logger)
		tracedMetricsHandler := otelhttp.NewHandler(metricsInstance.Handler(), routes.MetricsRouteAPI)
		err := app.MetricsServer.AddRoute(http.MethodGet, routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP)
		if err != nil {
			return nil, fmt.Errorf("failed to add metrics route: %v", err)
		}
	}

	return app, nil
}

// Run serves until ctx is cancelled or the API server fails, then shuts
// every server down. A metrics server that cannot start is logged and the
// API keeps serving.
func (app *App) Run(ctx context.Context) error {
	servers := []interfaces.Server{app.Server}
	if app.MetricsServer != nil {
		servers = append(servers, app.MetricsServer)
		go func() {
			if err := app.MetricsServer.ListenAndServe(); err != nil {
				app.Logger.Error("Metrics server stopped", "address", app.Config.Metrics.Address(), "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.Logger.Info("Shutdown requested")
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("failed to start server: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("Failed to stop server", "error", err)
		}
	}

	return runErr
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	appMetrics.GetRegistry().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics.RegisterCounterVec(routes.UserRequestsTotal, routes.UserRequestsTotalHelp, routes.OperationLabels)
	appMetrics.RegisterCounterVec(routes.UserErrorsTotal, routes.UserErrorsTotalHelp, routes.OperationLabels)
	appMetrics.RegisterHistogramVec(
		routes.UserRequestDurationSeconds,
		routes.UserRequestDurationSecondsHelp,
		routes.UserRequestDurationSecondsBuckets,
		routes.OperationLabels)
	appMetrics.RegisterGauge(routes.UsersStored, routes.UsersStoredHelp)
	appMetrics.RegisterCounter(routes.UnrecognizedRoutesTotal, routes.UnrecognizedRoutesTotalHelp)

	return appMetrics
}
