package internal

import (
	"callguard/internal/controllers"
	"callguard/internal/journal"
	"callguard/internal/journal/interfaces"
	"callguard/internal/presenter"
	"callguard/internal/providers"
	"callguard/internal/screening"
	"callguard/internal/structures"
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"net/http"
	"strconv"
	"time"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	WebServer   *http.Server
	conf        *structures.Config
	logger      providers.Logger
	scheduler   interfaces.SchedulerInterface
	screener    screening.ScreenerInterface
	presenter   presenter.PresenterInterface
	fileManager *journal.FileManager
}

func NewApp(healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, fileManager *journal.FileManager, screener screening.ScreenerInterface, pres presenter.PresenterInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      newHandler(healthController, conf, router, metrics),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:        conf,
		logger:      logger,
		scheduler:   scheduler,
		screener:    screener,
		presenter:   pres,
		fileManager: fileManager,
	}

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	if err := scheduler.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	return app, nil
}

func newHandler(healthController *controllers.HealthController, conf *structures.Config, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	var knownPaths []string
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
		knownPaths = append(knownPaths, route.Url)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, knownPaths, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)
	return mux
}

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight screening tasks, tears down any visible overlay and persists
// the journal.
func (a *App) Run(ctx context.Context) error {
	a.scheduler.Init()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", a.WebServer.Addr)
		if err := a.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Infof(providers.TypeApp, "Shutting down")
		return a.shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

func (a *App) shutdown() error {
	a.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.WebServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := a.screener.Shutdown(ctx); err != nil {
		a.logger.Warnf(providers.TypeApp, "%s", err)
	}
	// Stops the auto-dismiss timer before Close releases the log files.
	a.presenter.Dismiss(presenter.ReasonShutdown)
	return a.scheduler.Persist()
}

func (a *App) Close() {
	a.fileManager.Close()
	a.logger.Close()
}
