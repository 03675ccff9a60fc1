// Package app wires recruitd's components together and runs the service.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/skillsenselab/recruitd/internal/auth"
	"github.com/skillsenselab/recruitd/internal/config"
	"github.com/skillsenselab/recruitd/internal/database"
	"github.com/skillsenselab/recruitd/internal/handler"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/observability"
	"github.com/skillsenselab/recruitd/internal/repository"
	"github.com/skillsenselab/recruitd/internal/server"
	"github.com/skillsenselab/recruitd/internal/server/middleware"
	"github.com/skillsenselab/recruitd/internal/service"
	"github.com/skillsenselab/recruitd/internal/version"
)

// App holds the assembled service.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	db     *database.DB
	srv    *server.Server
	tracer *sdktrace.TracerProvider
}

// New builds the application from configuration. Construction fails fast:
// a bad signing secret or unreachable database stops the process before the
// port is bound.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	if cfg.Auth.UsesDevFallbackSecret() {
		log.Warn("Signing secret not configured; using the known development fallback. " +
			"Anyone can forge session tokens. Set AUTH_SECRET (or JWT_SECRET) before deploying.")
	}

	tracer, err := observability.InitTracer(ctx, cfg.Tracing, cfg.Name, version.Version, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	tokens, err := auth.NewTokenService(&cfg.Auth)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewBcryptHasher(auth.WithCost(cfg.Auth.BcryptCost))

	users := repository.NewUsers(db)
	recruitments := repository.NewRecruitments(db)
	applications := repository.NewApplications(db)

	authSvc := service.NewAuthService(users, hasher, tokens, log)
	recruitmentSvc := service.NewRecruitmentService(recruitments, log)
	applicationSvc := service.NewApplicationService(applications, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(
		middleware.RequestLogger(log.WithComponent("http")),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodySizeLimit(cfg.Server.MaxBodySize),
	)

	engine := srv.GinEngine()
	if cfg.Tracing.Enabled {
		engine.Use(observability.GinTracing())
	}

	handler.Register(engine, handler.Handlers{
		Auth:         handler.NewAuthHandler(authSvc),
		Recruitments: handler.NewRecruitmentHandler(recruitmentSvc),
		Applications: handler.NewApplicationHandler(applicationSvc),
		Tokens:       tokens,
		DB:           db,
		Log:          log,
		ServiceName:  cfg.Name,
		Version:      version.Version,
	})

	return &App{cfg: cfg, log: log, db: db, srv: srv, tracer: tracer}, nil
}

// Run starts the server and blocks until SIGINT/SIGTERM or context
// cancellation, then shuts everything down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.srv.Start(ctx); err != nil {
		return err
	}

	a.log.Info("Service started", logger.Fields(
		"name", a.cfg.Name,
		"environment", a.cfg.Environment,
		"version", version.Version,
	))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.log.Info("Signal received, shutting down", logger.Fields("signal", sig.String()))
	case <-ctx.Done():
		a.log.Info("Context cancelled, shutting down")
	}

	return a.Shutdown(context.Background())
}

// Shutdown stops the server and closes resources in reverse start order.
func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error

	if err := a.srv.Stop(ctx); err != nil {
		a.log.Error("Server shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		firstErr = err
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	a.log.Info("Shutdown complete")
	return firstErr
}
