package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio-site/go-portfolio-backend/config"
	"github.com/portfolio-site/go-portfolio-backend/internal/bootstrap"
	"github.com/portfolio-site/go-portfolio-backend/internal/content"
	"github.com/portfolio-site/go-portfolio-backend/internal/notify"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/repository"
	"github.com/portfolio-site/go-portfolio-backend/internal/portfolio/service"
	"github.com/portfolio-site/go-portfolio-backend/internal/ratelimit"
	"github.com/portfolio-site/go-portfolio-backend/pkg/logger"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{Level: cfg.App.LogLevel, Format: cfg.App.LogFormat})
	bootstrap.SetGinMode(cfg.App.Environment)

	// The relational backend is optional: without DB_HOST the service runs
	// entirely from the flat files. An unreachable database at startup is
	// not fatal because reads fall back per call anyway.
	var db *sql.DB
	if cfg.DatabaseConfigured() {
		db, err = bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{DSN: cfg.DSN()})
		if err != nil {
			slog.Warn("database not reachable at startup, relying on per-call fallback", "error", err)
		} else {
			slog.Info("database connection pool established")
		}
		if db != nil {
			defer db.Close()
		}
	} else {
		slog.Info("no database configured, serving from flat files")
	}

	fileStore := repository.NewFileStore(cfg.Content.ProjectsFile)

	var (
		primary  repository.ProjectReader
		contacts repository.ContactStore
	)
	if db != nil {
		pg := repository.NewPostgresStore(db)
		primary = pg
		contacts = pg
	}

	var notifier service.Notifier
	if mailer := notify.NewMailer(notify.Config(cfg.SMTP)); mailer != nil {
		notifier = mailer
		slog.Info("contact notifications enabled", "to", cfg.SMTP.To)
	}

	dataService := service.NewDataService(primary, fileStore, contacts, notifier)
	contentCache := content.NewCache(cfg.Content.ContentFile, cfg.Content.CacheTTL)

	limiter := ratelimit.New()
	if err := limiter.StartSweeper(cfg.RateLimit.SweepInterval); err != nil {
		log.Fatalf("rate limiter: %v", err)
	}
	defer limiter.StopSweeper()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.Server.CORSOrigins,
		DB:          db,
		Data:        dataService,
		Content:     contentCache,
		ResumePath:  cfg.Content.ResumeFile,
		Limiter:     limiter,
		RateLimit: ratelimit.Config{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
		},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	slog.Info("server exiting")
}
