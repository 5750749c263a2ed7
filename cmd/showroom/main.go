// Command showroom serves the horse catalog, its JSON API and the
// sell-your-horse form.
//
//	@title			Showroom API
//	@version		1.0
//	@description	Read-only horse catalog and sell-your-horse intake for the equestrian boutique.
//	@BasePath		/
package main

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	_ "github.com/boutique-ecuestre/showroom/docs"
	"github.com/boutique-ecuestre/showroom/internal/api"
	"github.com/boutique-ecuestre/showroom/internal/catalog"
	"github.com/boutique-ecuestre/showroom/internal/config"
	"github.com/boutique-ecuestre/showroom/internal/database"
	"github.com/boutique-ecuestre/showroom/internal/handler"
	"github.com/boutique-ecuestre/showroom/internal/leads"
	"github.com/boutique-ecuestre/showroom/internal/logger"
	"github.com/boutique-ecuestre/showroom/internal/metrics"
	"github.com/boutique-ecuestre/showroom/internal/middleware"
	"github.com/boutique-ecuestre/showroom/internal/static"
	"github.com/boutique-ecuestre/showroom/internal/template"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "showroom",
		Usage: "Sport horse showroom: catalog pages, JSON API and sell requests",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL connection URL for sell requests (empty: log only)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Value:   config.DefaultCatalogFile,
				Usage:   "TOML catalog file (empty: embedded catalog)",
				EnvVars: []string{"CATALOG_FILE"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Requests per minute per IP address",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.StringFlag{
				Name:    "whatsapp",
				Value:   config.DefaultWhatsAppNumber,
				Usage:   "WhatsApp number for the contact links, international format without +",
				EnvVars: []string{"WHATSAPP_NUMBER"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadEmbedded()
	}
	return catalog.LoadFile(path)
}

func run(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := c.String("port")

	horses, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	slog.Info("catalog loaded", "horses", horses.Len())

	var store leads.Store = leads.LogStore{}
	if url := c.String("database-url"); url != "" {
		pool, err := database.Connect(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		store, err = leads.NewPostgresStore(pool)
		if err != nil {
			return fmt.Errorf("failed to create lead store: %w", err)
		}
	} else {
		slog.Warn("no database configured, sell requests are only logged")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	leadService, err := leads.NewService(store, m)
	if err != nil {
		return fmt.Errorf("failed to create lead service: %w", err)
	}

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	h, err := handler.New(horses, leadService, tmpl, c.String("whatsapp"))
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	apiHandler, err := api.New(horses, leadService)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)
	for _, path := range static.Paths {
		mux.Handle("GET "+path, static.Handler())
	}
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	limiter, err := middleware.New(middleware.Config{
		Limit:          c.Int("rate-limit"),
		ExemptPaths:    append([]string{"/metrics"}, static.Paths...),
		ExemptPrefixes: []string{"/swagger/"},
	})
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      m.Middleware(middleware.CacheControl(limiter.Middleware(mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
