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

	_ "github.com/mtlprog/giftideas/docs"
	"github.com/mtlprog/giftideas/internal/api"
	"github.com/mtlprog/giftideas/internal/config"
	"github.com/mtlprog/giftideas/internal/database"
	"github.com/mtlprog/giftideas/internal/gift"
	"github.com/mtlprog/giftideas/internal/handler"
	"github.com/mtlprog/giftideas/internal/history"
	"github.com/mtlprog/giftideas/internal/middleware"
	"github.com/mtlprog/giftideas/internal/model"
	"github.com/mtlprog/giftideas/internal/service"
	"github.com/mtlprog/giftideas/internal/session"
	"github.com/mtlprog/giftideas/internal/static"
	"github.com/mtlprog/giftideas/internal/template"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := config.LoadFile(c.String("config"))
	if err != nil {
		return err
	}
	initial := file.Form()

	svc, err := service.NewGiftService(resolveAPIURL(c, file), service.WithMaxInFlight(c.Int("max-in-flight")))
	if err != nil {
		return fmt.Errorf("failed to create gift service: %w", err)
	}

	var (
		gen      gift.Generator = svc
		lister   handler.HistoryLister
		storeURL = c.String("database-url")
	)
	if storeURL != "" {
		pool, err := database.Connect(ctx, storeURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		repo, err := history.NewRepository(pool)
		if err != nil {
			return err
		}
		recorder, err := history.NewRecorder(svc, repo)
		if err != nil {
			return err
		}
		gen, lister = recorder, repo
		slog.Info("suggestion history enabled")
	}

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	ctrlLogger := slog.Default().With("component", "gift")
	store, err := session.NewStore(func(in model.FormInput) *gift.Controller {
		return gift.NewController(gen, in, gift.WithLogger(ctrlLogger))
	}, initial, c.Duration("session-ttl"))
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	defer store.Close()

	h, err := handler.New(store, lister, tmpl,
		handler.WithHistoryLimit(c.Int("history-limit")),
		handler.WithMarkdown(c.Bool("markdown")),
	)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	apiHandler, err := api.New(gen, initial, lister)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	limiter, err := middleware.New(c.Int("rate-limit"), nil)
	if err != nil {
		return fmt.Errorf("failed to create rate limiter: %w", err)
	}
	defer limiter.Close()

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)
	for _, path := range static.Paths {
		mux.Handle("GET "+path, static.Handler())
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	port := c.String("port")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      middleware.CacheControl(limiter.Middleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "server_addr", "http://localhost:"+port, "api_url", svc.Endpoint())
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
