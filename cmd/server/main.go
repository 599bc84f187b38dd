package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/copp1723/lane-google-sub002/internal/ads"
	"github.com/copp1723/lane-google-sub002/internal/cache"
	"github.com/copp1723/lane-google-sub002/internal/http/handlers"
	accounth "github.com/copp1723/lane-google-sub002/internal/http/handlers/account"
	authh "github.com/copp1723/lane-google-sub002/internal/http/handlers/auth"
	briefh "github.com/copp1723/lane-google-sub002/internal/http/handlers/brief"
	campaignh "github.com/copp1723/lane-google-sub002/internal/http/handlers/campaign"
	monitoringh "github.com/copp1723/lane-google-sub002/internal/http/handlers/monitoring"
	pacingh "github.com/copp1723/lane-google-sub002/internal/http/handlers/pacing"
	performanceh "github.com/copp1723/lane-google-sub002/internal/http/handlers/performance"
	mw "github.com/copp1723/lane-google-sub002/internal/http/middleware"
	"github.com/copp1723/lane-google-sub002/internal/lib/config"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/llm"
	"github.com/copp1723/lane-google-sub002/internal/queue"
	repo "github.com/copp1723/lane-google-sub002/internal/repository"
	"github.com/copp1723/lane-google-sub002/internal/service/account"
	"github.com/copp1723/lane-google-sub002/internal/service/auth"
	"github.com/copp1723/lane-google-sub002/internal/service/brief"
	"github.com/copp1723/lane-google-sub002/internal/service/campaign"
	"github.com/copp1723/lane-google-sub002/internal/service/monitoring"
	"github.com/copp1723/lane-google-sub002/internal/service/pacing"
	"github.com/copp1723/lane-google-sub002/internal/service/performance"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting campaign management service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(dsn); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	accountRepo := repo.NewAccountRepo(db, trmsqlx.DefaultCtxGetter)
	campaignRepo := repo.NewCampaignRepo(db, trmsqlx.DefaultCtxGetter)
	spendRepo := repo.NewSpendRepo(db, trmsqlx.DefaultCtxGetter)
	pacingRepo := repo.NewPacingRepo(db, trmsqlx.DefaultCtxGetter)
	conversationRepo := repo.NewConversationRepo(db, trmsqlx.DefaultCtxGetter)
	briefRepo := repo.NewBriefRepo(db, trmsqlx.DefaultCtxGetter)

	// the dashboard works without Redis, every summary just hits Postgres
	summaryCache, err := cache.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, summaries will not be cached", sl.Err(err))
		summaryCache = nil
	} else {
		defer summaryCache.Close()
	}

	// same for the broker: without it pacing alerts are logged and dropped
	alertQueue, err := queue.Connect(cfg.Queue)
	if err != nil {
		log.Warn("amqp unavailable, budget alerts will not be emailed", sl.Err(err))
		alertQueue = nil
	} else {
		defer alertQueue.Close()
	}

	adsClient := ads.New(cfg.GoogleAds)
	model := llm.New(cfg.OpenRouter)

	// assigning through these keeps a typed nil out of the interface values,
	// so the services' nil checks still short-circuit
	var (
		pacingCache pacing.SummaryCache
		perfCache   performance.SummaryCache
		cachePing   monitoring.Pinger
		alerts      queue.AlertPublisher
	)
	if summaryCache != nil {
		pacingCache = summaryCache
		perfCache = summaryCache
		cachePing = summaryCache
	}
	if alertQueue != nil {
		alerts = alertQueue
	}

	authService := auth.NewAuthService(userRepo, cfg.Auth.TokenTTL)
	accountService := account.NewAccountService(trManager, accountRepo, accountRepo, userRepo)
	campaignService := campaign.NewCampaignService(trManager, campaignRepo, accountRepo, accountRepo, adsClient, log)
	pacingService := pacing.NewPacingService(campaignRepo, spendRepo, accountRepo, pacingCache, cfg.Pacing.TrailingWindow, log)
	performanceService := performance.NewPerformanceService(spendRepo, accountRepo, perfCache, log)
	monitoringService := monitoring.NewMonitoringService(campaignRepo, pacingRepo, accountRepo, db.PingContext, cachePing, adsClient)
	briefService := brief.NewBriefService(trManager, conversationRepo, briefRepo, accountRepo, campaignService, model)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pacer := pacing.NewPacer(
		trManager,
		accountRepo,
		campaignRepo,
		spendRepo,
		pacingRepo,
		adsClient,
		alerts,
		log,
		cfg.Pacing.Interval,
		cfg.Pacing.TrailingWindow,
		cfg.Pacing.ResumeThreshold,
	)
	go pacer.Run(ctx)

	collector := performance.NewCollector(
		accountRepo,
		campaignRepo,
		spendRepo,
		adsClient,
		log,
		cfg.Collector.Interval,
		cfg.Collector.Lookback,
	)
	go collector.Run(ctx)

	authHandler := authh.NewAuthHandler(log, authService)
	accountHandler := accounth.NewAccountHandler(log, accountService)
	campaignHandler := campaignh.NewCampaignHandler(log, campaignService)
	pacingHandler := pacingh.NewPacingHandler(log, pacingService)
	performanceHandler := performanceh.NewPerformanceHandler(log, performanceService)
	monitoringHandler := monitoringh.NewMonitoringHandler(log, monitoringService)
	briefHandler := briefh.NewBriefHandler(log, briefService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mw.Metrics)

	// public methods
	router.Get("/health", handlers.Healthcheck())
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Post("/api/auth/register", authHandler.Register)
	router.Post("/api/auth/login", authHandler.Login)

	// authenticated methods
	router.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)

		r.Post("/api/accounts", accountHandler.Create)
		r.Get("/api/accounts", accountHandler.List)
		r.Get("/api/accounts/{accountId}", accountHandler.Get)
		r.Put("/api/accounts/{accountId}/members", accountHandler.SetMember)
		r.Put("/api/accounts/{accountId}/auto-pause", accountHandler.SetAutoPause)

		r.Post("/api/campaigns", campaignHandler.Create)
		r.Get("/api/campaigns", campaignHandler.List)
		r.Get("/api/campaigns/{campaignId}", campaignHandler.Get)
		r.Put("/api/campaigns/{campaignId}", campaignHandler.Update)
		r.Delete("/api/campaigns/{campaignId}", campaignHandler.Delete)
		r.Post("/api/campaigns/{campaignId}/transition", campaignHandler.Transition)

		r.Get("/api/budget-pacing/summary/{customerId}", pacingHandler.Summary)
		r.Get("/api/performance/summary/{customerId}", performanceHandler.Summary)
		r.Get("/api/monitoring/status/{customerId}", monitoringHandler.Status)

		r.Post("/api/briefs/conversations", briefHandler.StartConversation)
		r.Post("/api/briefs/conversations/{conversationId}/messages", briefHandler.Chat)
		r.Post("/api/briefs/conversations/{conversationId}/generate", briefHandler.Generate)
		r.Post("/api/briefs/{briefId}/create-campaign", briefHandler.CreateCampaign)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", sl.Err(err))
	}

	log.Info("http server stopped")
}

func runMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
