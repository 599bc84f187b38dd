package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/copp1723/lane-google-sub002/internal/lib/config"
	"github.com/copp1723/lane-google-sub002/internal/lib/sl"
	"github.com/copp1723/lane-google-sub002/internal/mailer"
	"github.com/copp1723/lane-google-sub002/internal/queue"

	"github.com/joho/godotenv"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

// The worker consumes budget alert jobs published by the pacing loop and
// emails every admin-level member of the affected account.
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting alert worker", slog.String("env", cfg.Env))

	alertQueue, err := queue.Connect(cfg.Queue)
	if err != nil {
		log.Error("failed to connect to amqp", sl.Err(err))
		os.Exit(1)
	}
	defer alertQueue.Close()

	sender := mailer.New(cfg.Mailgun)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = alertQueue.ConsumeAlerts(ctx, log, func(ctx context.Context, alert queue.BudgetAlert) error {
		for _, to := range alert.Recipients {
			if err := sender.SendBudgetAlert(ctx, to, alert); err != nil {
				return err
			}
			log.Info("budget alert sent",
				slog.String("to", to),
				slog.String("campaign_id", alert.CampaignID),
				slog.String("action", alert.Action),
			)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("alert consumer stopped", sl.Err(err))
		os.Exit(1)
	}

	log.Info("alert worker stopped")
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
