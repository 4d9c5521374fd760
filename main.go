package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"bookings/internal/app"
	"bookings/internal/config"
	"bookings/internal/domain/bookings"
	"bookings/internal/email"
	"bookings/internal/infrastructure/clients"
	"bookings/internal/observability"
)

// currentEvent is the single event this deployment sells tickets for.
func currentEvent() bookings.Event {
	return bookings.Event{
		ID:      "xmas2023",
		Name:    "Little Stukeley Christmas Dinner",
		Tagline: "Get your tickets for the final village event of the year!",
		TicketTypes: bookings.TicketTypes{
			{
				Name:                 "Adult",
				Price:                decimal.New(1500, -2),
				SquareItemID:         "VF54IAUH3FRNQMNE7T43ZXUB",
				SquareCatalogVersion: 1700477397626,
			},
		},
	}
}

func main() {
	observability.Init(logrus.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	squareClient := clients.NewSquareClient(cfg.SquareEndpoint, cfg.SquareAPIKey)
	emailSender := email.NewSender(email.Config{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		User:     cfg.EmailUser,
		Password: cfg.EmailPassword,
		From:     cfg.EmailFrom,
		To:       cfg.EmailTo,
	})

	a, err := app.NewApp(
		cfg,
		currentEvent(),
		observability.NewWatermillLogger(),
		squareClient,
		squareClient,
		emailSender,
		redisClient,
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build app")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("app stopped with error")
	}
}
