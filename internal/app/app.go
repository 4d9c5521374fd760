package app

import (
	"context"
	"os"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bookings/internal/application/services"
	"bookings/internal/config"
	"bookings/internal/domain/bookings"
	"bookings/internal/infrastructure/event_publisher"
	"bookings/internal/interfaces/events"
	"bookings/internal/interfaces/http"
)

type App struct {
	logger zerolog.Logger
	router *message.Router
	srv    *http.Server
}

func NewApp(
	cfg *config.Config,
	event bookings.Event,
	watermillLogger watermill.LoggerAdapter,
	squareClient services.CheckoutClient,
	listingClient services.ListingClient,
	emailSender events.EmailSender,
	redisClient *redis.Client,
) (*App, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	var publisher message.Publisher
	publisher, err = redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: redisClient,
	}, watermillLogger)
	if err != nil {
		return nil, err
	}

	publisher = event_publisher.CorrelationPublisherDecorator{
		Publisher: publisher,
	}
	eventBus, err := events.NewEventBus(publisher, watermillLogger)
	if err != nil {
		return nil, err
	}

	checkoutService := services.NewCheckoutService(
		squareClient,
		eventBus,
		event,
		services.CheckoutConfig{
			LocationID:     cfg.SquareLocationID,
			ItemID:         cfg.SquareItemID,
			CatalogVersion: cfg.SquareCatalogVersion,
		},
	)
	listingService := services.NewListingService(
		listingClient,
		services.ListingConfig{
			LocationID: cfg.SquareLocationID,
			SourceName: cfg.SquareSourceName,
		},
	)
	notifier := services.NewBookingNotifier(eventBus, event.Name)

	srv := http.NewServer(
		cfg.HTTPAddr,
		event,
		checkoutService,
		listingService,
		notifier,
		router.IsRunning,
	)

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	// skip marshalling errors before retrying
	router.AddMiddleware(events.SkipMarshallingErrorsMiddleware)

	processor, err := events.NewEventProcessor(router, redisClient, watermillLogger)
	if err != nil {
		return nil, err
	}
	err = processor.AddHandlers(
		events.BookingEmailHandler(emailSender),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		logger: zerolog.New(os.Stdout),
		router: router,
		srv:    srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")

		return a.router.Run(ctx)
	})

	g.Go(func() error {
		<-a.router.Running()
		a.logger.Info().Msg("router is running")

		a.logger.Info().Msg("starting server")
		return a.srv.Start()
	})

	g.Go(func() error {
		<-ctx.Done()

		err := a.srv.Stop(context.Background())
		if err != nil {
			a.logger.Err(err).Msg("error stopping server")
		}

		return err
	})

	return g.Wait()
}
