package routes

import (
	"context"
	"fmt"

	"nanny_booking/internal/adapter/http/handlers"
	persistcache "nanny_booking/internal/adapter/persistence/cache"
	"nanny_booking/internal/adapter/persistence/repository"
	"nanny_booking/internal/infrastructure/bookings"
	"nanny_booking/internal/infrastructure/cache"
	"nanny_booking/internal/infrastructure/config"
	"nanny_booking/internal/infrastructure/database"
	"nanny_booking/internal/usecase"
	"nanny_booking/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// container owns the connections and use cases behind the router.
type container struct {
	sessions *usecase.PreferenceSessionUseCase
	handlers Handlers
	closers  []func(context.Context) error
}

func newContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*container, error) {
	app := &container{}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: %w", err)
	}

	var profiles interfaces.IProfileRepository
	switch cfg.ProfileStore {
	case config.ProfileStoreMongo:
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, client.Disconnect)
		profiles = repository.NewProfileMongoRepository(db)
	default:
		profiles = repository.NewProfileDynamoRepository(ddb, cfg.ProfilesTable)
	}
	logger.Info("profile store selected", zap.String("store", cfg.ProfileStore))

	redisClient, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		app.close(logger)
		return nil, err
	}
	app.closers = append(app.closers, func(context.Context) error { return redisClient.Close() })
	recovery := persistcache.NewRecoveryRedisCache(redisClient, 0, cfg.SelectionTTL())

	gateway, err := bookings.NewBookingRPCGateway(bookings.Options{
		BaseURL:  cfg.BookingServiceURL,
		Token:    cfg.BookingServiceToken,
		MockMode: cfg.BookingServiceMock,
	}, logger)
	if err != nil {
		app.close(logger)
		return nil, err
	}
	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.BookingsTable)

	persistence := usecase.NewPreferencePersistenceUseCase(profiles, recovery, cfg.SelectionTTL(), logger)
	app.sessions = usecase.NewPreferenceSessionUseCase(persistence, usecase.NewPersistenceScheduler(), usecase.SessionOptions{
		Debounce:     cfg.PersistDebounce(),
		FastDebounce: cfg.PersistFastDebounce(),
		WriteTimeout: cfg.PersistTimeout(),
		IdleTTL:      cfg.SessionIdleTTL(),
	}, logger)
	pricingUseCase := usecase.NewPricingUseCase(app.sessions)
	app.sessions.OnRelease(pricingUseCase.Forget)
	app.sessions.StartSweeper(ctx)
	submission := usecase.NewBookingSubmissionUseCase(app.sessions, gateway, bookingRepo, logger)

	app.handlers = Handlers{
		Preferences: handlers.NewPreferencesHandler(app.sessions),
		Pricing:     handlers.NewPricingHandler(pricingUseCase),
		Bookings:    handlers.NewBookingHandler(submission),
	}
	return app, nil
}

// close stops pending profile writes, then releases connections in reverse order.
func (a *container) close(logger *zap.Logger) {
	if a.sessions != nil {
		a.sessions.Shutdown()
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logger.Warn("closing dependency failed", zap.Error(err))
		}
	}
	a.closers = nil
}
