package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"alertstream/config"
	"alertstream/internal/delivery"
	"alertstream/internal/delivery/api"
	"alertstream/internal/delivery/api/router/handler"
	"alertstream/internal/domain/repository"
	"alertstream/internal/infra/auth"
	logs "alertstream/internal/infra/log"
	"alertstream/internal/infra/persistence"
	"alertstream/internal/infra/pubsub"
	"alertstream/internal/realtime"
	"alertstream/internal/usecase"
	"alertstream/internal/usecase/impl"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

type startRealtimeParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Manager   *realtime.Manager
	Scheduler *realtime.Scheduler
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectRealtime(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startRealtime,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clock.New,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectRealtime() fx.Option {
	return fx.Options(
		fx.Provide(
			realtime.NewRegistry,
			newConnectionManager,
			fx.Annotate(
				newDeliveryEngine,
				fx.As(new(impl.Deliverer)),
			),
			newScheduler,
		),
	)
}

// newConnectionManager creates the push connection manager with the configured heartbeat
func newConnectionManager(registry *realtime.Registry, clk clock.Clock, cfg *config.Config, logger *slog.Logger) *realtime.Manager {
	return realtime.NewManager(registry, clk, cfg.Realtime.HeartbeatInterval, logger)
}

// newDeliveryEngine creates the fan-out engine bounded by the configured worker count and write timeout
func newDeliveryEngine(registry *realtime.Registry, cfg *config.Config, logger *slog.Logger) *realtime.Engine {
	return realtime.NewEngine(registry, logger, cfg.Realtime.FanoutWorkers, cfg.Realtime.WriteTimeout)
}

// newScheduler creates the recurring automatic alert scheduler
func newScheduler(
	users repository.UserRepository,
	alerts repository.AlertRepository,
	dispatcher realtime.Dispatcher,
	clk clock.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) *realtime.Scheduler {
	return realtime.NewScheduler(realtime.SchedulerParams{
		Users:       users,
		Alerts:      alerts,
		Dispatcher:  dispatcher,
		Clock:       clk,
		Logger:      logger,
		TickTimeout: cfg.Realtime.TickTimeout,
	})
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAlertDispatcher,
			impl.NewAlertService,
			impl.NewUserService,
			newScheduleService,
			newStreamService,
		),
	)
}

func newScheduleService(scheduler *realtime.Scheduler, logger *slog.Logger) usecase.ScheduleUsecase {
	return impl.NewScheduleService(scheduler, logger)
}

func newStreamService(manager *realtime.Manager) usecase.StreamUsecase {
	return impl.NewStreamService(manager)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewScheduleHandler,
			handler.NewStreamHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

// startRealtime arms the default schedule. Its stop hook is appended after the servers'
// so open streams end before the HTTP server waits for in-flight requests.
func startRealtime(params startRealtimeParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			minutes := params.Config.Realtime.DefaultIntervalMinutes
			if minutes <= 0 {
				return nil
			}

			return params.Scheduler.SetInterval(time.Duration(minutes) * time.Minute)
		},
		OnStop: func(context.Context) error {
			params.Scheduler.Stop()
			params.Manager.Shutdown()
			params.Logger.Info("Realtime delivery stopped")

			return nil
		},
	})
}
