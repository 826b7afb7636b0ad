package main

import (
	"context"
	"log/slog"
	"os"

	"foodcourt/config"
	"foodcourt/internal/delivery"
	"foodcourt/internal/delivery/http"
	"foodcourt/internal/delivery/http/middleware"
	"foodcourt/internal/delivery/http/router/handler"
	"foodcourt/internal/infra/auth"
	logs "foodcourt/internal/infra/log"
	"foodcourt/internal/infra/metrics"
	"foodcourt/internal/infra/persistence/postgres"
	"foodcourt/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newPrometheusRegistry,
		newMetricsCollector,
	)
}

// newPrometheusRegistry builds the process-wide metrics registry with the
// standard Go and process collectors preinstalled.
func newPrometheusRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

func newMetricsCollector(registry *prometheus.Registry) metrics.MetricsCollector {
	return metrics.NewCollector(registry)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFoodRepository,
			postgres.NewPurchaseRepository,
			postgres.NewUserRepository,
			postgres.NewGalleryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFoodService,
			impl.NewPurchaseService,
			impl.NewUserService,
			impl.NewGalleryService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFoodHandler,
			handler.NewPurchaseHandler,
			handler.NewUserHandler,
			handler.NewGalleryHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
