package main

import (
	"context"
	"log/slog"
	"os"

	"homepros/config"
	"homepros/internal/delivery"
	"homepros/internal/delivery/http"
	"homepros/internal/delivery/http/middleware"
	"homepros/internal/delivery/http/router/handler"
	"homepros/internal/domain/service"
	"homepros/internal/infra/auth"
	"homepros/internal/infra/billing"
	"homepros/internal/infra/geocode"
	logs "homepros/internal/infra/log"
	"homepros/internal/infra/media"
	"homepros/internal/infra/persistence/postgres"
	"homepros/internal/infra/pubsub"
	"homepros/internal/infra/qrcode"
	"homepros/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewCategoryRepository,
			postgres.NewPhotoRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			billing.NewStripeGateway,
			geocode.NewZipResolver,
			media.NewBlobStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewListingService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewServiceHandler,
			handler.NewListingHandler,
			handler.NewSubscriptionHandler,
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
