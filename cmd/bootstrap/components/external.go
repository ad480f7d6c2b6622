package components

import (
	"log/slog"

	"order-offer-service/internal/infra/external"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		NewUpstreamClient,
		fx.Annotate(
			external.NewVehicleClient,
			fx.As(new(shared.VehicleService)),
		),
		fx.Annotate(
			external.NewPaymentClient,
			fx.As(new(shared.PaymentService)),
		),
		fx.Annotate(
			external.NewZoneClient,
			fx.As(new(shared.ZoneDirectory)),
		),
		fx.Annotate(
			external.NewUserClient,
			fx.As(new(shared.UserDirectory)),
		),
		fx.Annotate(
			external.NewPriceConfigClient,
			fx.As(new(shared.PriceConfigSource)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger) *external.Client {
	return external.NewClient(cfg.Upstream, logger)
}
