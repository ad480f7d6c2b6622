package components

import (
	"order-offer-service/internal/domain/pricing"
	"order-offer-service/internal/pkg/clock"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/usecase/commands"
	"order-offer-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferCommands,
		commands.NewOrderCommands,
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewOrderQueries,
	),
)

func NewCalculator(cfg config.Config) *pricing.DefaultCalculator {
	return pricing.NewDefaultCalculator(cfg.Pricing.LowChargeThreshold, cfg.Order.MinimalDurationSeconds)
}
