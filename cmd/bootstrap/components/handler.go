package components

import (
	"order-offer-service/internal/handler"
	"order-offer-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOfferHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
