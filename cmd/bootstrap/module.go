package bootstrap

import (
	"order-offer-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	ArchiveModule,
	components.PersistenceModule,
	components.ExternalModule,
	components.UseCaseModule,
	components.HandlerModule,
	JanitorModule,
)
