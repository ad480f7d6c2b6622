package bootstrap

import (
	"context"
	"log/slog"

	"order-offer-service/internal/infra/archive"
	"order-offer-service/internal/pkg/config"
	"order-offer-service/internal/usecase/shared"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/fx"
)

var ArchiveModule = fx.Module("archive",
	fx.Provide(
		NewStorageClient,
		fx.Annotate(
			NewArchiveStore,
			fx.As(new(shared.ArchiveStore)),
		),
	),
)

func NewStorageClient(lc fx.Lifecycle, cfg config.Config) (*gcs.Client, error) {
	client, err := archive.NewClient(context.Background(), cfg.Archive)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func NewArchiveStore(lc fx.Lifecycle, client *gcs.Client, cfg config.Config, logger *slog.Logger) (*archive.GCSStore, error) {
	store, err := archive.NewGCSStore(client, cfg.Archive, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.EnsureBucket(ctx)
		},
	})

	return store, nil
}
