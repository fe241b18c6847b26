package main

import (
	"context"
	"log/slog"
	"os"

	"wander/config"
	"wander/internal/delivery"
	"wander/internal/delivery/http"
	"wander/internal/delivery/http/middleware"
	"wander/internal/delivery/http/router/handler"
	"wander/internal/domain/entity"
	"wander/internal/domain/service"
	"wander/internal/infra/blobstore"
	"wander/internal/infra/identity"
	logs "wander/internal/infra/log"
	"wander/internal/infra/persistence/firestore"
	"wander/internal/usecase"
	"wander/internal/usecase/impl"

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
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bindSessionFeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewClient,
		identity.NewProvider,
		blobstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewPlaceRepository,
			firestore.NewProfileRepository,
			firestore.NewFavoriteRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewPlaceService,
			impl.NewFavoriteService,
			impl.NewPhotoService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewPlaceHandler,
			handler.NewFavoriteHandler,
			handler.NewPhotoHandler,
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

// bindSessionFeed connects the identity provider's change feed to the
// session usecase so every sign-in and sign-out flows through it.
func bindSessionFeed(ctx context.Context, provider service.IdentityProvider, session usecase.SessionUsecase) {
	provider.OnChange(func(identity *entity.Identity) {
		session.OnSessionChanged(ctx, identity)
	})
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
