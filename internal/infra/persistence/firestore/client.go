// Package firestore implements the document store repositories on Cloud
// Firestore.
package firestore

import (
	"context"
	"log/slog"

	"wander/config"

	cloudstore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewClient creates the Firestore client and ties its shutdown to the
// application lifecycle.
func NewClient(params ClientParams) (*cloudstore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase project id is required")
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing firestore client")

			return client.Close()
		},
	})

	return client, nil
}
