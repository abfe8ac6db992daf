package apps

import (
	"context"
	"time"

	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/pkg/health"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"
	"github.com/lembowen/COSC340-A3/internal/pkg/server"
	"github.com/lembowen/COSC340-A3/internal/pkg/validate"

	"github.com/pkg/errors"
)

// ServerAppCfg configures a ServerApp.
type ServerAppCfg interface {
	ApplyServerApp(*ServerApp) error
}

// ServerApp is the battleship server application.
type ServerApp struct {
	Host        string `validate:"required"`
	Port        uint16 `validate:"required"`
	HealthPort  uint16
	Legacy      bool
	IdleTimeout time.Duration
}

// NewServerApp creates a new ServerApp.
func NewServerApp(cfgs ...ServerAppCfg) (*ServerApp, error) {
	app := &ServerApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyServerApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ServerApp cfg failed")
		}
	}
	if app.Host == "" {
		app.Host = internal.Host
	}
	if app.Port == 0 {
		app.Port = uint16(internal.Port)
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ServerApp failed")
	}
	return app, nil
}

// Run hosts games until ctx is cancelled.
func (app *ServerApp) Run(ctx context.Context, args []string) error {
	codec := protocol.Codec(protocol.JSONCodec{})
	if app.Legacy {
		codec = protocol.LegacyCodec{}
	}
	srv, err := server.NewServer(
		server.WithHost(app.Host),
		server.WithPort(app.Port),
		server.WithCodec(codec),
		server.WithIdleTimeout(app.IdleTimeout),
	)
	if err != nil {
		return errors.Wrap(err, "create server failed")
	}
	if app.HealthPort != 0 {
		go func() {
			if err := health.Serve(ctx, app.HealthPort); err != nil {
				logger.WithError(err).Error("health endpoint failed")
			}
		}()
	}
	return errors.Wrap(srv.Run(ctx), "run server failed")
}
