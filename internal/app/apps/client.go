package apps

import (
	"context"
	"math/rand"
	"time"

	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/pkg/client"
	"github.com/lembowen/COSC340-A3/internal/pkg/protocol"
	"github.com/lembowen/COSC340-A3/internal/pkg/validate"

	"github.com/pkg/errors"
)

// ClientAppCfg configures a ClientApp.
type ClientAppCfg interface {
	ApplyClientApp(*ClientApp) error
}

// ClientApp is the battleship client application.
type ClientApp struct {
	Host   string `validate:"required"`
	Port   uint16 `validate:"required"`
	Auto   bool
	Legacy bool
}

// NewClientApp creates a new ClientApp.
func NewClientApp(cfgs ...ClientAppCfg) (*ClientApp, error) {
	app := &ClientApp{}
	for _, cfg := range cfgs {
		if err := cfg.ApplyClientApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ClientApp cfg failed")
		}
	}
	if app.Host == "" {
		app.Host = internal.Host
	}
	if app.Port == 0 {
		app.Port = uint16(internal.Port)
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ClientApp failed")
	}
	return app, nil
}

// Run plays one game against the server.
func (app *ClientApp) Run(ctx context.Context, args []string) error {
	codec := protocol.Codec(protocol.JSONCodec{})
	if app.Legacy {
		codec = protocol.LegacyCodec{}
	}
	cfgs := []client.Cfg{
		client.WithServerAddr(app.Host, app.Port),
		client.WithCodec(codec),
	}
	if app.Auto {
		rng := rand.New(rand.NewSource(time.Now().UnixNano())) // nolint: gosec // shot ordering, not crypto
		cfgs = append(cfgs,
			client.WithShotSource(client.NewAutoSource(rng)),
			// Unattended play has nobody watching the board.
			client.WithOutput(nil),
		)
	}
	c, err := client.NewClient(cfgs...)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}
	if err := c.Connect(ctx); err != nil {
		return errors.Wrap(err, "connect client failed")
	}
	return errors.Wrap(c.Run(ctx), "run client failed")
}
