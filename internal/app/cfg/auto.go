package cfg

import (
	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/app/apps"
)

// AutoCfg enables unattended play for a client.
type AutoCfg struct {
	auto bool
}

// NewAutoCfg creates a new AutoCfg from the given config.
func NewAutoCfg(auto bool) *AutoCfg {
	return &AutoCfg{
		auto: auto,
	}
}

// AutoFromEnv creates a new AutoCfg from the current environment.
func AutoFromEnv() *AutoCfg {
	return &AutoCfg{
		auto: internal.Auto,
	}
}

// ApplyClientApp applies the AutoCfg to a ClientApp.
func (cfg AutoCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Auto = cfg.auto
	return nil
}
