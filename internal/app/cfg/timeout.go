package cfg

import (
	"time"

	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/app/apps"
)

// IdleTimeoutCfg is configuration for the server's per-session idle timeout.
type IdleTimeoutCfg struct {
	timeout time.Duration
}

// NewIdleTimeoutCfg creates a new IdleTimeoutCfg from the given config.
func NewIdleTimeoutCfg(timeout time.Duration) *IdleTimeoutCfg {
	return &IdleTimeoutCfg{
		timeout: timeout,
	}
}

// IdleTimeoutFromEnv creates a new IdleTimeoutCfg from the current environment.
func IdleTimeoutFromEnv() *IdleTimeoutCfg {
	return &IdleTimeoutCfg{
		timeout: time.Duration(internal.IdleTimeoutMS) * time.Millisecond,
	}
}

// ApplyServerApp applies the IdleTimeoutCfg to a ServerApp.
func (cfg IdleTimeoutCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.IdleTimeout = cfg.timeout
	return nil
}
