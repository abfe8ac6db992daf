package cfg

import (
	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/app/apps"
)

// HealthPortCfg is configuration for the liveness endpoint port.
type HealthPortCfg struct {
	port uint16
}

// NewHealthPortCfg creates a new HealthPortCfg from the given config.
func NewHealthPortCfg(port uint16) *HealthPortCfg {
	return &HealthPortCfg{
		port: port,
	}
}

// HealthPortFromEnv creates a new HealthPortCfg from the current environment.
func HealthPortFromEnv() *HealthPortCfg {
	return &HealthPortCfg{
		port: uint16(internal.HealthPort),
	}
}

// ApplyServerApp applies the HealthPortCfg to a ServerApp.
func (cfg HealthPortCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.HealthPort = cfg.port
	return nil
}
