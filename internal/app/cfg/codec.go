package cfg

import (
	"github.com/lembowen/COSC340-A3/internal"
	"github.com/lembowen/COSC340-A3/internal/app/apps"
)

// CodecCfg selects the wire format for a session.
type CodecCfg struct {
	legacy bool
}

// NewCodecCfg creates a new CodecCfg from the given config.
func NewCodecCfg(legacy bool) *CodecCfg {
	return &CodecCfg{
		legacy: legacy,
	}
}

// CodecFromEnv creates a new CodecCfg from the current environment.
func CodecFromEnv() *CodecCfg {
	return &CodecCfg{
		legacy: internal.Legacy,
	}
}

// ApplyClientApp applies the CodecCfg to a ClientApp.
func (cfg CodecCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Legacy = cfg.legacy
	return nil
}

// ApplyServerApp applies the CodecCfg to a ServerApp.
func (cfg CodecCfg) ApplyServerApp(app *apps.ServerApp) error {
	app.Legacy = cfg.legacy
	return nil
}
