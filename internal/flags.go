// Package internal defines the process environment: the command line flags
// and the environment variable fallbacks they are bound to.
package internal

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Flag binding targets, populated from the command line or the environment.
var (
	Env      string
	LogLevel string

	Host       string
	Port       int
	HealthPort int

	Legacy bool
	Auto   bool

	IdleTimeoutMS int
)

// Flag describes one command line flag and its environment variable fallback.
type Flag struct {
	Name  string
	Env   string
	Usage string

	Target  interface{}
	Default interface{}
}

// Flag definitions.
var (
	EnvFlag = Flag{
		Name:    "env",
		Env:     "BATTLESHIP_ENV",
		Usage:   "path to a dotenv file to load before anything else",
		Target:  &Env,
		Default: "",
	}
	LogLevelFlag = Flag{
		Name:    "log-level",
		Env:     "BATTLESHIP_LOG_LEVEL",
		Usage:   "log level (trace|debug|info|warn|error)",
		Target:  &LogLevel,
		Default: "info",
	}
	HostFlag = Flag{
		Name:    "host",
		Env:     "BATTLESHIP_HOST",
		Usage:   "host to bind (server) or connect to (client)",
		Target:  &Host,
		Default: "localhost",
	}
	PortFlag = Flag{
		Name:    "port",
		Env:     "BATTLESHIP_PORT",
		Usage:   "port to bind (server) or connect to (client)",
		Target:  &Port,
		Default: 5050,
	}
	HealthPortFlag = Flag{
		Name:    "health-port",
		Env:     "BATTLESHIP_HEALTH_PORT",
		Usage:   "port for the liveness endpoint (0 disables it)",
		Target:  &HealthPort,
		Default: 0,
	}
	LegacyFlag = Flag{
		Name:    "legacy",
		Env:     "BATTLESHIP_LEGACY",
		Usage:   "speak the legacy plain-text wire format",
		Target:  &Legacy,
		Default: false,
	}
	AutoFlag = Flag{
		Name:    "auto",
		Env:     "BATTLESHIP_AUTO",
		Usage:   "fire at every cell in a random order instead of prompting",
		Target:  &Auto,
		Default: false,
	}
	IdleTimeoutMSFlag = Flag{
		Name:    "idle-timeout-ms",
		Env:     "BATTLESHIP_IDLE_TIMEOUT_MS",
		Usage:   "drop a session if the peer sends nothing for this long (0 waits forever)",
		Target:  &IdleTimeoutMS,
		Default: 0,
	}
)

// RegisterCommandFlags registers the given flags on the command, binding each
// one to its target variable.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	for _, flag := range flags {
		switch target := flag.Target.(type) {
		case *string:
			def, ok := flag.Default.(string)
			if !ok {
				return errors.Errorf("flag %s: default is not a string", flag.Name)
			}
			cmd.PersistentFlags().StringVar(target, flag.Name, def, flag.Usage)
		case *int:
			def, ok := flag.Default.(int)
			if !ok {
				return errors.Errorf("flag %s: default is not an int", flag.Name)
			}
			cmd.PersistentFlags().IntVar(target, flag.Name, def, flag.Usage)
		case *bool:
			def, ok := flag.Default.(bool)
			if !ok {
				return errors.Errorf("flag %s: default is not a bool", flag.Name)
			}
			cmd.PersistentFlags().BoolVar(target, flag.Name, def, flag.Usage)
		default:
			return errors.Errorf("flag %s: unsupported target type %T", flag.Name, flag.Target)
		}
	}
	return nil
}
