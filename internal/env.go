package internal

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ValidateEnv loads the dotenv file named by the env flag, applies
// environment variable fallbacks to any flag left at its default, and
// sanity-checks the result. Explicit command line values win over the
// environment.
func ValidateEnv() error {
	if Env != "" {
		if err := godotenv.Load(Env); err != nil {
			return errors.Wrapf(err, "load env file %s failed", Env)
		}
	}
	for _, flag := range []*Flag{
		&LogLevelFlag,
		&HostFlag,
		&PortFlag,
		&HealthPortFlag,
		&LegacyFlag,
		&AutoFlag,
		&IdleTimeoutMSFlag,
	} {
		if err := applyEnvFallback(flag); err != nil {
			return errors.Wrapf(err, "apply %s failed", flag.Env)
		}
	}
	if Port <= 0 || Port > 65535 {
		return errors.Errorf("port %d out of range", Port)
	}
	if HealthPort < 0 || HealthPort > 65535 {
		return errors.Errorf("health port %d out of range", HealthPort)
	}
	if IdleTimeoutMS < 0 {
		return errors.Errorf("idle timeout %dms must not be negative", IdleTimeoutMS)
	}
	return nil
}

func applyEnvFallback(flag *Flag) error {
	val, ok := os.LookupEnv(flag.Env)
	if !ok {
		return nil
	}
	switch target := flag.Target.(type) {
	case *string:
		if *target != flag.Default.(string) {
			return nil
		}
		*target = val
	case *int:
		if *target != flag.Default.(int) {
			return nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "parse %q as int failed", val)
		}
		*target = n
	case *bool:
		if *target != flag.Default.(bool) {
			return nil
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Wrapf(err, "parse %q as bool failed", val)
		}
		*target = b
	default:
		return errors.Errorf("unsupported target type %T", flag.Target)
	}
	return nil
}
