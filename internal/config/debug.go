package config

import (
	"os"
	"strconv"
)

// IsDebug is checked before the config is parsed so that config loading
// itself can log at debug level.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("TUSK_DEBUG"))
	return debug
}
