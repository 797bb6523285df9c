package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type environment struct {
	LogLevel           string
	SimWorkers         string
	DisableEquityCache string
}

// Env is a helper object for accessing environment variables.
var Env = &environment{
	LogLevel:           "LOG_LEVEL",
	SimWorkers:         "SIM_WORKERS",
	DisableEquityCache: "DISABLE_EQUITY_CACHE",
}

func (e *environment) GetLogLevel() string {
	v := os.Getenv(e.LogLevel)
	if v == "" {
		defaultVal := "info"
		return defaultVal
	}
	return v
}

func (e *environment) GetZeroLogLogLevel() zerolog.Level {
	l := e.GetLogLevel()
	switch strings.ToLower(l) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		fallthrough
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		panic(fmt.Sprintf("Unsupported %s: %s", e.LogLevel, l))
	}
}

// GetSimWorkers returns the number of simulation workers to use when
// the config does not name one.
func (e *environment) GetSimWorkers(defaultWorkers int) int {
	v := os.Getenv(e.SimWorkers)
	if v == "" {
		return defaultWorkers
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		environmentLogger.Warn().Msgf("Invalid %s [%s]. Using default %d", e.SimWorkers, v, defaultWorkers)
		return defaultWorkers
	}
	return n
}

func (e *environment) GetDisableEquityCache() string {
	v := os.Getenv(e.DisableEquityCache)
	if v == "" {
		return "false"
	}
	return v
}

func (e *environment) IsEquityCacheDisabled() bool {
	return e.GetDisableEquityCache() == "1" || strings.ToLower(e.GetDisableEquityCache()) == "true"
}
