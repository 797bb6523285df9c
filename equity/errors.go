package equity

import "fmt"

// ConfigError reports an estimate the deck cannot satisfy. It is
// returned before any trial runs.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return e.Msg
}

func newConfigError(format string, args ...interface{}) ConfigError {
	return ConfigError{Msg: fmt.Sprintf(format, args...)}
}
