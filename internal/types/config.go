package types

type RunMode string

const (
	// ModeLocal runs the API server and the order event router in one process
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
)

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
