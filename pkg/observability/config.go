package observability

import (
	"io"
	"log/slog"
)

const (
	defaultServiceName        = "endorse"
	defaultShutdownTimeoutSec = 5
)

// Config controls telemetry setup for one process.
type Config struct {
	// ServiceName is reported as the OTel service.name and on every log line.
	ServiceName string

	// ServiceVersion is reported as service.version when set.
	ServiceVersion string

	// OTLPEndpoint is the gRPC collector address. Empty selects no-op providers.
	OTLPEndpoint string

	// OTLPInsecure disables TLS towards the collector.
	OTLPInsecure bool

	// LogLevel is the minimum level written by the logger.
	LogLevel slog.Level

	// LogJSON selects JSON log lines instead of logfmt-style text.
	LogJSON bool

	// LogOutput receives log lines. Nil means standard error.
	LogOutput io.Writer

	// ShutdownTimeoutSec bounds the final telemetry flush.
	ShutdownTimeoutSec int
}

// DefaultConfig returns the settings used by the CLI before flags are applied.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		LogLevel:           slog.LevelInfo,
		OTLPInsecure:       true,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
