// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses zerolog for structured logging and integrates with New Relic
// to instrument the codebase, forwarding logs, metrics, and traces.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jdnielss/socialmedia-api/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is not configured (empty license key), the wrapper
// exists but GetApplication returns nil, and every consumer degrades
// into a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes pending telemetry and stops the agent.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the New Relic service wrapper.
//
// Behavior:
//   - log level comes from observability config (env-sensitive default)
//   - "console" format writes human-friendly output, otherwise JSON
//   - when New Relic is configured with log forwarding enabled, log
//     output is routed through zerologWriter so entries carry trace
//     context and reach the APM backend
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	obs := cfg.Observability
	if obs.NewRelic.LicenseKey != "" {
		opts := []newrelic.ConfigOption{
			newrelic.ConfigAppName(obs.ServiceName),
			newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		}
		if obs.NewRelic.DebugLogging {
			opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
		}

		nrApp, err := newrelic.NewApplication(opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic application: %w", err)
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	if obs.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	var log zerolog.Logger
	if service.nrApp != nil && obs.NewRelic.AppLogForwardingEnabled {
		writer := zerologWriter.New(out, service.nrApp)
		log = zerolog.New(writer).Level(level).With().
			Timestamp().
			Str("service", obs.ServiceName).
			Str("env", obs.Environment).
			Logger()
	} else {
		log = zerolog.New(out).Level(level).With().
			Timestamp().
			Str("service", obs.ServiceName).
			Str("env", obs.Environment).
			Logger()
	}

	return &log, service, nil
}

// WithTraceContext returns a copy of the logger carrying the New Relic
// trace correlation fields, so log lines can be joined with traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()
	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
