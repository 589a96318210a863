package config

import (
	"github.com/ferdian3456/tcbridge/internal/observability"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// LoadObservabilityConfig reads tracing settings. Tracing is optional and
// only enabled when an OTLP endpoint is configured.
func LoadObservabilityConfig(config *koanf.Koanf, log *zap.Logger) (observability.Config, bool) {
	observabilityConfig := observability.Config{
		OtelEndpoint: config.String("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  config.String("OTEL_SERVICE_NAME"),
		Environment:  config.String("ENVIRONMENT"),
		OtelHeaders:  config.String("OTEL_EXPORTER_OTLP_HEADERS"),
	}

	if observabilityConfig.OtelEndpoint == "" {
		log.Info("otel endpoint not configured, tracing disabled")
		return observabilityConfig, false
	}

	if observabilityConfig.ServiceName == "" {
		observabilityConfig.ServiceName = "tcbridge"
	}

	return observabilityConfig, true
}
