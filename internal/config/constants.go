package config

import "time"

const (
	envPort            = "PORT"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envMaxBodyBytes    = "MAX_BODY_BYTES"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	// Game payloads are tiny; 1 MiB leaves plenty of headroom.
	defaultMaxBodyBytes = 1 << 20
	defaultCORSOrigins  = "*"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "game-management-service"
)
