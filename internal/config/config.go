package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ShutdownTimeout Duration
	MaxBodyBytes    int
	CORSOrigins     []string
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		MaxBodyBytes:    intEnvOrDefault(envMaxBodyBytes, defaultMaxBodyBytes),
		CORSOrigins:     listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Metrics:         loadMetrics(),
	}
}
