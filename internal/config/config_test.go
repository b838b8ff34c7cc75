package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout %s, got %s", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Fatalf("expected default max body %d, got %d", defaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("expected wildcard CORS origin by default, got %v", cfg.CORSOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected metrics enabled on %s, got %+v", defaultMetricsPort, cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envShutdownTimeout, "3s")
	t.Setenv(envMaxBodyBytes, "2048")
	t.Setenv(envCORSOrigins, "https://a.example, https://b.example,")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMetricsPort, "9191")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envOtelService, "games")
	t.Setenv(envOtelInsecure, "no")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Fatalf("expected max body 2048, got %d", cfg.MaxBodyBytes)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	want := MetricsConfig{Enabled: false, Port: "9191", OtlpEndpoint: "collector:4318", ServiceName: "games", OtlpInsecure: false}
	if cfg.Metrics != want {
		t.Fatalf("expected metrics %+v, got %+v", want, cfg.Metrics)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "not-a-duration")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on invalid value, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "0s")
	t.Setenv(envMaxBodyBytes, "-1")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on non-positive value, got %s", cfg.ShutdownTimeout)
	}
	if cfg.MaxBodyBytes != defaultMaxBodyBytes {
		t.Fatalf("expected default max body on non-positive value, got %d", cfg.MaxBodyBytes)
	}
}
