package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("UPTRACE_ENABLED", "")
	t.Setenv("EUROLEAGUE_API_BASE_URL", "")
	t.Setenv("DUNKEST_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev || cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected app defaults: env=%q addr=%q", cfg.AppEnv, cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second || cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts: read=%s write=%s", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.Euroleague.BaseURL != "https://api-live.euroleague.net" || cfg.EuroleagueCompetitionCode != "E" {
		t.Fatalf("unexpected euroleague defaults: %+v code=%q", cfg.Euroleague, cfg.EuroleagueCompetitionCode)
	}
	if cfg.Dunkest.BaseURL != "https://www.dunkest.com" {
		t.Fatalf("unexpected dunkest base url: %q", cfg.Dunkest.BaseURL)
	}
	if cfg.Euroleague.MaxRetries != 0 || cfg.Dunkest.MaxRetries != 0 {
		t.Fatalf("upstream retries must default to 0")
	}
	if !cfg.Dunkest.CircuitEnabled || cfg.Dunkest.CircuitFailureCount != 5 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg.Dunkest)
	}
	if cfg.RosterCacheEnabled || cfg.RosterCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected roster cache defaults: enabled=%v ttl=%s", cfg.RosterCacheEnabled, cfg.RosterCacheTTL)
	}
	if cfg.CrestCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected crest cache ttl: %s", cfg.CrestCacheTTL)
	}
	if cfg.MatchWorkers != 4 || !cfg.MetricsEnabled {
		t.Fatalf("unexpected matching defaults: workers=%d metrics=%v", cfg.MatchWorkers, cfg.MetricsEnabled)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_UpstreamOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("EUROLEAGUE_API_BASE_URL", "http://localhost:9001")
	t.Setenv("EUROLEAGUE_COMPETITION_CODE", "u")
	t.Setenv("DUNKEST_BASE_URL", "http://localhost:9002")
	t.Setenv("DUNKEST_TIMEOUT", "3s")
	t.Setenv("DUNKEST_MAX_RETRIES", "2")
	t.Setenv("DUNKEST_CIRCUIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Euroleague.BaseURL != "http://localhost:9001" || cfg.EuroleagueCompetitionCode != "U" {
		t.Fatalf("unexpected euroleague config: %+v code=%q", cfg.Euroleague, cfg.EuroleagueCompetitionCode)
	}
	if cfg.Dunkest.BaseURL != "http://localhost:9002" || cfg.Dunkest.Timeout != 3*time.Second || cfg.Dunkest.MaxRetries != 2 {
		t.Fatalf("unexpected dunkest config: %+v", cfg.Dunkest)
	}
	if cfg.Dunkest.CircuitEnabled {
		t.Fatalf("expected dunkest circuit disabled")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "APP_LOG_LEVEL", value: "verbose"},
		{key: "APP_READ_TIMEOUT", value: "bad"},
		{key: "EUROLEAGUE_MAX_RETRIES", value: "-1"},
		{key: "DUNKEST_CIRCUIT_FAILURE_COUNT", value: "0"},
		{key: "DUNKEST_CIRCUIT_OPEN_TIMEOUT", value: "0s"},
		{key: "ROSTER_CACHE_ENABLED", value: "maybe"},
		{key: "CREST_CACHE_TTL", value: "-1m"},
		{key: "MATCH_WORKERS", value: "0"},
		{key: "CORS_ALLOWED_ORIGINS", value: " , "},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "euroleague-dashboard-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "euroleague-dashboard-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:3000 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:3000" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}
