// Package app wires configuration into the HTTP server.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/euroleague-dashboard/external/dunkest"
	"github.com/riskibarqy/euroleague-dashboard/external/euroleague"
	"github.com/riskibarqy/euroleague-dashboard/external/upstream"
	"github.com/riskibarqy/euroleague-dashboard/internal/config"
	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
	rostercache "github.com/riskibarqy/euroleague-dashboard/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/euroleague-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/metrics"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/euroleague-dashboard/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	euroleagueClient := euroleague.NewClient(euroleague.ClientConfig{
		Transport:       transportConfig("euroleague", cfg.Euroleague, logger, recorder),
		CompetitionCode: cfg.EuroleagueCompetitionCode,
	})
	dunkestClient := dunkest.NewClient(dunkest.ClientConfig{
		Transport: transportConfig("dunkest", cfg.Dunkest, logger, recorder),
	})

	var fantasyRoster roster.Source = euroleagueClient
	if cfg.RosterCacheEnabled {
		fantasyRoster = rostercache.NewRosterSource(euroleagueClient, cfg.RosterCacheTTL)
	}

	fantasySvc := usecase.NewFantasyService(fantasyRoster, dunkestClient, usecase.FantasyServiceConfig{
		MatchWorkers: cfg.MatchWorkers,
		Logger:       logger.Named("fantasy"),
		Metrics:      recorder,
	})
	catalogSvc := usecase.NewCatalogService(euroleagueClient, cfg.CrestCacheTTL, logger.Named("catalog"))

	handler := httpapi.NewHandler(fantasySvc, catalogSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		Logger:             logger,
		Metrics:            recorder,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

// transportConfig builds the shared upstream settings. Outbound calls carry
// the request trace through otelhttp.
func transportConfig(name string, cfg config.UpstreamConfig, logger *logging.Logger, recorder *metrics.Recorder) upstream.Config {
	return upstream.Config{
		Name: name,
		HTTPClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			"User-Agent": "euroleague-dashboard/1.0",
		},
		Retry: resilience.RetryConfig{MaxRetries: cfg.MaxRetries},
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.CircuitEnabled,
			FailureThreshold: cfg.CircuitFailureCount,
			OpenTimeout:      cfg.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.CircuitHalfOpenMaxReq,
		},
		Logger:  logger,
		Metrics: recorder,
	}
}
