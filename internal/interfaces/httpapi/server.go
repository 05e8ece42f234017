package httpapi

import (
	"net/http"

	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/metrics"
)

type RouterConfig struct {
	Logger             *logging.Logger
	Metrics            *metrics.Recorder
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	routes := routeRegistrar{mux: mux, metrics: cfg.Metrics}
	registerSystemRoutes(routes, handler, cfg.Metrics)
	registerCatalogRoutes(routes, handler)
	registerFantasyRoutes(routes, handler)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
