package httpapi

import (
	"net/http"

	"github.com/riskibarqy/euroleague-dashboard/internal/platform/metrics"
)

type routeRegistrar struct {
	mux     *http.ServeMux
	metrics *metrics.Recorder
}

func (r routeRegistrar) handle(pattern string, fn http.HandlerFunc) {
	r.mux.Handle(pattern, observeRoute(r.metrics, pattern, fn))
}

func registerSystemRoutes(r routeRegistrar, handler *Handler, recorder *metrics.Recorder) {
	r.mux.HandleFunc("GET /healthz", handler.Healthz)
	if recorder == nil {
		return
	}
	r.mux.Handle("GET /metrics", recorder.Handler())
}

func registerCatalogRoutes(r routeRegistrar, handler *Handler) {
	r.handle("GET /v1/seasons", handler.ListSeasons)
	r.handle("GET /v1/seasons/{seasonCode}/clubs", handler.ListSeasonClubs)
	r.handle("GET /v1/clubs/crests", handler.ListClubCrests)
}

func registerFantasyRoutes(r routeRegistrar, handler *Handler) {
	r.handle("GET /v1/fantasy/season/{seasonCode}/health", handler.FantasyHealth)
	r.handle("GET /v1/fantasy/season/{seasonCode}/players/stats", handler.ListFantasyPlayersStats)
	r.handle("GET /v1/fantasy/season/{seasonCode}/teams/pir-allowed", handler.ListFantasyTeamsPIRAllowed)
}
