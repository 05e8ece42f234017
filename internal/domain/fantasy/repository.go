package fantasy

import "context"

// Source describes the fantasy statistics provider.
type Source interface {
	FetchPlayerStats(ctx context.Context, req PlayerStatsRequest) ([]Record, error)
	FetchTeamsPIRAllowed(ctx context.Context, req TeamsPIRRequest) ([]Record, error)
}
