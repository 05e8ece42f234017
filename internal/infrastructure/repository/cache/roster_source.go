package cache

import (
	"context"
	"strings"
	"time"

	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
	basecache "github.com/riskibarqy/euroleague-dashboard/internal/platform/cache"
)

// RosterSource memoizes a roster.Source per season. Callers get their own
// copy of every slice.
type RosterSource struct {
	next    roster.Source
	seasons *basecache.Store[[]roster.Season]
	people  *basecache.Store[[]roster.Person]
	clubs   *basecache.Store[[]roster.Club]
}

var _ roster.Source = (*RosterSource)(nil)

func NewRosterSource(next roster.Source, ttl time.Duration) *RosterSource {
	return &RosterSource{
		next:    next,
		seasons: basecache.NewStore[[]roster.Season](ttl),
		people:  basecache.NewStore[[]roster.Person](ttl),
		clubs:   basecache.NewStore[[]roster.Club](ttl),
	}
}

func (r *RosterSource) ListSeasons(ctx context.Context) ([]roster.Season, error) {
	items, err := r.seasons.GetOrLoad(ctx, "season:list", r.next.ListSeasons)
	if err != nil {
		return nil, err
	}
	return append([]roster.Season(nil), items...), nil
}

func (r *RosterSource) ListPeople(ctx context.Context, seasonCode string) ([]roster.Person, error) {
	items, err := r.people.GetOrLoad(ctx, seasonKey("people", seasonCode), func(ctx context.Context) ([]roster.Person, error) {
		return r.next.ListPeople(ctx, seasonCode)
	})
	if err != nil {
		return nil, err
	}
	return append([]roster.Person(nil), items...), nil
}

func (r *RosterSource) ListClubs(ctx context.Context, seasonCode string) ([]roster.Club, error) {
	items, err := r.clubs.GetOrLoad(ctx, seasonKey("clubs", seasonCode), func(ctx context.Context) ([]roster.Club, error) {
		return r.next.ListClubs(ctx, seasonCode)
	})
	if err != nil {
		return nil, err
	}
	return append([]roster.Club(nil), items...), nil
}

func seasonKey(kind, seasonCode string) string {
	return kind + ":season:" + strings.ToUpper(strings.TrimSpace(seasonCode))
}
