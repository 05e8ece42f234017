package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/cache"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
)

const defaultCrestCacheTTL = 10 * time.Minute

type crestSnapshot struct {
	seasonCode string
	crests     map[string]string
}

// CatalogService exposes the competition seasons and clubs.
type CatalogService struct {
	rosterSource roster.Source
	crests       *cache.Slot[crestSnapshot]
	logger       *logging.Logger
}

func NewCatalogService(rosterSource roster.Source, crestTTL time.Duration, logger *logging.Logger) *CatalogService {
	if crestTTL <= 0 {
		crestTTL = defaultCrestCacheTTL
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{
		rosterSource: rosterSource,
		crests:       cache.NewSlot[crestSnapshot](crestTTL),
		logger:       logger,
	}
}

func (s *CatalogService) ListSeasons(ctx context.Context) (seasons []roster.Season, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSeasons")
	defer func() { endUsecaseSpan(span, err) }()

	seasons, err = s.rosterSource.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (s *CatalogService) ListClubs(ctx context.Context, seasonCode string) (clubs []roster.Club, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListClubs")
	defer func() { endUsecaseSpan(span, err) }()

	code, err := normalizeSeasonCode(seasonCode)
	if err != nil {
		return nil, err
	}
	clubs, err = s.rosterSource.ListClubs(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list clubs season=%s: %w", code, err)
	}
	return clubs, nil
}

// ClubCrests maps club code to crest URL. An empty season code means the most
// recent season and is resolved on every call. The last computed map is kept
// for the crest TTL; callers get a copy.
func (s *CatalogService) ClubCrests(ctx context.Context, seasonCode string) (crests map[string]string, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ClubCrests")
	defer func() { endUsecaseSpan(span, err) }()

	code := strings.ToUpper(strings.TrimSpace(seasonCode))
	if code == "" {
		code, err = s.currentSeasonCode(ctx)
		if err != nil {
			return nil, err
		}
	}
	if snapshot, ok := s.crests.Load(); ok && snapshot.seasonCode == code {
		return maps.Clone(snapshot.crests), nil
	}

	clubs, err := s.rosterSource.ListClubs(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("list clubs season=%s: %w", code, err)
	}

	crests = make(map[string]string, len(clubs))
	for _, club := range clubs {
		if club.Code == "" || club.Crest == "" {
			continue
		}
		crests[club.Code] = club.Crest
	}
	s.crests.Store(crestSnapshot{seasonCode: code, crests: crests})
	s.logger.DebugContext(ctx, "club crests refreshed", "season_code", code, "count", len(crests))

	return maps.Clone(crests), nil
}

func (s *CatalogService) currentSeasonCode(ctx context.Context) (string, error) {
	seasons, err := s.rosterSource.ListSeasons(ctx)
	if err != nil {
		return "", fmt.Errorf("list seasons: %w", err)
	}
	latest := ""
	latestYear := -1
	for _, season := range seasons {
		if season.Code == "" {
			continue
		}
		if season.Year > latestYear {
			latest, latestYear = season.Code, season.Year
		}
	}
	if latest == "" {
		return "", fmt.Errorf("%w: no season available", ErrNotFound)
	}
	return latest, nil
}
