package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/euroleague-dashboard/internal/domain/fantasy"
	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
	"github.com/riskibarqy/euroleague-dashboard/internal/identity"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/logging"
	"github.com/riskibarqy/euroleague-dashboard/internal/platform/metrics"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultMatchWorkers = 4
	// below this many records matching runs inline
	minRecordsForPool = 64

	matchKindPlayer = "player"
	matchKindTeam   = "team"
	teamMatchExact  = "exact"
)

type FantasyServiceConfig struct {
	MatchWorkers int
	Logger       *logging.Logger
	Metrics      *metrics.Recorder
}

// FantasyService serves fantasy statistics reconciled against the
// competition roster.
type FantasyService struct {
	rosterSource  roster.Source
	fantasySource fantasy.Source
	workers       int
	logger        *logging.Logger
	metrics       *metrics.Recorder
}

type Health struct {
	Status     string
	SeasonCode string
}

func NewFantasyService(rosterSource roster.Source, fantasySource fantasy.Source, cfg FantasyServiceConfig) *FantasyService {
	workers := cfg.MatchWorkers
	if workers <= 0 {
		workers = defaultMatchWorkers
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &FantasyService{
		rosterSource:  rosterSource,
		fantasySource: fantasySource,
		workers:       workers,
		logger:        logger,
		metrics:       cfg.Metrics,
	}
}

func (s *FantasyService) Health(ctx context.Context, seasonCode string) (Health, error) {
	code, err := normalizeSeasonCode(seasonCode)
	if err != nil {
		return Health{}, err
	}
	return Health{Status: "ok", SeasonCode: code}, nil
}

// PlayersStats returns the fantasy player rows for a season. Rows matched to a
// roster player carry playerCode and imageUrl; the rest are returned as-is.
func (s *FantasyService) PlayersStats(ctx context.Context, seasonCode string, query fantasy.PlayerStatsQuery) (records []fantasy.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.PlayersStats", attribute.String("season.code", seasonCode))
	defer func() { endUsecaseSpan(span, err) }()

	code, err := normalizeSeasonCode(seasonCode)
	if err != nil {
		return nil, err
	}
	switch query.StatsType {
	case "", fantasy.StatsTypeTotal, fantasy.StatsTypeAverage:
	default:
		return nil, fmt.Errorf("%w: unsupported stats type %q", ErrInvalidInput, query.StatsType)
	}
	for _, week := range query.Weeks {
		if week < 1 {
			return nil, fmt.Errorf("%w: week must be positive, got %d", ErrInvalidInput, week)
		}
	}
	req := fantasy.NewPlayerStatsRequest(code, query)

	var (
		people []roster.Person
		rows   []fantasy.Record
	)
	fetch := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	fetch.Go(func(ctx context.Context) error {
		loaded, loadErr := s.rosterSource.ListPeople(ctx, code)
		if loadErr != nil {
			return fmt.Errorf("list roster people season=%s: %w", code, loadErr)
		}
		people = loaded
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		loaded, loadErr := s.fantasySource.FetchPlayerStats(ctx, req)
		if loadErr != nil {
			return fmt.Errorf("fetch fantasy player stats season=%s: %w", code, loadErr)
		}
		rows = loaded
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return nil, err
	}

	idx := identity.Build(people)
	out, stages, err := s.attachPlayerIdentities(idx, rows)
	if err != nil {
		return nil, err
	}

	matched := 0
	for _, stage := range stages {
		s.metrics.ObserveMatch(matchKindPlayer, string(stage))
		if stage != identity.StageUnmatched {
			matched++
		}
	}
	s.logger.DebugContext(ctx, "fantasy players matched",
		"season_code", code,
		"roster_size", idx.Len(),
		"records", len(out),
		"matched", matched,
		"unmatched", len(out)-matched,
	)

	return out, nil
}

// TeamsPIRAllowed returns the PIR allowed per team. Rows whose name equals a
// club name or alias get the club's code and name.
func (s *FantasyService) TeamsPIRAllowed(ctx context.Context, seasonCode string, query fantasy.TeamsPIRQuery) (records []fantasy.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FantasyService.TeamsPIRAllowed", attribute.String("season.code", seasonCode))
	defer func() { endUsecaseSpan(span, err) }()

	code, err := normalizeSeasonCode(seasonCode)
	if err != nil {
		return nil, err
	}
	if query.StatsID < 0 || query.PositionID < 0 {
		return nil, fmt.Errorf("%w: stats id and position id must not be negative", ErrInvalidInput)
	}
	req := fantasy.NewTeamsPIRRequest(code, query)

	var (
		clubs []roster.Club
		rows  []fantasy.Record
	)
	fetch := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	fetch.Go(func(ctx context.Context) error {
		loaded, loadErr := s.rosterSource.ListClubs(ctx, code)
		if loadErr != nil {
			return fmt.Errorf("list clubs season=%s: %w", code, loadErr)
		}
		clubs = loaded
		return nil
	})
	fetch.Go(func(ctx context.Context) error {
		loaded, loadErr := s.fantasySource.FetchTeamsPIRAllowed(ctx, req)
		if loadErr != nil {
			return fmt.Errorf("fetch fantasy teams pir allowed season=%s: %w", code, loadErr)
		}
		rows = loaded
		return nil
	})
	if err := fetch.Wait(); err != nil {
		return nil, err
	}

	dir := identity.NewClubDirectory(clubs)
	out := make([]fantasy.Record, len(rows))
	matched := 0
	for i, row := range rows {
		club, ok := dir.Resolve(row.String(fantasy.FieldName))
		if !ok {
			out[i] = row
			s.metrics.ObserveMatch(matchKindTeam, string(identity.StageUnmatched))
			continue
		}
		out[i] = row.WithClub(club.Code, club.Name)
		matched++
		s.metrics.ObserveMatch(matchKindTeam, teamMatchExact)
	}
	s.logger.DebugContext(ctx, "fantasy teams matched",
		"season_code", code,
		"clubs", len(clubs),
		"records", len(out),
		"matched", matched,
	)

	return out, nil
}

// attachPlayerIdentities matches every row against idx, keeping row order.
// The index is read-only here so chunks are matched in parallel.
func (s *FantasyService) attachPlayerIdentities(idx *identity.Index, rows []fantasy.Record) ([]fantasy.Record, []identity.Stage, error) {
	out := make([]fantasy.Record, len(rows))
	stages := make([]identity.Stage, len(rows))

	matchRange := func(from, to int) {
		for i := from; i < to; i++ {
			out[i], stages[i] = matchPlayer(idx, rows[i])
		}
	}

	if len(rows) < minRecordsForPool || s.workers <= 1 {
		matchRange(0, len(rows))
		return out, stages, nil
	}

	workers, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, nil, fmt.Errorf("create match worker pool: %w", err)
	}
	defer workers.Release()

	chunk := (len(rows) + s.workers - 1) / s.workers
	var wg sync.WaitGroup
	for from := 0; from < len(rows); from += chunk {
		to := min(from+chunk, len(rows))
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			matchRange(from, to)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, nil, fmt.Errorf("submit match task: %w", err)
		}
	}
	wg.Wait()

	return out, stages, nil
}

func matchPlayer(idx *identity.Index, row fantasy.Record) (fantasy.Record, identity.Stage) {
	q := identity.NewQuery(
		row.String(fantasy.FieldTeamCode),
		row.String(fantasy.FieldFirstName),
		row.String(fantasy.FieldLastName),
	)
	payload, stage, ok := identity.Match(idx, q)
	if !ok {
		return row, stage
	}
	return row.WithPlayerIdentity(payload.PlayerCode, payload.PreferredImage()), stage
}
