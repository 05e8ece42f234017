package dunkest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/riskibarqy/euroleague-dashboard/external/upstream"
	"github.com/riskibarqy/euroleague-dashboard/internal/domain/fantasy"
)

const (
	defaultBaseURL        = "https://www.dunkest.com"
	playerStatsPath       = "/api/stats/table"
	defenseVsPositionPath = "/api/stats/defense-vs-position"
	dependencyName        = "dunkest"
)

type ClientConfig struct {
	Transport upstream.Config
}

// Client reads fantasy statistics. Rows are returned untouched.
type Client struct {
	http *upstream.Client
}

var _ fantasy.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	transport := cfg.Transport
	if transport.Name == "" {
		transport.Name = dependencyName
	}
	return &Client{http: upstream.New(transport, defaultBaseURL)}
}

func (c *Client) FetchPlayerStats(ctx context.Context, req fantasy.PlayerStatsRequest) ([]fantasy.Record, error) {
	query := url.Values{}
	query.Set("season_id", strconv.Itoa(req.SeasonID))
	query.Set("mode", req.Mode)
	query.Set("stats_type", string(req.StatsType))
	query.Set("date_from", req.DateFrom)
	query.Set("date_to", req.DateTo)
	for _, week := range req.Weeks {
		query.Add("weeks[]", strconv.Itoa(week))
	}

	var payload upstream.List[fantasy.Record]
	if err := c.http.GetJSON(ctx, playerStatsPath, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch player stats season_id=%d: %w", req.SeasonID, err)
	}
	return nonNil(payload.Items), nil
}

func (c *Client) FetchTeamsPIRAllowed(ctx context.Context, req fantasy.TeamsPIRRequest) ([]fantasy.Record, error) {
	query := url.Values{}
	query.Set("season_id", strconv.Itoa(req.SeasonID))
	query.Set("stats_id", strconv.Itoa(req.StatsID))
	query.Set("position_id", strconv.Itoa(req.PositionID))

	var payload upstream.List[fantasy.Record]
	if err := c.http.GetJSON(ctx, defenseVsPositionPath, query, &payload); err != nil {
		return nil, fmt.Errorf("fetch teams pir allowed season_id=%d: %w", req.SeasonID, err)
	}
	return nonNil(payload.Items), nil
}

func nonNil(records []fantasy.Record) []fantasy.Record {
	if records == nil {
		return []fantasy.Record{}
	}
	return records
}
