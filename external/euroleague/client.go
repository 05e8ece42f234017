package euroleague

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/euroleague-dashboard/external/upstream"
	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
	"github.com/riskibarqy/euroleague-dashboard/internal/usecase"
)

const (
	defaultBaseURL         = "https://api-live.euroleague.net"
	defaultCompetitionCode = "E"
	personTypePlayer       = "J"
)

type ClientConfig struct {
	Transport       upstream.Config
	CompetitionCode string
}

// Client reads seasons, rosters and clubs from the competition feed.
type Client struct {
	http        *upstream.Client
	competition string
}

var _ roster.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	transport := cfg.Transport
	if transport.Name == "" {
		transport.Name = "euroleague"
	}
	competition := strings.ToUpper(strings.TrimSpace(cfg.CompetitionCode))
	if competition == "" {
		competition = defaultCompetitionCode
	}
	return &Client{
		http:        upstream.New(transport, defaultBaseURL),
		competition: competition,
	}
}

func (c *Client) ListSeasons(ctx context.Context) ([]roster.Season, error) {
	var payload upstream.List[seasonItem]
	if err := c.http.GetJSON(ctx, c.competitionPath("/seasons"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch seasons: %w", err)
	}

	out := make([]roster.Season, 0, len(payload.Items))
	for _, item := range payload.Items {
		if strings.TrimSpace(item.Code) == "" {
			continue
		}
		out = append(out, roster.Season{
			Code:      strings.TrimSpace(item.Code),
			Name:      strings.TrimSpace(item.Name),
			Alias:     strings.TrimSpace(item.Alias),
			Year:      item.Year,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		})
	}
	return out, nil
}

func (c *Client) ListPeople(ctx context.Context, seasonCode string) ([]roster.Person, error) {
	seasonCode, err := requireSeason(seasonCode)
	if err != nil {
		return nil, err
	}

	var payload upstream.List[personItem]
	query := url.Values{"personType": {personTypePlayer}}
	if err := c.http.GetJSON(ctx, c.competitionPath("/seasons/"+url.PathEscape(seasonCode)+"/people"), query, &payload); err != nil {
		return nil, fmt.Errorf("fetch people season=%s: %w", seasonCode, err)
	}

	out := make([]roster.Person, 0, len(payload.Items))
	for _, item := range payload.Items {
		code := strings.TrimSpace(item.Person.Code)
		if code == "" {
			continue
		}
		out = append(out, roster.Person{
			Code:     code,
			Name:     strings.TrimSpace(item.Person.Name),
			Alias:    strings.TrimSpace(item.Person.Alias),
			TeamCode: strings.TrimSpace(item.Club.Code),
			TeamName: strings.TrimSpace(item.Club.Name),
			Images: roster.ImageURLs{
				Primary:  item.Person.Images["photo"],
				Headshot: item.Images["headshot"],
				Action:   item.Images["action"],
			},
		})
	}
	return out, nil
}

func (c *Client) ListClubs(ctx context.Context, seasonCode string) ([]roster.Club, error) {
	seasonCode, err := requireSeason(seasonCode)
	if err != nil {
		return nil, err
	}

	var payload upstream.List[clubItem]
	if err := c.http.GetJSON(ctx, c.competitionPath("/seasons/"+url.PathEscape(seasonCode)+"/clubs"), nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch clubs season=%s: %w", seasonCode, err)
	}

	out := make([]roster.Club, 0, len(payload.Items))
	for _, item := range payload.Items {
		if strings.TrimSpace(item.Code) == "" {
			continue
		}
		out = append(out, roster.Club{
			Code:  strings.TrimSpace(item.Code),
			Name:  strings.TrimSpace(item.Name),
			Alias: strings.TrimSpace(item.Alias),
			Crest: item.Images["crest"],
		})
	}
	return out, nil
}

func (c *Client) competitionPath(suffix string) string {
	return "/v2/competitions/" + url.PathEscape(c.competition) + suffix
}

func requireSeason(seasonCode string) (string, error) {
	seasonCode = strings.ToUpper(strings.TrimSpace(seasonCode))
	if seasonCode == "" {
		return "", fmt.Errorf("%w: season code is required", usecase.ErrInvalidInput)
	}
	return seasonCode, nil
}
