package fantasy

import (
	"encoding/json"
	"maps"
	"strconv"
	"strings"
)

// Record is one row returned by the fantasy source. Unknown fields are kept
// as-is so a record can always be returned in its original shape.
type Record map[string]any

const (
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldTeamCode   = "team_code"
	FieldID         = "id"
	FieldName       = "name"
	FieldPlayerCode = "playerCode"
	FieldImageURL   = "imageUrl"
)

// String returns the field rendered as text. Numbers are formatted without
// exponent; missing or null fields yield "".
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// WithPlayerIdentity returns a copy carrying the authoritative player code and image.
func (r Record) WithPlayerIdentity(playerCode, imageURL string) Record {
	out := maps.Clone(r)
	if out == nil {
		out = Record{}
	}
	out[FieldPlayerCode] = playerCode
	out[FieldImageURL] = imageURL
	return out
}

// WithClub returns a copy whose id and name are the authoritative club's.
func (r Record) WithClub(code, name string) Record {
	out := maps.Clone(r)
	if out == nil {
		out = Record{}
	}
	out[FieldID] = code
	out[FieldName] = name
	return out
}

// StatsType selects totals or per-game averages.
type StatsType string

const (
	StatsTypeTotal   StatsType = "tot"
	StatsTypeAverage StatsType = "avg"
)

const (
	DefaultStatsID    = 25
	DefaultPositionID = 1
	modeNBA           = "nba"
)

// PlayerStatsQuery is the caller-facing filter for player stats.
type PlayerStatsQuery struct {
	StatsType StatsType
	DateFrom  string
	DateTo    string
	Weeks     []int
}

// PlayerStatsRequest is the resolved upstream request.
type PlayerStatsRequest struct {
	SeasonID  int
	Mode      string
	StatsType StatsType
	DateFrom  string
	DateTo    string
	Weeks     []int
}

// NewPlayerStatsRequest fills season id, mode and default date window.
func NewPlayerStatsRequest(seasonCode string, q PlayerStatsQuery) PlayerStatsRequest {
	from, to := DefaultDateRange(seasonCode)
	req := PlayerStatsRequest{
		SeasonID:  SeasonID(seasonCode),
		Mode:      modeNBA,
		StatsType: q.StatsType,
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
		Weeks:     q.Weeks,
	}
	if req.StatsType == "" {
		req.StatsType = StatsTypeAverage
	}
	if strings.TrimSpace(req.DateFrom) == "" {
		req.DateFrom = from
	}
	if strings.TrimSpace(req.DateTo) == "" {
		req.DateTo = to
	}
	return req
}

// TeamsPIRQuery is the caller-facing filter for PIR allowed by position.
type TeamsPIRQuery struct {
	StatsID    int
	PositionID int
}

// TeamsPIRRequest is the resolved upstream request.
type TeamsPIRRequest struct {
	SeasonID   int
	StatsID    int
	PositionID int
}

func NewTeamsPIRRequest(seasonCode string, q TeamsPIRQuery) TeamsPIRRequest {
	req := TeamsPIRRequest{
		SeasonID:   SeasonID(seasonCode),
		StatsID:    q.StatsID,
		PositionID: q.PositionID,
	}
	if req.StatsID == 0 {
		req.StatsID = DefaultStatsID
	}
	if req.PositionID == 0 {
		req.PositionID = DefaultPositionID
	}
	return req
}
