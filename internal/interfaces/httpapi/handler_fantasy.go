package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/euroleague-dashboard/internal/domain/fantasy"
	"github.com/riskibarqy/euroleague-dashboard/internal/usecase"
)

func (h *Handler) FantasyHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FantasyHealth")
	defer span.End()

	health, err := h.fantasyService.Health(ctx, r.PathValue("seasonCode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": health.Status})
}

// ListFantasyPlayersStats returns fantasy rows in their original shape, plus
// playerCode and imageUrl when the player was identified.
func (h *Handler) ListFantasyPlayersStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFantasyPlayersStats")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	query, err := parsePlayersStatsQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.fantasyService.PlayersStats(ctx, seasonCode, fantasy.PlayerStatsQuery{
		StatsType: fantasy.StatsType(query.StatsType),
		DateFrom:  query.DateFrom,
		DateTo:    query.DateTo,
		Weeks:     query.Weeks,
	})
	if err != nil {
		h.logFailure(ctx, "list fantasy players stats failed", err, "season_code", seasonCode)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}

func (h *Handler) ListFantasyTeamsPIRAllowed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFantasyTeamsPIRAllowed")
	defer span.End()

	seasonCode := r.PathValue("seasonCode")
	query, err := parseTeamsPIRQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	records, err := h.fantasyService.TeamsPIRAllowed(ctx, seasonCode, fantasy.TeamsPIRQuery{
		StatsID:    query.StatsID,
		PositionID: query.PositionID,
	})
	if err != nil {
		h.logFailure(ctx, "list fantasy teams pir allowed failed", err, "season_code", seasonCode)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, records)
}

func parsePlayersStatsQuery(values url.Values) (playersStatsQueryRequest, error) {
	req := playersStatsQueryRequest{
		StatsType: strings.TrimSpace(values.Get("statsType")),
		DateFrom:  strings.TrimSpace(values.Get("dateFrom")),
		DateTo:    strings.TrimSpace(values.Get("dateTo")),
	}

	rawWeeks := append(append([]string{}, values["weeks"]...), values["weeks[]"]...)
	for _, raw := range rawWeeks {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			week, err := strconv.Atoi(part)
			if err != nil {
				return playersStatsQueryRequest{}, fmt.Errorf("%w: weeks must be integers, got %q", usecase.ErrInvalidInput, part)
			}
			req.Weeks = append(req.Weeks, week)
		}
	}

	return req, nil
}

func parseTeamsPIRQuery(values url.Values) (teamsPIRQueryRequest, error) {
	var req teamsPIRQueryRequest
	var err error
	if req.StatsID, err = optionalInt(values, "statsId"); err != nil {
		return teamsPIRQueryRequest{}, err
	}
	if req.PositionID, err = optionalInt(values, "positionId"); err != nil {
		return teamsPIRQueryRequest{}, err
	}
	return req, nil
}

func optionalInt(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
