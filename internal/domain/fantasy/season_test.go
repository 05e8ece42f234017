package fantasy

import "testing"

func TestSeasonID(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{code: "E2025", want: 23},
		{code: "E2024", want: 22},
		{code: "2023", want: 21},
		{code: "E", want: 0},
		{code: "Eabc", want: 0},
		{code: "", want: 0},
	}

	for _, tc := range tests {
		if got := SeasonID(tc.code); got != tc.want {
			t.Fatalf("SeasonID(%q) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestDefaultDateRange(t *testing.T) {
	from, to := DefaultDateRange("E2025")
	if from != "2025-09-15" || to != "2026-06-15" {
		t.Fatalf("unexpected range: %s..%s", from, to)
	}

	from, to = DefaultDateRange("season")
	if from != "1970-01-01" || to != "1970-01-02" {
		t.Fatalf("unexpected fallback range: %s..%s", from, to)
	}
}

func TestNewPlayerStatsRequestDefaults(t *testing.T) {
	req := NewPlayerStatsRequest("E2025", PlayerStatsQuery{})
	if req.SeasonID != 23 || req.Mode != "nba" || req.StatsType != StatsTypeAverage {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.DateFrom != "2025-09-15" || req.DateTo != "2026-06-15" {
		t.Fatalf("unexpected dates: %+v", req)
	}

	req = NewPlayerStatsRequest("E2025", PlayerStatsQuery{
		StatsType: StatsTypeTotal,
		DateFrom:  "2025-10-01",
		DateTo:    "2025-11-01",
		Weeks:     []int{3, 4},
	})
	if req.StatsType != StatsTypeTotal || req.DateFrom != "2025-10-01" || req.DateTo != "2025-11-01" || len(req.Weeks) != 2 {
		t.Fatalf("expected explicit values to survive: %+v", req)
	}
}

func TestNewTeamsPIRRequestDefaults(t *testing.T) {
	req := NewTeamsPIRRequest("E2024", TeamsPIRQuery{})
	if req.SeasonID != 22 || req.StatsID != DefaultStatsID || req.PositionID != DefaultPositionID {
		t.Fatalf("unexpected request: %+v", req)
	}

	req = NewTeamsPIRRequest("E2024", TeamsPIRQuery{StatsID: 7, PositionID: 3})
	if req.StatsID != 7 || req.PositionID != 3 {
		t.Fatalf("expected explicit values to survive: %+v", req)
	}
}
