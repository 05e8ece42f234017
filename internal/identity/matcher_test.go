package identity

import (
	"testing"

	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
)

func testRoster() []roster.Person {
	return []roster.Person{
		{Code: "P123", Name: "MICIĆ, VASILIJE", TeamCode: "EFS"},
		{Code: "P1", Name: "JAMES, MIKE", TeamCode: "FCB"},
		{Code: "P2", Name: "NUNNALLY, JAMES", TeamCode: "FCB"},
		{Code: "P10", Name: "MILUTINOV, NIKOLA", TeamCode: "OLY"},
		{Code: "P11", Name: "MILUTINOV, NIKOLA", TeamCode: "ZAL"},
		{Code: "P20", Name: "CALATHES, NICK", TeamCode: "PAR"},
		{Code: "P21", Name: "WILLIAMS, NICK", TeamCode: "PAR"},
		{Code: "P30", Name: "SLOUKAS, KOSTAS", TeamCode: "PAN"},
		{Code: "P31", Name: "VEZENKOV, SASHA", TeamCode: "OLY"},
	}
}

func TestMatchResolvesDiacriticInsensitiveName(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	payload, stage, ok := Match(idx, NewQuery("efs", "Vasilije", "Micic"))
	if !ok {
		t.Fatalf("expected match")
	}
	if payload.PlayerCode != "P123" {
		t.Fatalf("expected P123, got %s", payload.PlayerCode)
	}
	if stage != StageTeamContainsForward && stage != StageTeamLastName {
		t.Fatalf("expected contains-based stage, got %s", stage)
	}
}

func TestMatchDoesNotConfuseSharedNameFragment(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	q := NewQuery("FCB", "J.", "Nunnally")

	payload, stage, ok := Match(idx, q)
	if !ok || payload.PlayerCode != "P2" {
		t.Fatalf("expected Nunnally (P2), got %+v ok=%v", payload, ok)
	}
	// "j nunnally" is inside no FCB variant; "nunnally j" is inside "nunnally james".
	if stage != StageTeamContainsReversed {
		t.Fatalf("expected %s, got %s", StageTeamContainsReversed, stage)
	}

	payload, ok = idx.teamLastNameContains(q.TeamCode, q.LastName)
	if !ok || payload.PlayerCode != "P2" {
		t.Fatalf("expected last-name containment to resolve P2, got %+v ok=%v", payload, ok)
	}
}

func TestGlobalExactRejectsAmbiguousName(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	if payload, ok := idx.globalUnique("nikola milutinov"); ok {
		t.Fatalf("expected ambiguous global lookup to be rejected, got %+v", payload)
	}

	payload, stage, ok := Match(idx, NewQuery("OLY", "Nikola", "Milutinov"))
	if !ok || payload.PlayerCode != "P10" {
		t.Fatalf("expected team-scoped resolution to P10, got %+v ok=%v", payload, ok)
	}
	if stage != StageTeamContainsForward {
		t.Fatalf("expected %s, got %s", StageTeamContainsForward, stage)
	}
}

func TestMatchUnknownTeamIsUnmatched(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	tests := []struct {
		name  string
		query Query
	}{
		{name: "unknown team", query: NewQuery("XXX", "Vasilije", "Micic")},
		{name: "missing team", query: NewQuery("", "Vasilije", "Micic")},
		{name: "missing name", query: NewQuery("EFS", "", "")},
		{name: "suffix only name", query: NewQuery("EFS", "", "Jr.")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload, stage, ok := Match(idx, tc.query)
			if ok || stage != StageUnmatched || payload != (Payload{}) {
				t.Fatalf("expected unmatched, got %+v stage=%s ok=%v", payload, stage, ok)
			}
		})
	}
}

func TestMatchNilIndex(t *testing.T) {
	t.Parallel()

	if _, _, ok := Match(nil, NewQuery("EFS", "Vasilije", "Micic")); ok {
		t.Fatalf("expected nil index to match nothing")
	}
}

func TestMatchFallsBackToLastNameDistance(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	payload, stage, ok := Match(idx, NewQuery("FCB", "Jamse", "Nunaly"))
	if !ok || payload.PlayerCode != "P2" {
		t.Fatalf("expected P2, got %+v ok=%v", payload, ok)
	}
	if stage != StageTeamLastNameFuzzy {
		t.Fatalf("expected %s, got %s", StageTeamLastNameFuzzy, stage)
	}
}

func TestMatchAmbiguousContainsFallsThroughWithFirstSeenTieBreak(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	q := NewQuery("PAR", "Nick", "")

	if _, ok := idx.teamContains(q.TeamCode, q.FullName); ok {
		t.Fatalf("expected ambiguous contains-match to be rejected")
	}

	payload, stage, ok := Match(idx, q)
	if !ok || payload.PlayerCode != "P20" {
		t.Fatalf("expected first-seen P20, got %+v ok=%v", payload, ok)
	}
	if stage != StageTeamFullNameFuzzy {
		t.Fatalf("expected %s, got %s", StageTeamFullNameFuzzy, stage)
	}
}

func TestMatchUsesGlobalExactWhenPlayerListedUnderOtherTeam(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())
	payload, stage, ok := Match(idx, NewQuery("OLY", "Kostas Sloukas", ""))
	if !ok || payload.PlayerCode != "P30" {
		t.Fatalf("expected P30, got %+v ok=%v", payload, ok)
	}
	if stage != StageGlobalExactForward {
		t.Fatalf("expected %s, got %s", StageGlobalExactForward, stage)
	}
}

func TestGlobalNearestFirstSeenWins(t *testing.T) {
	t.Parallel()

	idx := Build([]roster.Person{
		{Code: "A", Name: "Ab Cd", TeamCode: "T1"},
		{Code: "B", Name: "Ab Ce", TeamCode: "T2"},
	})

	payload, ok := idx.globalNearest("ab cx")
	if !ok || payload.PlayerCode != "A" {
		t.Fatalf("expected first-seen A, got %+v ok=%v", payload, ok)
	}
	if _, ok := idx.globalNearest(""); ok {
		t.Fatalf("expected empty key to match nothing")
	}
}

func strategyFor(t *testing.T, stage Stage) strategy {
	t.Helper()

	for _, s := range cascade {
		if s.stage == stage {
			return s
		}
	}
	t.Fatalf("stage %s not in cascade", stage)
	return strategy{}
}

// Match cannot reach these stages for a known team: stage 4 or stage 7 always
// answers first. The strategies are checked on their own.
func TestCascadeGlobalFallbackStrategies(t *testing.T) {
	t.Parallel()

	idx := Build(testRoster())

	tests := []struct {
		name  string
		stage Stage
		query Query
		want  string
	}{
		{
			name:  "global exact reversed",
			stage: StageGlobalExactReversed,
			query: Query{TeamCode: "OLY", FullName: "kostas sloukas jnr", ReversedName: "sloukas kostas"},
			want:  "P30",
		},
		{
			name:  "global fuzzy forward",
			stage: StageGlobalFuzzyForward,
			query: Query{TeamCode: "OLY", FullName: "sasha vezenkow", ReversedName: "vezenkow sasha"},
			want:  "P31",
		},
		{
			name:  "global fuzzy reversed",
			stage: StageGlobalFuzzyReversed,
			query: Query{TeamCode: "OLY", ReversedName: "calathes nik"},
			want:  "P20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			payload, ok := strategyFor(t, tt.stage).find(idx, tt.query)
			if !ok || payload.PlayerCode != tt.want {
				t.Fatalf("expected %s, got %+v ok=%v", tt.want, payload, ok)
			}
		})
	}

	if _, ok := strategyFor(t, StageGlobalExactForward).find(idx, tests[0].query); ok {
		t.Fatalf("expected forward key %q to miss", tests[0].query.FullName)
	}
	if _, ok := strategyFor(t, StageGlobalFuzzyForward).find(idx, tests[2].query); ok {
		t.Fatalf("expected empty forward key to miss")
	}
}

func TestCascadeOrder(t *testing.T) {
	t.Parallel()

	want := []Stage{
		StageTeamContainsForward,
		StageTeamContainsReversed,
		StageTeamLastName,
		StageTeamLastNameFuzzy,
		StageGlobalExactForward,
		StageGlobalExactReversed,
		StageTeamFullNameFuzzy,
		StageGlobalFuzzyForward,
		StageGlobalFuzzyReversed,
	}
	if len(cascade) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(cascade))
	}
	for i, s := range cascade {
		if s.stage != want[i] {
			t.Fatalf("stage %d = %s, want %s", i, s.stage, want[i])
		}
	}
}
