package identity

import "strings"

// Stage names the cascade step that produced a match.
type Stage string

const (
	StageTeamContainsForward  Stage = "team_contains_forward"
	StageTeamContainsReversed Stage = "team_contains_reversed"
	StageTeamLastName         Stage = "team_last_name"
	StageTeamLastNameFuzzy    Stage = "team_last_name_fuzzy"
	StageGlobalExactForward   Stage = "global_exact_forward"
	StageGlobalExactReversed  Stage = "global_exact_reversed"
	StageTeamFullNameFuzzy    Stage = "team_full_name_fuzzy"
	StageGlobalFuzzyForward   Stage = "global_fuzzy_forward"
	StageGlobalFuzzyReversed  Stage = "global_fuzzy_reversed"
	StageUnmatched            Stage = "unmatched"
)

// Query carries the normalized keys of one fantasy player.
type Query struct {
	TeamCode     string
	FullName     string
	ReversedName string
	LastName     string
}

// NewQuery normalizes fantasy first and last names into lookup keys.
func NewQuery(teamCode, firstName, lastName string) Query {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	return Query{
		TeamCode:     teamKey(teamCode),
		FullName:     NormalizePersonName(strings.TrimSpace(first + " " + last)),
		ReversedName: NormalizePersonName(strings.TrimSpace(last + " " + first)),
		LastName:     NormalizePersonName(last),
	}
}

type strategy struct {
	stage Stage
	find  func(idx *Index, q Query) (Payload, bool)
}

// cascade runs strictest first. Reordering or adding a step is a change here.
var cascade = []strategy{
	{StageTeamContainsForward, func(idx *Index, q Query) (Payload, bool) { return idx.teamContains(q.TeamCode, q.FullName) }},
	{StageTeamContainsReversed, func(idx *Index, q Query) (Payload, bool) { return idx.teamContains(q.TeamCode, q.ReversedName) }},
	{StageTeamLastName, func(idx *Index, q Query) (Payload, bool) { return idx.teamLastNameContains(q.TeamCode, q.LastName) }},
	{StageTeamLastNameFuzzy, func(idx *Index, q Query) (Payload, bool) { return idx.teamLastNameNearest(q.TeamCode, q.LastName) }},
	{StageGlobalExactForward, func(idx *Index, q Query) (Payload, bool) { return idx.globalUnique(q.FullName) }},
	{StageGlobalExactReversed, func(idx *Index, q Query) (Payload, bool) { return idx.globalUnique(q.ReversedName) }},
	{StageTeamFullNameFuzzy, func(idx *Index, q Query) (Payload, bool) { return idx.teamNearest(q.TeamCode, q.FullName) }},
	{StageGlobalFuzzyForward, func(idx *Index, q Query) (Payload, bool) { return idx.globalNearest(q.FullName) }},
	{StageGlobalFuzzyReversed, func(idx *Index, q Query) (Payload, bool) { return idx.globalNearest(q.ReversedName) }},
}

// Match resolves q against idx. Records with no name, no team code or a team
// code unknown to the roster are left unmatched.
func Match(idx *Index, q Query) (Payload, Stage, bool) {
	if idx == nil || q.FullName == "" || q.TeamCode == "" || !idx.HasTeam(q.TeamCode) {
		return Payload{}, StageUnmatched, false
	}
	for _, s := range cascade {
		if payload, ok := s.find(idx, q); ok {
			return payload, s.stage, true
		}
	}
	return Payload{}, StageUnmatched, false
}

func (idx *Index) teamContains(team, key string) (Payload, bool) {
	if key == "" {
		return Payload{}, false
	}
	var candidates []Payload
	for _, entry := range idx.byTeam[teamKey(team)] {
		if strings.Contains(entry.variant, key) || strings.Contains(key, entry.variant) {
			candidates = append(candidates, entry.payload)
		}
	}
	return unique(candidates)
}

func (idx *Index) teamLastNameContains(team, lastName string) (Payload, bool) {
	if lastName == "" {
		return Payload{}, false
	}
	var candidates []Payload
	for _, entry := range idx.teamLastNames(teamKey(team)) {
		if strings.Contains(lastName, entry.lastName) || strings.Contains(entry.lastName, lastName) {
			candidates = append(candidates, entry.payloads...)
		}
	}
	return unique(candidates)
}

func (idx *Index) teamLastNameNearest(team, lastName string) (Payload, bool) {
	if lastName == "" {
		return Payload{}, false
	}
	best, found := Payload{}, false
	bestDistance := 0
	for _, entry := range idx.teamLastNames(teamKey(team)) {
		d := Levenshtein(lastName, entry.lastName)
		if !found || d < bestDistance {
			best, bestDistance, found = entry.payloads[0], d, true
		}
	}
	return best, found
}

func (idx *Index) globalUnique(key string) (Payload, bool) {
	if key == "" {
		return Payload{}, false
	}
	payloads := idx.byName[key]
	if len(payloads) != 1 {
		return Payload{}, false
	}
	return payloads[0], true
}

func (idx *Index) teamNearest(team, key string) (Payload, bool) {
	if key == "" {
		return Payload{}, false
	}
	best, found := Payload{}, false
	bestDistance := 0
	for _, entry := range idx.byTeam[teamKey(team)] {
		d := Levenshtein(key, entry.variant)
		if !found || d < bestDistance {
			best, bestDistance, found = entry.payload, d, true
		}
	}
	return best, found
}

func (idx *Index) globalNearest(key string) (Payload, bool) {
	if key == "" {
		return Payload{}, false
	}
	best, found := Payload{}, false
	bestDistance := 0
	for _, name := range idx.names {
		d := Levenshtein(key, name)
		if !found || d < bestDistance {
			best, bestDistance, found = idx.byName[name][0], d, true
		}
	}
	return best, found
}

// unique accepts candidates only when they all belong to one player.
func unique(candidates []Payload) (Payload, bool) {
	if len(candidates) == 0 {
		return Payload{}, false
	}
	first := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.PlayerCode != first.PlayerCode {
			return Payload{}, false
		}
	}
	return first, true
}
