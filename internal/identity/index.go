package identity

import (
	"strings"

	"github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"
)

// Payload is the identity attached to a matched fantasy player.
type Payload struct {
	PlayerCode       string
	ImageURL         string
	HeadshotImageURL string
	ActionImageURL   string
}

// PreferredImage returns the first non-empty picture, primary first.
func (p Payload) PreferredImage() string {
	for _, url := range []string{p.ImageURL, p.HeadshotImageURL, p.ActionImageURL} {
		if url != "" {
			return url
		}
	}
	return ""
}

type teamEntry struct {
	variant string
	payload Payload
}

type lastNameEntry struct {
	lastName string
	payloads []Payload
}

// Index is the lookup structure built from one season roster. It is read-only
// after Build returns and must not outlive the request that built it.
type Index struct {
	byName     map[string][]Payload
	names      []string
	byTeam     map[string][]teamEntry
	byTeamLast map[string][]Payload
	teamLast   map[string][]string
	people     int
}

// Build registers every person that has a team code and a normalizable name.
// Each person is stored under its full name, first+last, last+first and alias
// variants. Insertion order is kept for first-seen tie breaks.
func Build(people []roster.Person) *Index {
	idx := &Index{
		byName:     make(map[string][]Payload),
		byTeam:     make(map[string][]teamEntry),
		byTeamLast: make(map[string][]Payload),
		teamLast:   make(map[string][]string),
	}

	for _, person := range people {
		team := teamKey(person.TeamCode)
		if team == "" {
			continue
		}
		first, last := person.SplitName()
		fullName := NormalizePersonName(strings.TrimSpace(first + " " + last))
		if fullName == "" {
			continue
		}

		payload := Payload{
			PlayerCode:       person.Code,
			ImageURL:         person.Images.Primary,
			HeadshotImageURL: person.Images.Headshot,
			ActionImageURL:   person.Images.Action,
		}

		for _, variant := range nameVariants(fullName, NormalizePersonName(person.Alias)) {
			idx.addName(variant, payload)
			idx.byTeam[team] = append(idx.byTeam[team], teamEntry{variant: variant, payload: payload})
		}

		lastName := NormalizePersonName(last)
		if lastName == "" || !strings.HasSuffix(fullName, lastName) {
			lastName = lastToken(fullName)
		}
		idx.addLastName(team, lastName, payload)
		idx.people++
	}

	return idx
}

// Len reports how many people were registered.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.people
}

// HasTeam reports whether at least one person is registered under teamCode.
func (idx *Index) HasTeam(teamCode string) bool {
	if idx == nil {
		return false
	}
	return len(idx.byTeam[teamKey(teamCode)]) > 0
}

func (idx *Index) addName(variant string, payload Payload) {
	if _, ok := idx.byName[variant]; !ok {
		idx.names = append(idx.names, variant)
	}
	idx.byName[variant] = append(idx.byName[variant], payload)
}

func (idx *Index) addLastName(team, lastName string, payload Payload) {
	key := team + "|" + lastName
	if _, ok := idx.byTeamLast[key]; !ok {
		idx.teamLast[team] = append(idx.teamLast[team], lastName)
	}
	idx.byTeamLast[key] = append(idx.byTeamLast[key], payload)
}

func (idx *Index) teamLastNames(team string) []lastNameEntry {
	names := idx.teamLast[team]
	out := make([]lastNameEntry, 0, len(names))
	for _, name := range names {
		out = append(out, lastNameEntry{lastName: name, payloads: idx.byTeamLast[team+"|"+name]})
	}
	return out
}

// nameVariants yields fullName, firstLast, lastFirst and alias without
// duplicates so a single person never counts twice under one key.
func nameVariants(fullName, alias string) []string {
	tokens := strings.Fields(fullName)
	firstLast := tokens[0]
	lastFirst := tokens[0]
	if len(tokens) > 1 {
		firstLast = tokens[0] + " " + tokens[len(tokens)-1]
		lastFirst = tokens[len(tokens)-1] + " " + tokens[0]
	}

	out := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, variant := range []string{fullName, firstLast, lastFirst, alias} {
		if variant == "" {
			continue
		}
		if _, ok := seen[variant]; ok {
			continue
		}
		seen[variant] = struct{}{}
		out = append(out, variant)
	}
	return out
}

func lastToken(name string) string {
	if idx := strings.LastIndex(name, " "); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

func teamKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
