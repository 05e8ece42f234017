package roster

import "strings"

// ImageURLs holds the picture variants published for a person.
type ImageURLs struct {
	Primary  string
	Headshot string
	Action   string
}

// Person is a player registered on a club roster for one season.
type Person struct {
	Code     string
	Name     string
	Alias    string
	TeamCode string
	TeamName string
	Images   ImageURLs
}

// SplitName returns the person's given and family names. The competition
// publishes names as "LAST, FIRST"; names without a comma are treated as
// "First ... Last".
func (p Person) SplitName() (first, last string) {
	name := strings.TrimSpace(p.Name)
	if before, after, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(after), strings.TrimSpace(before)
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return "", name
	}
	return strings.TrimSpace(name[:idx]), strings.TrimSpace(name[idx+1:])
}

// DisplayName renders the name in "First Last" order.
func (p Person) DisplayName() string {
	first, last := p.SplitName()
	return strings.TrimSpace(first + " " + last)
}

// Club is an authoritative team taking part in a season.
type Club struct {
	Code  string
	Name  string
	Alias string
	Crest string
}

// Season is one edition of the competition.
type Season struct {
	Code      string
	Name      string
	Alias     string
	Year      int
	StartDate string
	EndDate   string
}
