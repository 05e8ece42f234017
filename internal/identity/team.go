package identity

import "github.com/riskibarqy/euroleague-dashboard/internal/domain/roster"

// ClubDirectory resolves fantasy team names to authoritative clubs by exact
// normalized name. There is no fuzzy fallback for clubs.
type ClubDirectory struct {
	byName map[string]roster.Club
}

// NewClubDirectory registers each club under its name and alias. The first
// club registered for a key keeps it.
func NewClubDirectory(clubs []roster.Club) *ClubDirectory {
	dir := &ClubDirectory{byName: make(map[string]roster.Club, len(clubs)*2)}
	for _, club := range clubs {
		for _, raw := range []string{club.Name, club.Alias} {
			key := NormalizeTeamName(raw)
			if key == "" {
				continue
			}
			if _, exists := dir.byName[key]; exists {
				continue
			}
			dir.byName[key] = club
		}
	}
	return dir
}

// Resolve looks up a fantasy team name.
func (d *ClubDirectory) Resolve(name string) (roster.Club, bool) {
	if d == nil {
		return roster.Club{}, false
	}
	key := NormalizeTeamName(name)
	if key == "" {
		return roster.Club{}, false
	}
	club, ok := d.byName[key]
	return club, ok
}
