package fantasy

import (
	"fmt"
	"strconv"
	"strings"
)

// seasonIDOffset maps a competition season end year to the fantasy source
// season id (E2025 -> 23).
const seasonIDOffset = 2002

// SeasonID returns the fantasy season id for a code like "E2025", or 0 when
// the code carries no year.
func SeasonID(seasonCode string) int {
	year, ok := seasonYear(seasonCode)
	if !ok {
		return 0
	}
	return year - seasonIDOffset
}

// DefaultDateRange spans mid September of the season year to mid June of the
// following one.
func DefaultDateRange(seasonCode string) (from, to string) {
	year, ok := seasonYear(seasonCode)
	if !ok {
		return "1970-01-01", "1970-01-02"
	}
	return fmt.Sprintf("%d-09-15", year), fmt.Sprintf("%d-06-15", year+1)
}

func seasonYear(seasonCode string) (int, bool) {
	raw := strings.TrimSpace(strings.Replace(seasonCode, "E", "", 1))
	if raw == "" {
		return 0, false
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return year, true
}
