package usecase

import (
	"fmt"
	"strings"
)

// normalizeSeasonCode trims and upper-cases a season code such as "e2025".
func normalizeSeasonCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}
	return code, nil
}
