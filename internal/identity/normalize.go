// Package identity reconciles fantasy-source players and teams against the
// authoritative competition roster.
package identity

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	camelBoundary   = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Substring strip, not word bounded: "jakob" becomes "job". Stored match
	// outcomes depend on this exact output.
	clubSuffix = regexp.MustCompile(`basketball|bc|fc|club|klub|ak|bk`)
)

var generationalSuffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
	"v":   {},
}

// NormalizePersonName canonicalizes a player display name into a comparison key.
//
// The steps run in a fixed order: camel-case split, lowercase, diacritic
// removal, punctuation collapse, club-suffix strip, whitespace collapse and
// trailing generational suffix removal. Repeating it is a no-op unless a
// club-suffix strip joins letters into a new suffix ("aakk" -> "ak").
func NormalizePersonName(raw string) string {
	if raw == "" {
		return ""
	}
	value := camelBoundary.ReplaceAllString(raw, "$1 $2")
	tokens := strings.Fields(canonical(value))
	for len(tokens) > 0 {
		if _, ok := generationalSuffixes[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// NormalizeTeamName is the club-name variant. It skips camel-case splitting
// and generational suffix removal, so its keys are not interchangeable with
// NormalizePersonName keys.
func NormalizeTeamName(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Join(strings.Fields(canonical(raw)), " ")
}

func canonical(value string) string {
	value = stripDiacritics(strings.ToLower(value))
	value = nonAlphanumeric.ReplaceAllString(value, " ")
	return clubSuffix.ReplaceAllString(value, "")
}

func stripDiacritics(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return out
}
