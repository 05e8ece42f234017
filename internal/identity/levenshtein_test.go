package identity

import "testing"

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"micic", "micic", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"kitten", "sitting", 3},
		{"nunnally", "nunally", 1},
		{"jasikevicius", "jasikevichius", 1},
		{"šengelia", "sengelia", 1},
	}

	for _, tc := range tests {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			t.Parallel()

			got := Levenshtein(tc.a, tc.b)
			if got != tc.want {
				t.Fatalf("Levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if reverse := Levenshtein(tc.b, tc.a); reverse != got {
				t.Fatalf("distance is not symmetric: %d vs %d", got, reverse)
			}
		})
	}
}

func TestLevenshteinIdentityIsZero(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "a", "vasilije micic", "ćšž"} {
		if got := Levenshtein(value, value); got != 0 {
			t.Fatalf("Levenshtein(%q, %q) = %d, want 0", value, value, got)
		}
	}
}
