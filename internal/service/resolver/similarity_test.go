package resolver

import "testing"

func TestTitleCloseEnough(t *testing.T) {
	tests := []struct {
		term, title string
		want        bool
	}{
		// Prefix rule, case-insensitive.
		{"Pari", "Paris", true},
		{"rhine", "Rhine", true},
		{"Mercury", "Mercury (planet)", true},

		// Proportional edit distance.
		{"center", "centre", true},
		{"colour", "color", true},

		// Length-skewed near-match: the title embeds the term.
		{"Obama", "Barack Obama", true},

		// Unrelated titles.
		{"dog", "cat", false},
		{"cat", "International Space Station", false},
		{"rhin", "Geology", false},
	}

	for _, tt := range tests {
		if got := titleCloseEnough(tt.term, tt.title); got != tt.want {
			t.Errorf("titleCloseEnough(%q, %q) = %v, want %v", tt.term, tt.title, got, tt.want)
		}
	}
}
