package pathclean_test

import (
	"strings"
	"testing"

	"tonearm/internal/pathclean"
)

func TestCleanStripsIllegalCharacters(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My: Song?", "My Song"},
		{"a*b;c|d", "abcd"},
		{`back\slash`, "backslash"},
		{"<angle>", "angle"},
	}
	for _, tt := range tests {
		if got := pathclean.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanNormalizesQuotes(t *testing.T) {
	if got := pathclean.Clean("It\"s `fine˝"); got != "It's 'fine'" {
		t.Fatalf("unexpected quote normalization: %q", got)
	}
}

func TestCleanStripsOuterDotsAndSpaces(t *testing.T) {
	if got := pathclean.Clean(".. hidden dir ."); got != "hidden dir" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestCleanCollapsesDotRunsAroundSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/../b", "a/b"},
		{"evil../x", "evil/x"},
		{"x/..evil", "x/evil"},
	}
	for _, tt := range tests {
		if got := pathclean.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanCollapsesWhitespaceAndSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"double  space", "double space"},
		{"artist / album", "artist/album"},
		{"a//b///c", "a/b/c"},
	}
	for _, tt := range tests {
		if got := pathclean.Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanTruncatesOverlongSegments(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := pathclean.Clean("dir/" + long)
	if got != "dir/"+strings.Repeat("a", 200) {
		t.Fatalf("expected 200 character segment, got %d characters", len(got)-4)
	}

	short := strings.Repeat("b", 199)
	if got := pathclean.Clean(short); got != short {
		t.Fatalf("expected short segment untouched, got %q", got)
	}
}

func TestCleanRuleOrderMatters(t *testing.T) {
	// Whitespace around the separator collapses before separator runs, so
	// " / / " reduces to a single separator.
	if got := pathclean.Clean("a / / b"); got != "a/b" {
		t.Fatalf("unexpected result: %q", got)
	}
}
