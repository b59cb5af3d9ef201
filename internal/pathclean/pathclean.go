package pathclean

import "regexp"

const maxSegmentLength = 200

type rule struct {
	pattern *regexp.Regexp
	replace func(match string) string
}

func literal(replacement string) func(string) string {
	return func(string) string { return replacement }
}

// Rules apply in order; each operates on the output of the previous one.
var rules = []rule{
	// Characters illegal on common filesystems.
	{regexp.MustCompile(`[?*:;<>|\\]`), literal("")},
	// Quote-like characters become a plain apostrophe.
	{regexp.MustCompile("[\"`˝]"), literal("'")},
	// Leading and trailing whitespace and dots.
	{regexp.MustCompile(`^[. ]+`), literal("")},
	{regexp.MustCompile(`[. ]+$`), literal("")},
	// Dot runs adjacent to separators, defeating ..-style traversal.
	{regexp.MustCompile(`[.]+/`), literal("/")},
	{regexp.MustCompile(`/[.]+`), literal("/")},
	// Whitespace runs and whitespace hugging separators.
	{regexp.MustCompile(`\s{2,}`), literal(" ")},
	{regexp.MustCompile(`\s*/\s*`), literal("/")},
	// Separator runs.
	{regexp.MustCompile(`/{2,}`), literal("/")},
	// Overlong path segments.
	{regexp.MustCompile(`[^/]{200,}`), truncateSegment},
}

func truncateSegment(match string) string {
	runes := []rune(match)
	if len(runes) <= maxSegmentLength {
		return match
	}
	return string(runes[:maxSegmentLength])
}

// Clean rewrites an arbitrary string into a value safe for use as a relative
// filesystem path. The rules run in a fixed order; reordering them changes
// the result.
func Clean(path string) string {
	for _, r := range rules {
		path = r.pattern.ReplaceAllStringFunc(path, r.replace)
	}
	return path
}
