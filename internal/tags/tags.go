package tags

import (
	"context"
	"strings"
)

// Tags holds the consolidated tag values read from one audio file.
// Multi-valued tags are joined by comma. Lookups are case-insensitive.
type Tags struct {
	values map[string][]string
}

// Reader produces Tags for an audio file. Implementations must never fail:
// unreadable files yield empty Tags so every derived template variable
// degrades to "no value".
type Reader interface {
	Read(ctx context.Context, path string) Tags
}

// FromMap builds Tags from a plain map. Used by tests and by the ffprobe
// reader when merging format-level and stream-level tag maps.
func FromMap(values map[string]string) Tags {
	tags := Tags{values: make(map[string][]string, len(values))}
	for name, value := range values {
		tags.add(name, value)
	}
	return tags
}

func (t *Tags) add(name, value string) {
	if t.values == nil {
		t.values = make(map[string][]string)
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	t.values[key] = append(t.values[key], value)
}

// Get returns the consolidated value for a tag name. Multiple values are
// joined by comma. The boolean reports whether the tag was present.
func (t Tags) Get(name string) (string, bool) {
	values, ok := t.values[strings.ToLower(strings.TrimSpace(name))]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.Join(values, ","), true
}

// Names returns the known tag names in no particular order.
func (t Tags) Names() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	return names
}
