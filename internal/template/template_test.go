package template_test

import (
	"errors"
	"testing"

	"tonearm/internal/template"
)

func resolverFor(values map[string]string) template.Resolver {
	return template.MapResolver(values)
}

func TestExpandBareVariable(t *testing.T) {
	out, err := template.Expand("<artist> rocks", resolverFor(map[string]string{"artist": "Queen"}))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "Queen rocks" {
		t.Fatalf("unexpected expansion: %q", out)
	}
}

func TestExpandConditionalSuffix(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{"suffix with value", "<track+. ><title>", map[string]string{"track": "03", "title": "Song"}, "03. Song"},
		{"suffix without value", "<track+. ><title>", map[string]string{"title": "Song"}, "Song"},
		{"prefix and suffix with value", "<a+album+b>", map[string]string{"album": "X"}, "aXb"},
		{"prefix and suffix without value", "<a+album+b>", nil, ""},
		{"empty value collapses placeholder", "<a+album+b>", map[string]string{"album": ""}, ""},
		{"empty placeholder", "x<>y", map[string]string{}, "xy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := template.Expand(tt.template, resolverFor(tt.values))
			if err != nil {
				t.Fatalf("Expand: %v", err)
			}
			if out != tt.want {
				t.Fatalf("Expand(%q) = %q, want %q", tt.template, out, tt.want)
			}
		})
	}
}

func TestExpandFourSegmentsFails(t *testing.T) {
	_, err := template.Expand("<a+b+c+d>", resolverFor(map[string]string{"b": "x"}))
	if err == nil {
		t.Fatal("expected error for four-segment placeholder")
	}
	var terr *template.Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected *template.Error, got %T", err)
	}
	if terr.Expr != "a+b+c+d" {
		t.Fatalf("unexpected expression in error: %q", terr.Expr)
	}
}

func TestExpandDisallowSeparator(t *testing.T) {
	values := map[string]string{"album": "AC/DC Live"}

	out, err := template.Expand("<album>", resolverFor(values), template.DisallowSeparator())
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "AC-DC Live" {
		t.Fatalf("expected separators replaced, got %q", out)
	}

	out, err = template.Expand("<album>", resolverFor(values))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "AC/DC Live" {
		t.Fatalf("expected separators preserved, got %q", out)
	}
}

func TestExpandLeavesPlainTextAlone(t *testing.T) {
	out, err := template.Expand("no placeholders here", resolverFor(nil))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if out != "no placeholders here" {
		t.Fatalf("unexpected output: %q", out)
	}
}
