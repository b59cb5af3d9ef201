package template

import (
	"fmt"
	"regexp"
	"strings"
)

// Resolver maps a variable name to its value. The boolean reports whether
// the variable resolved at all; an empty string is treated the same as an
// unresolved variable so missing tags disappear cleanly from generated names.
type Resolver func(name string) (string, bool)

// Error reports a malformed placeholder expression.
type Error struct {
	Expr string
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: illegal number of elements in expression %q", "<"+e.Expr+">")
}

type options struct {
	disallowSeparator bool
}

// Option adjusts expansion behaviour.
type Option func(*options)

// DisallowSeparator replaces path separators in resolved variable values
// with a hyphen. Used when expanding into path segments so a tag value
// cannot inject directory structure.
func DisallowSeparator() Option {
	return func(o *options) { o.disallowSeparator = true }
}

var placeholderPattern = regexp.MustCompile(`<([^<>]*)>`)

// Expand substitutes <var> placeholders in template using the resolver.
//
// Placeholders hold one to three +-separated segments, interpreted
// positionally: a bare variable name, a variable with a literal suffix, or
// a literal prefix, variable, and suffix. Prefix and suffix are emitted only
// when the variable resolves to a non-empty value. An empty placeholder <>
// expands to the empty string. Literal angle brackets cannot appear outside
// placeholders; there is no escaping mechanism.
func Expand(template string, resolve Resolver, opts ...Option) (string, error) {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	var expandErr error
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		expr := match[1 : len(match)-1]
		if expr == "" {
			return ""
		}

		var prefix, name, suffix string
		parts := strings.Split(expr, "+")
		switch len(parts) {
		case 1:
			name = parts[0]
		case 2:
			name = parts[0]
			suffix = parts[1]
		case 3:
			prefix = parts[0]
			name = parts[1]
			suffix = parts[2]
		default:
			if expandErr == nil {
				expandErr = &Error{Expr: expr}
			}
			return ""
		}

		value, ok := resolve(name)
		if !ok || value == "" {
			return ""
		}
		if cfg.disallowSeparator {
			value = strings.ReplaceAll(value, "/", "-")
		}
		return prefix + value + suffix
	})
	if expandErr != nil {
		return "", expandErr
	}
	return result, nil
}

// MapResolver adapts a plain map to a Resolver. Convenient for fixed
// vocabularies such as encoder option templates.
func MapResolver(values map[string]string) Resolver {
	return func(name string) (string, bool) {
		value, ok := values[name]
		return value, ok
	}
}
