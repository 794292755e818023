// Package scrubbers provides text normalizers that remove volatile content
// before comparison. Every scrubber in this package is idempotent: scrubbing
// already-scrubbed text changes nothing, so approved files written from
// scrubbed output re-verify cleanly.
package scrubbers

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"greenbar/pkg/approvaltypes"
)

// None returns the identity scrubber.
func None() approvaltypes.Scrubber {
	return func(s string) string { return s }
}

// Regex replaces every match of pattern with replacement. The replacement
// must be a fixed point of the pattern (a string the pattern cannot match),
// otherwise the scrubber is not idempotent. Panics if the pattern does not
// compile, since a bad pattern is a programming error in the test.
func Regex(pattern, replacement string) approvaltypes.Scrubber {
	return RegexCompiled(regexp.MustCompile(pattern), replacement)
}

// RegexCompiled is Regex for an already-compiled pattern.
func RegexCompiled(re *regexp.Regexp, replacement string) approvaltypes.Scrubber {
	return func(s string) string {
		return re.ReplaceAllString(s, replacement)
	}
}

// guidPattern is deliberately loose; candidates are validated with
// uuid.Parse so near-misses survive scrubbing.
var guidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// GUIDs replaces each distinct RFC 4122 UUID with guid_1, guid_2, ... in
// order of first appearance, so repeated occurrences of the same UUID map to
// the same token. The tokens contain no hex-dash shape and are stable under
// re-scrubbing.
func GUIDs() approvaltypes.Scrubber {
	return func(s string) string {
		seen := make(map[string]string)
		return guidPattern.ReplaceAllStringFunc(s, func(match string) string {
			if _, err := uuid.Parse(match); err != nil {
				return match
			}
			if token, ok := seen[match]; ok {
				return token
			}
			token := fmt.Sprintf("guid_%d", len(seen)+1)
			seen[match] = token
			return token
		})
	}
}

var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?`)

// Timestamps replaces ISO 8601 / RFC 3339 timestamps with "[timestamp]".
func Timestamps() approvaltypes.Scrubber {
	return RegexCompiled(timestampPattern, "[timestamp]")
}

// ANSI strips terminal escape sequences, so output captured from styled
// writers compares equal regardless of color profile.
func ANSI() approvaltypes.Scrubber {
	return func(s string) string {
		return ansi.Strip(s)
	}
}

// Pipeline composes scrubbers in the given order. The composition is
// idempotent as long as no later scrubber reintroduces text an earlier one
// rewrites.
func Pipeline(ss ...approvaltypes.Scrubber) approvaltypes.Scrubber {
	return func(s string) string {
		for _, scrub := range ss {
			s = scrub(s)
		}
		return s
	}
}
