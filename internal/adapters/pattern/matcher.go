// Package pattern matches workspace paths against include and exclude globs.
package pattern

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/antscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// Matcher reports whether a path matches any of a set of globs.
// Matching is case-insensitive, treats '/' as the only separator and lets wildcards match
// dot files. A pattern also matches a path equal to it verbatim.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// Compile builds a Matcher. An empty pattern list yields a matcher that matches nothing.
func Compile(patterns []string) (*Matcher, error) {
	m := &Matcher{
		patterns: make([]string, 0, len(patterns)),
		globs:    make([]glob.Glob, 0, len(patterns)),
	}
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		normalized := normalize(p)
		g, err := glob.Compile(normalized, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", p)
		}
		m.patterns = append(m.patterns, normalized)
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether path matches any pattern. It stops at the first match.
func (m *Matcher) Match(path string) bool {
	if m == nil || len(m.globs) == 0 {
		return false
	}
	p := normalize(path)
	for i, g := range m.globs {
		if m.patterns[i] == p || g.Match(p) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(filepath.ToSlash(s))
}
