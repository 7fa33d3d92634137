package policy

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// PathMatcher matches slash-normalized file paths against glob patterns.
// Used for exempting paths (generated code, vendored trees) from the
// attribute check.
type PathMatcher struct {
	globs []glob.Glob
}

// NewPathMatcher compiles the given glob patterns with '/' as the
// separator. Returns an error for any pattern that fails to compile.
func NewPathMatcher(patterns []string) (*PathMatcher, error) {
	m := &PathMatcher{globs: make([]glob.Glob, 0, len(patterns))}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether path matches any pattern. An empty pattern list
// matches nothing. Windows separators are normalized to forward slashes so
// patterns written with '/' match either form.
func (m *PathMatcher) Match(path string) bool {
	if len(m.globs) == 0 {
		return false
	}
	path = filepath.ToSlash(path)
	for _, g := range m.globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}
