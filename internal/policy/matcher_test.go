package policy

import "testing"

func TestPathMatcher(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"empty patterns match nothing", nil, "src/main.rs", false},
		{"exact file", []string{"bindings.rs"}, "bindings.rs", true},
		{"exact file elsewhere", []string{"bindings.rs"}, "src/bindings.rs", false},
		{"double star directory", []string{"**/generated/**"}, "src/generated/api.rs", true},
		{"double star miss", []string{"**/generated/**"}, "src/handwritten/api.rs", false},
		{"suffix glob", []string{"**/*_gen.rs"}, "proto/types_gen.rs", true},
		{"single star stops at separator", []string{"src/*.rs"}, "src/a/b.rs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewPathMatcher(tt.patterns)
			if err != nil {
				t.Fatalf("NewPathMatcher(%v): %v", tt.patterns, err)
			}
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewPathMatcherInvalidPattern(t *testing.T) {
	if _, err := NewPathMatcher([]string{"[unclosed"}); err == nil {
		t.Error("NewPathMatcher accepted an invalid pattern")
	}
}
