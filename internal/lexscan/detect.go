package lexscan

import "regexp"

// Finding classifies which lint-suppression attributes a buffer contains.
type Finding int

const (
	// FindingNone means no suppression attribute was found.
	FindingNone Finding = iota
	// FindingAllow means #[allow(...)] or #![allow(...)] was found.
	FindingAllow
	// FindingExpect means #[expect(...)] or #![expect(...)] was found.
	FindingExpect
	// FindingBoth means both attribute forms were found.
	FindingBoth
)

// String returns a short name for the finding.
func (f Finding) String() string {
	switch f {
	case FindingNone:
		return "none"
	case FindingAllow:
		return "allow"
	case FindingExpect:
		return "expect"
	case FindingBoth:
		return "both"
	}
	return "unknown"
}

// HasAllow returns true if an allow attribute was found.
func (f Finding) HasAllow() bool {
	return f == FindingAllow || f == FindingBoth
}

// HasExpect returns true if an expect attribute was found.
func (f Finding) HasExpect() bool {
	return f == FindingExpect || f == FindingBoth
}

// Detector scans source text for lint-suppression attributes, ignoring
// occurrences inside comments and string literals. The patterns are
// compiled once at construction; a Detector is safe for concurrent use and
// never mutated afterwards.
type Detector struct {
	allow  *regexp.Regexp
	expect *regexp.Regexp
}

// NewDetector compiles the attribute patterns. The patterns are static, so
// a compile failure is a programming error and panics at construction.
func NewDetector() *Detector {
	return &Detector{
		allow:  regexp.MustCompile(`#!?\[allow\s*\(`),
		expect: regexp.MustCompile(`#!?\[expect\s*\(`),
	}
}

// Detect reports which suppression attributes appear in content as real
// code. A match whose start position is excluded per ExcludedAt never
// contributes. An empty buffer yields FindingNone.
func (d *Detector) Detect(content string) Finding {
	hasAllow := hasRealMatch(content, d.allow)
	hasExpect := hasRealMatch(content, d.expect)

	switch {
	case hasAllow && hasExpect:
		return FindingBoth
	case hasAllow:
		return FindingAllow
	case hasExpect:
		return FindingExpect
	default:
		return FindingNone
	}
}

// hasRealMatch reports whether re matches content at a position outside
// comments and string literals.
func hasRealMatch(content string, re *regexp.Regexp) bool {
	for _, loc := range re.FindAllStringIndex(content, -1) {
		if !ExcludedAt(content, loc[0]) {
			return true
		}
	}
	return false
}
