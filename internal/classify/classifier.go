// Package classify recognizes dangerous shell commands by their literal
// text. It never executes or simulates anything: classification is a pure
// function of the command string.
package classify

import "regexp"

// patternDef pairs a destructive-find sub-pattern with the description
// reported when it matches.
type patternDef struct {
	expr string
	desc string
}

type destructivePattern struct {
	re   *regexp.Regexp
	desc string
}

// Classifier holds the compiled command patterns for the current platform.
// Construct one at process start and pass it by reference; the compiled
// patterns are read-only after construction, so a Classifier is safe for
// concurrent use.
type Classifier struct {
	remove      *regexp.Regexp
	findGate    *regexp.Regexp
	destructive []destructivePattern
}

// NewClassifier compiles the platform's command patterns. The patterns are
// static, so a compile failure is a programming defect and panics here
// rather than being swallowed at evaluation time.
func NewClassifier() *Classifier {
	c := &Classifier{
		remove:      regexp.MustCompile(removePattern),
		findGate:    regexp.MustCompile(findGatePattern),
		destructive: make([]destructivePattern, 0, len(destructivePatterns)),
	}
	for _, def := range destructivePatterns {
		c.destructive = append(c.destructive, destructivePattern{
			re:   regexp.MustCompile("(?i)" + def.expr),
			desc: def.desc,
		})
	}
	return c
}

// IsRemoveCommand reports whether cmd invokes rm (or a platform alias) as a
// real command: at the start or after a shell separator, optionally behind
// sudo, command, a backslash escape, or a path prefix. The verb must be a
// whole token, so words that merely end in "rm" do not match.
func (c *Classifier) IsRemoveCommand(cmd string) bool {
	return c.remove.MatchString(cmd)
}

// CheckDestructiveFind reports the first destructive find idiom matched by
// cmd. The sub-patterns are tested in a fixed priority order and only the
// first match is reported. Returns ok=false when the command has no find
// invocation or matches no destructive sub-pattern.
func (c *Classifier) CheckDestructiveFind(cmd string) (desc string, ok bool) {
	if !c.findGate.MatchString(cmd) {
		return "", false
	}
	for _, p := range c.destructive {
		if p.re.MatchString(cmd) {
			return p.desc, true
		}
	}
	return "", false
}
