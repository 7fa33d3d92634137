// Package policy combines the command classifiers and the attribute
// detector into hook verdicts. All evaluation is pure: a Policy holds only
// configuration and pre-compiled patterns, never per-event state.
package policy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/waki285/agent-hooks/internal/classify"
	"github.com/waki285/agent-hooks/internal/hook"
	"github.com/waki285/agent-hooks/internal/lexscan"
	"github.com/waki285/agent-hooks/internal/types"
)

// Config controls which checks run and how denials are worded.
type Config struct {
	// BlockRemove denies rm commands in the shell flow.
	BlockRemove bool
	// ConfirmDestructiveFind asks for confirmation on destructive find
	// idioms in the shell flow.
	ConfirmDestructiveFind bool
	// DenySuppressions denies lint-suppression attributes written to Rust
	// files in the content flow.
	DenySuppressions bool
	// Lenient permits #[expect(...)] while still denying #[allow(...)].
	Lenient bool
	// AdditionalContext is appended, space-separated, to every denial
	// message in the content flow.
	AdditionalContext string
	// ExemptPaths are glob patterns; matching file paths skip the content
	// flow entirely.
	ExemptPaths []string
}

// Policy evaluates hook events against the configured checks.
type Policy struct {
	cfg        Config
	classifier *classify.Classifier
	sanitizer  *classify.Sanitizer
	detector   *lexscan.Detector
	exempt     *PathMatcher
}

// New builds a Policy, compiling every pattern once. The only fallible part
// is the user-supplied exempt glob list; the built-in patterns panic on
// compile failure, which would be a programming defect.
func New(cfg Config) (*Policy, error) {
	exempt, err := NewPathMatcher(cfg.ExemptPaths)
	if err != nil {
		return nil, fmt.Errorf("exempt paths: %w", err)
	}
	return &Policy{
		cfg:        cfg,
		classifier: classify.NewClassifier(),
		sanitizer:  classify.NewSanitizer(),
		detector:   lexscan.NewDetector(),
		exempt:     exempt,
	}, nil
}

// CheckCommand evaluates the shell-command flow for one event. Events that
// are not Bash invocations, or that carry no command text, yield NoOpinion.
// The deletion check outranks the destructive-find check when both are
// enabled and would match.
func (p *Policy) CheckCommand(in *hook.Input) Verdict {
	if in == nil || in.ToolName != types.ToolBash {
		return Verdict{}
	}
	cmd := ""
	if in.ToolInput != nil {
		cmd = in.ToolInput.Command
	}
	if cmd == "" {
		return Verdict{}
	}
	cmd = p.sanitizer.Command(cmd)

	if p.cfg.BlockRemove && p.classifier.IsRemoveCommand(cmd) {
		return Verdict{Kind: Deny, Message: msgRemoveForbidden}
	}
	if p.cfg.ConfirmDestructiveFind {
		if desc, ok := p.classifier.CheckDestructiveFind(cmd); ok {
			return Verdict{
				Kind:    Ask,
				Message: fmt.Sprintf(msgDestructiveFindFmt, desc),
			}
		}
	}
	return Verdict{}
}

// CheckContent evaluates the attribute-suppression flow for one event.
// Only Edit/Write events targeting a Rust file with non-empty new content
// are considered; replacement text is preferred over full content when both
// are present. Exempt paths yield NoOpinion regardless of content.
func (p *Policy) CheckContent(in *hook.Input) Verdict {
	if !p.cfg.DenySuppressions {
		return Verdict{}
	}
	if in == nil || !in.ToolName.Edits() || in.ToolInput == nil {
		return Verdict{}
	}
	path := in.ToolInput.FilePath
	if !isRustPath(path) {
		return Verdict{}
	}
	if p.exempt.Match(path) {
		return Verdict{}
	}
	content := in.ToolInput.NewString
	if content == "" {
		content = in.ToolInput.Content
	}
	if content == "" {
		return Verdict{}
	}

	finding := p.detector.Detect(content)
	msg := p.suppressionMessage(finding)
	if msg == "" {
		return Verdict{}
	}
	if p.cfg.AdditionalContext != "" {
		msg += " " + p.cfg.AdditionalContext
	}
	return Verdict{Kind: Deny, Message: msg}
}

// suppressionMessage picks the denial wording for a finding, or "" when the
// finding is acceptable under the current mode.
func (p *Policy) suppressionMessage(f lexscan.Finding) string {
	if p.cfg.Lenient {
		if f.HasAllow() {
			return msgLenientAllow
		}
		return ""
	}
	switch f {
	case lexscan.FindingBoth:
		return msgStrictBoth
	case lexscan.FindingAllow:
		return msgStrictAllow
	case lexscan.FindingExpect:
		return msgStrictExpect
	}
	return ""
}

// isRustPath reports whether path names a Rust source file, matching the
// extension case-insensitively.
func isRustPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".rs")
}
