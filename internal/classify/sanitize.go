package classify

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"mvdan.cc/sh/v3/syntax"
)

// Sanitizer normalizes command text before classification so encoding
// tricks (null bytes, fullwidth letters, homoglyphs, duplicated slashes)
// cannot slip a dangerous command past the patterns. It applies to command
// strings only; file content under attribute detection is scanned literally
// and must never pass through here.
type Sanitizer struct {
	spaceRun *regexp.Regexp
	absPath  *regexp.Regexp
}

// NewSanitizer compiles the sanitizer's patterns once.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		spaceRun: regexp.MustCompile(` {2,}`),
		absPath:  regexp.MustCompile(`(/[a-zA-Z0-9_./-]+)`),
	}
}

// Command returns cmd normalized for matching: valid UTF-8, no null bytes
// or stray control characters, NFKC-normalized with confusables and
// invisible formatting stripped, whitespace collapsed, and literal absolute
// paths cleaned.
func (s *Sanitizer) Command(cmd string) string {
	cmd = stripNullBytes(cmd)
	cmd = stripControlChars(cmd)
	cmd = NormalizeUnicode(cmd)
	cmd = s.collapseWhitespace(cmd)
	cmd = strings.TrimSpace(cmd)
	cmd = s.normalizePaths(cmd)
	return cmd
}

// NormalizeUnicode applies NFKC normalization and strips invisible
// formatting characters and cross-script confusables. NFKC handles
// fullwidth→ASCII and compatibility decomposition; the confusable table
// handles Cyrillic/Greek homoglyphs (а→a, е→e, etc.). A second NFKC pass
// runs after confusable replacement because substituting a base character
// can create new composition pairs with combining marks.
func NormalizeUnicode(s string) string {
	s = strings.ToValidUTF8(s, "�")
	s = norm.NFKC.String(s)
	s = stripInvisible(s)
	s = stripConfusables(s)
	return norm.NFKC.String(s)
}

// collapseWhitespace replaces whitespace variants with spaces and collapses
// runs, so token-boundary patterns see a single canonical separator.
func (s *Sanitizer) collapseWhitespace(cmd string) string {
	for _, ws := range []string{"\t", "\n", "\r", "\v", "\f"} {
		cmd = strings.ReplaceAll(cmd, ws, " ")
	}
	return s.spaceRun.ReplaceAllString(cmd, " ")
}

// normalizePaths cleans literal absolute paths inside the command, e.g.
// "/bin//rm" → "/bin/rm", so path-prefixed verbs classify consistently.
// Words containing shell expansions are left untouched.
func (s *Sanitizer) normalizePaths(cmd string) string {
	if !strings.Contains(cmd, "/") {
		return cmd
	}
	// Shell special chars right after a slash (e.g. /proc/$PID) confuse the
	// parser-based pass; fall back to the conservative regex rewrite.
	if containsShellSpecialInPath(cmd) {
		return s.normalizePathsRegex(cmd)
	}
	return s.normalizePathsShellParse(cmd)
}

func containsShellSpecialInPath(cmd string) bool {
	for _, marker := range []string{"/$", "/`", "/*", "/("} {
		if strings.Contains(cmd, marker) {
			return true
		}
	}
	return false
}

// normalizePathsRegex cleans every absolute-path-shaped substring in place.
func (s *Sanitizer) normalizePathsRegex(cmd string) string {
	return s.absPath.ReplaceAllStringFunc(cmd, func(path string) string {
		normalized := filepath.Clean(path)
		if strings.HasPrefix(path, "/") && !strings.HasPrefix(normalized, "/") {
			normalized = "/" + normalized
		}
		if strings.HasSuffix(path, "/") && !strings.HasSuffix(normalized, "/") {
			normalized += "/"
		}
		return normalized
	})
}

// normalizePathsShellParse parses cmd as bash and cleans only literal words
// that look like absolute paths, leaving expansions and quoting intact.
func (s *Sanitizer) normalizePathsShellParse(cmd string) string {
	parser := syntax.NewParser(syntax.KeepComments(false), syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(cmd), "")
	if err != nil {
		return s.normalizePathsRegex(cmd)
	}

	type replacement struct {
		start, end int
		value      string
	}
	var replacements []replacement

	syntax.Walk(file, func(node syntax.Node) bool {
		word, ok := node.(*syntax.Word)
		if !ok {
			return true
		}
		if !isLiteralWord(word) {
			return true
		}
		lit := literalValue(word)
		if !strings.HasPrefix(lit, "/") || len(lit) < 2 {
			return true
		}
		normalized := filepath.Clean(lit)
		if !strings.HasPrefix(normalized, "/") {
			normalized = "/" + normalized
		}
		if normalized == lit {
			return true
		}
		start := word.Pos().Offset()
		end := word.End().Offset()
		if start <= uint(len(cmd)) && end <= uint(len(cmd)) {
			replacements = append(replacements, replacement{
				start: int(start),
				end:   int(end),
				value: normalized,
			})
		}
		return true
	})

	if len(replacements) == 0 {
		return cmd
	}
	// Apply back to front so earlier offsets stay valid.
	result := []byte(cmd)
	for i := len(replacements) - 1; i >= 0; i-- {
		r := replacements[i]
		result = append(result[:r.start], append([]byte(r.value), result[r.end:]...)...)
	}
	return string(result)
}

func isLiteralWord(word *syntax.Word) bool {
	for _, part := range word.Parts {
		if _, ok := part.(*syntax.Lit); !ok {
			return false
		}
	}
	return true
}

func literalValue(word *syntax.Word) string {
	var buf bytes.Buffer
	for _, part := range word.Parts {
		if lit, ok := part.(*syntax.Lit); ok {
			buf.WriteString(lit.Value)
		}
	}
	return buf.String()
}

// stripNullBytes removes null bytes, which C-level syscalls truncate at.
func stripNullBytes(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 {
			return -1
		}
		return r
	}, s)
}

// stripControlChars removes ASCII control characters, keeping the
// whitespace variants for the collapse pass to turn into spaces. Dropping
// them outright would glue adjacent tokens together.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r', '\v', '\f':
			return r
		}
		if r < 32 {
			return -1
		}
		return r
	}, s)
}
