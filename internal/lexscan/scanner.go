// Package lexscan performs approximate lexical analysis of Rust source text.
//
// The scanner is deliberately not a full tokenizer. It tracks just enough
// state to decide whether a byte offset should count as real code: line
// comments, an open/close tally of block comment markers, and string and
// raw-string literals. Known limitations, kept for behavioral parity with
// the checks this was modeled on:
//
//   - a "//" inside an earlier string literal on the same line is taken for
//     a line comment start;
//   - "/*" or "*/" inside a string corrupts the block comment tally;
//   - any quote byte closes a raw string, regardless of the raw string's
//     '#' delimiter count, so r##"…"…"## misleads the walk.
package lexscan

import "strings"

// ExcludedAt reports whether the byte offset off in buf lies inside a line
// comment, an unterminated block comment, or a string/raw-string literal.
// Only the prefix of buf before off is examined. Offsets at or before 0, or
// past the end of buf, are never excluded.
func ExcludedAt(buf string, off int) bool {
	if off <= 0 || off > len(buf) {
		return false
	}
	before := buf[:off]

	// Line comment: a "//" anywhere between the start of the current line
	// and the offset.
	lineStart := 0
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		lineStart = i + 1
	}
	if strings.Contains(before[lineStart:], "//") {
		return true
	}

	// Block comment: more openers than closers in the prefix means the
	// offset sits inside an unterminated /* ... */.
	if strings.Count(before, "/*") > strings.Count(before, "*/") {
		return true
	}

	// String literals: walk the prefix byte by byte, consuming complete
	// string and raw-string literals. Ending the walk inside one means the
	// offset is inside it too.
	inRaw := false
	for i := 0; i < len(before); {
		b := before[i]
		if inRaw {
			if b == '"' {
				inRaw = false
			}
			i++
			continue
		}
		// Raw string opener: r, zero or more #, then a quote.
		if b == 'r' && i+1 < len(before) {
			j := i + 1
			for j < len(before) && before[j] == '#' {
				j++
			}
			if j < len(before) && before[j] == '"' {
				inRaw = true
				i = j + 1
				continue
			}
		}
		// Ordinary string opener: unescaped quote. Scan to its unescaped
		// closing quote; no closer before the offset means the offset is
		// inside the string.
		if b == '"' && (i == 0 || before[i-1] != '\\') {
			k := i + 1
			for k < len(before) {
				if before[k] == '"' && before[k-1] != '\\' {
					break
				}
				k++
			}
			if k >= len(before) {
				return true
			}
			i = k + 1
			continue
		}
		i++
	}

	return inRaw
}
