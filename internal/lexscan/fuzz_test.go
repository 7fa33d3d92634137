//go:build go1.18

package lexscan

import "testing"

// FuzzExcludedAt checks that the scanner never panics and stays a pure
// function of (buffer, offset) for arbitrary byte soup.
func FuzzExcludedAt(f *testing.F) {
	f.Add("// #[allow(dead_code)]", 3)
	f.Add(`let s = "#[allow(x)]";`, 9)
	f.Add(`let s = r#"raw"#;`, 12)
	f.Add(`r"`, 2)
	f.Add("/* /* */", 7)
	f.Add(`"\"`, 2)
	f.Add("", 0)
	f.Add("x", -5)
	f.Add(`r####`, 5)

	f.Fuzz(func(t *testing.T, buf string, off int) {
		first := ExcludedAt(buf, off)
		second := ExcludedAt(buf, off)
		if first != second {
			t.Errorf("ExcludedAt(%q, %d) not deterministic: %v then %v", buf, off, first, second)
		}
		if (off <= 0 || off > len(buf)) && first {
			t.Errorf("ExcludedAt(%q, %d) = true for out-of-range offset", buf, off)
		}
	})
}

// FuzzDetect checks the detector end to end: no panics, deterministic
// results, and agreement between the combined finding and its accessors.
func FuzzDetect(f *testing.F) {
	f.Add("#[allow(dead_code)]")
	f.Add("#![expect(unused)]")
	f.Add("// #[allow(x)]\n#[expect(y)]")
	f.Add(`let s = r##"#[allow(x)]"##;`)
	f.Add("/* unterminated #[allow(x)]")
	f.Add("")

	d := NewDetector()
	f.Fuzz(func(t *testing.T, content string) {
		got := d.Detect(content)
		if got != d.Detect(content) {
			t.Errorf("Detect(%q) not deterministic", content)
		}
		if got == FindingBoth && (!got.HasAllow() || !got.HasExpect()) {
			t.Errorf("FindingBoth accessors inconsistent for %q", content)
		}
	})
}
