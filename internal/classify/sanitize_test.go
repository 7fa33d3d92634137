package classify

import "testing"

func TestSanitizerCommand(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name string
		cmd  string
		want string
	}{
		{
			name: "plain command unchanged",
			cmd:  "ls -la",
			want: "ls -la",
		},
		{
			name: "null bytes stripped",
			cmd:  "rm\x00 -rf /tmp",
			want: "rm -rf /tmp",
		},
		{
			name: "whitespace collapsed",
			cmd:  "rm \t -rf\n/tmp/x",
			want: "rm -rf /tmp/x",
		},
		{
			name: "surrounding space trimmed",
			cmd:  "  rm file  ",
			want: "rm file",
		},
		{
			name: "fullwidth letters folded",
			cmd:  "ｒｍ -rf /", // ｒｍ
			want: "rm -rf /",
		},
		{
			name: "cyrillic homoglyphs folded",
			cmd:  "ср /tmp/a /tmp/b", // ср → cp
			want: "cp /tmp/a /tmp/b",
		},
		{
			name: "zero-width joiner stripped",
			cmd:  "r\u200dm -rf /tmp",
			want: "rm -rf /tmp",
		},
		{
			name: "duplicate slashes cleaned",
			cmd:  "/bin//rm file",
			want: "/bin/rm file",
		},
		{
			name: "dot segments cleaned",
			cmd:  "/bin/../bin/rm file",
			want: "/bin/rm file",
		},
		{
			name: "variable expansion left alone",
			cmd:  "cat /proc/$PID/cmdline",
			want: "cat /proc/$PID/cmdline",
		},
		{
			name: "glob path left alone",
			cmd:  "ls /tmp/*",
			want: "ls /tmp/*",
		},
		{
			name: "empty command",
			cmd:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Command(tt.cmd); got != tt.want {
				t.Errorf("Command(%q) = %q, want %q", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestSanitizerCommandIdempotent(t *testing.T) {
	s := NewSanitizer()
	inputs := []string{
		"rm -rf /tmp/x",
		"  find\t. -delete ",
		"ｒｍ file",
		"/bin//../bin/rm -- /etc//passwd",
		"echo 'hello  world'",
	}
	for _, cmd := range inputs {
		once := s.Command(cmd)
		twice := s.Command(once)
		if once != twice {
			t.Errorf("Command not idempotent for %q: %q then %q", cmd, once, twice)
		}
	}
}

// Sanitization plus classification: the encoding tricks the sanitizer
// unwinds must land in the classifier's patterns.
func TestSanitizeThenClassify(t *testing.T) {
	s := NewSanitizer()
	c := NewClassifier()

	evasions := []string{
		"ｒｍ -rf /",    // fullwidth rm
		"r\u200dm -rf /tmp",     // zero-width joiner inside the verb
		"r\ufeffm -rf /tmp",     // zero-width no-break space inside the verb
		"/bin//rm -rf /",        // duplicated slash in the path prefix
		"rm\x00 -rf /",          // null byte after the verb
		"sudo\t\trm -rf /home",  // tab runs between tokens
	}
	for _, cmd := range evasions {
		if !c.IsRemoveCommand(s.Command(cmd)) {
			t.Errorf("sanitized %q escaped the deletion classifier", cmd)
		}
	}
}

func TestNormalizeUnicode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain ascii", "plain ascii"},
		{"ａｂｃ", "abc"},     // fullwidth
		{"pаsswd", "passwd"},         // Cyrillic а
		{"x\u200by", "xy"},           // zero-width space
		{"a\ufeffb", "ab"},           // byte order mark
		{"ᴘᴀss", "pass"},        // small capitals
		{"café", "café"},  // combining acute composes
	}
	for _, tt := range tests {
		if got := NormalizeUnicode(tt.in); got != tt.want {
			t.Errorf("NormalizeUnicode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
