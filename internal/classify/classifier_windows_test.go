//go:build windows

package classify

import "testing"

func TestIsRemoveCommandWindows(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{"del", "del file.txt", true},
		{"uppercase DEL", "DEL file.txt", true},
		{"remove-item", "Remove-Item -Recurse .", true},
		{"rd", "rd /s /q build", true},
		{"rmdir", "rmdir build", true},
		{"rm alias", "rm file.txt", true},
		{"backslash path", `C:\bin\rm file`, true},
		{"forward slash path", "/bin/rm file", true},
		{"dir is safe", "dir /s", false},
		{"get-childitem is safe", "Get-ChildItem", false},
		{"delete as substring", "undelete file", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsRemoveCommand(tt.cmd); got != tt.want {
				t.Errorf("IsRemoveCommand(%q) = %v, want %v", tt.cmd, got, tt.want)
			}
		})
	}
}

func TestCheckDestructiveFindWindows(t *testing.T) {
	c := NewClassifier()

	if desc, ok := c.CheckDestructiveFind("dir | move-item"); !ok || desc != "piped to move/move-item" {
		t.Errorf("CheckDestructiveFind(dir | move-item) = (%q, %v), want the move description", desc, ok)
	}
	if _, ok := c.CheckDestructiveFind("dir /s"); ok {
		t.Error("plain dir should not be destructive")
	}
	if _, ok := c.CheckDestructiveFind("Get-ChildItem"); ok {
		t.Error("Get-ChildItem without a pipe should not be destructive")
	}
}
