package types

import "testing"

func TestToolNameKnown(t *testing.T) {
	tests := []struct {
		name ToolName
		want bool
	}{
		{ToolBash, true},
		{ToolEdit, true},
		{ToolWrite, true},
		{ToolWebSearch, true},
		{ToolName("NotebookEdit"), false},
		{ToolName(""), false},
		{ToolName("bash"), false}, // case-sensitive, matches the wire format
	}
	for _, tt := range tests {
		if got := tt.name.Known(); got != tt.want {
			t.Errorf("ToolName(%q).Known() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestToolNameEdits(t *testing.T) {
	if !ToolEdit.Edits() || !ToolWrite.Edits() {
		t.Error("Edit and Write must report Edits() = true")
	}
	if ToolBash.Edits() || ToolName("Custom").Edits() {
		t.Error("non-editing tools must report Edits() = false")
	}
}

func TestLogLevelValid(t *testing.T) {
	for _, l := range []LogLevel{LogTrace, LogDebug, LogInfo, LogWarn, LogError} {
		if !l.Valid() {
			t.Errorf("LogLevel(%q).Valid() = false, want true", l)
		}
	}
	if LogLevel("verbose").Valid() {
		t.Error(`LogLevel("verbose").Valid() = true, want false`)
	}
}

func TestHookEventValid(t *testing.T) {
	if !EventPermissionRequest.Valid() || !EventPreToolUse.Valid() {
		t.Error("known hook events must be valid")
	}
	if HookEvent("PostToolUse").Valid() {
		t.Error(`HookEvent("PostToolUse").Valid() = true, want false`)
	}
}
