// Package types defines common type-safe enums used across the codebase.
package types

// ToolName identifies the agent tool that triggered a hook event.
//
// The constants below form the closed set of tools the hook knows about.
// Agents may still send any string for newer tools; such values survive
// decoding unchanged but report Known() == false, and every call site must
// handle that fallback explicitly instead of comparing raw strings.
type ToolName string

const (
	ToolTask      ToolName = "Task"
	ToolBash      ToolName = "Bash"
	ToolGlob      ToolName = "Glob"
	ToolGrep      ToolName = "Grep"
	ToolRead      ToolName = "Read"
	ToolEdit      ToolName = "Edit"
	ToolWrite     ToolName = "Write"
	ToolWebFetch  ToolName = "WebFetch"
	ToolWebSearch ToolName = "WebSearch"
)

// Known returns true if the tool name is one the hook recognizes.
func (t ToolName) Known() bool {
	switch t {
	case ToolTask, ToolBash, ToolGlob, ToolGrep, ToolRead, ToolEdit, ToolWrite, ToolWebFetch, ToolWebSearch:
		return true
	}
	return false
}

// Edits returns true for tools that write file content.
func (t ToolName) Edits() bool {
	return t == ToolEdit || t == ToolWrite
}

// HookEvent is the hook registration point an output envelope answers.
type HookEvent string

const (
	// EventPermissionRequest is the shell-command evaluation point.
	EventPermissionRequest HookEvent = "PermissionRequest"
	// EventPreToolUse is the pre-edit content evaluation point.
	EventPreToolUse HookEvent = "PreToolUse"
)

// Valid returns true if the HookEvent is a known valid value.
func (e HookEvent) Valid() bool {
	return e == EventPermissionRequest || e == EventPreToolUse
}

// Behavior is the decision behavior carried by a decision object.
type Behavior string

const (
	BehaviorAllow Behavior = "allow"
	BehaviorDeny  Behavior = "deny"
)

// PermissionDecision is the permission outcome carried by an envelope.
type PermissionDecision string

const (
	PermissionAllow PermissionDecision = "allow"
	PermissionAsk   PermissionDecision = "ask"
	PermissionDeny  PermissionDecision = "deny"
)

// LogLevel is a configuration-facing log level name.
type LogLevel string

const (
	LogTrace LogLevel = "trace"
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Valid returns true if the LogLevel is a known valid value.
func (l LogLevel) Valid() bool {
	switch l {
	case LogTrace, LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}
