// Package hook implements the agent's hook wire protocol: the JSON event
// envelope read from stdin and the decision envelope written to stdout.
package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/waki285/agent-hooks/internal/types"
)

// Input is the event envelope the agent writes to the hook's stdin. Every
// field is optional on the wire; absent fields decode to zero values.
type Input struct {
	ToolName  types.ToolName `json:"tool_name"`
	ToolInput *ToolInput     `json:"tool_input"`
}

// ToolInput carries the tool-specific payload fields the checks read.
// Bash events populate Command; Edit events populate FilePath and
// NewString; Write events populate FilePath and Content.
type ToolInput struct {
	Command   string `json:"command"`
	NewString string `json:"new_string"`
	Content   string `json:"content"`
	FilePath  string `json:"file_path"`
}

// ReadInput decodes one event envelope from r.
func ReadInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read hook input: %w", err)
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decode hook input: %w", err)
	}
	return &in, nil
}

// Output is the decision envelope printed to stdout.
type Output struct {
	HookSpecificOutput SpecificOutput `json:"hookSpecificOutput"`
}

// SpecificOutput is the event-tagged decision payload. Exactly one of the
// decision object or the permissionDecision fields is populated.
type SpecificOutput struct {
	HookEventName            types.HookEvent          `json:"hookEventName"`
	Decision                 *Decision                `json:"decision,omitempty"`
	PermissionDecision       types.PermissionDecision `json:"permissionDecision,omitempty"`
	PermissionDecisionReason string                   `json:"permissionDecisionReason,omitempty"`
}

// Decision is the behavior+message object used by PermissionRequest
// denials.
type Decision struct {
	Behavior types.Behavior `json:"behavior"`
	Message  string         `json:"message"`
}

// WriteDeny emits a deny decision for the given event. PermissionRequest
// denials use the decision object form; PreToolUse denials use the
// permissionDecision form, matching what the agent expects at each
// registration point.
func WriteDeny(w io.Writer, event types.HookEvent, message string) error {
	out := Output{SpecificOutput{HookEventName: event}}
	if event == types.EventPermissionRequest {
		out.HookSpecificOutput.Decision = &Decision{
			Behavior: types.BehaviorDeny,
			Message:  message,
		}
	} else {
		out.HookSpecificOutput.PermissionDecision = types.PermissionDeny
		out.HookSpecificOutput.PermissionDecisionReason = message
	}
	return write(w, out)
}

// WriteAsk emits an ask decision with the given reason.
func WriteAsk(w io.Writer, event types.HookEvent, reason string) error {
	out := Output{SpecificOutput{
		HookEventName:            event,
		PermissionDecision:       types.PermissionAsk,
		PermissionDecisionReason: reason,
	}}
	return write(w, out)
}

func write(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode hook output: %w", err)
	}
	return nil
}
