package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/waki285/agent-hooks/internal/hook"
	"github.com/waki285/agent-hooks/internal/policy"
	"github.com/waki285/agent-hooks/internal/types"
)

var (
	flagDenyRustAllow     bool
	flagExpect            bool
	flagAdditionalContext string
)

var preToolUseCmd = &cobra.Command{
	Use:   "pre-tool-use",
	Short: "Evaluate a file edit event",
	Long: `Evaluate a PreToolUse event carrying an edit or write to a file.

With --deny-rust-allow, edits that introduce #[allow(...)] or
#![allow(...)] into .rs files are denied. With --expect, the check is
lenient: #[expect(...)] is permitted and only #[allow(...)] is denied.
Attributes inside comments or string literals are ignored. Paths
matching an exempt_paths glob from the config file are skipped.

--additional-context appends extra guidance to every denial message.

Examples:
  echo '{"tool_name":"Edit","tool_input":{"file_path":"src/lib.rs","new_string":"#[allow(dead_code)]"}}' \
    | agent-hooks pre-tool-use --deny-rust-allow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		extra := cfg.AdditionalContext
		if flagAdditionalContext != "" {
			extra = flagAdditionalContext
		}
		pcfg := policy.Config{
			DenySuppressions:  cfg.Checks.DenyRustAllow || flagDenyRustAllow,
			Lenient:           cfg.Lenient || flagExpect,
			AdditionalContext: extra,
			ExemptPaths:       cfg.ExemptPaths,
		}
		return runPreToolUse(pcfg, os.Stdin, os.Stdout)
	},
}

func init() {
	preToolUseCmd.Flags().BoolVar(&flagDenyRustAllow, "deny-rust-allow", false, "Deny #[allow] attributes in Rust files")
	preToolUseCmd.Flags().BoolVar(&flagExpect, "expect", false, "Permit #[expect] while still denying #[allow]")
	preToolUseCmd.Flags().StringVar(&flagAdditionalContext, "additional-context", "", "Extra text appended to denial messages")
}

// runPreToolUse evaluates one file-edit event with the same fail-open
// posture as runPermissionRequest.
func runPreToolUse(pcfg policy.Config, stdin io.Reader, stdout io.Writer) error {
	p, err := policy.New(pcfg)
	if err != nil {
		return err
	}

	in, err := hook.ReadInput(stdin)
	if err != nil {
		log.Debug("unreadable event, no opinion: %v", err)
		return nil
	}

	v := p.CheckContent(in)
	if v.Kind == policy.Deny {
		log.Info("denying edit for %s", in.ToolName)
		return hook.WriteDeny(stdout, types.EventPreToolUse, v.Message)
	}
	return nil
}
