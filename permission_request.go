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
	flagBlockRM                bool
	flagConfirmDestructiveFind bool
)

var permissionRequestCmd = &cobra.Command{
	Use:   "permission-request",
	Short: "Evaluate a shell command event",
	Long: `Evaluate a PermissionRequest event carrying a shell command.

With --block-rm, commands that invoke rm (or its Windows equivalents)
are denied. With --confirm-destructive-find, find invocations that
delete or execute are answered with "ask" so the user confirms them.
Both checks can also be enabled in the config file; flags and config
combine, either source is enough to turn a check on.

Examples:
  echo '{"tool_name":"Bash","tool_input":{"command":"rm -rf /"}}' \
    | agent-hooks permission-request --block-rm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pcfg := policy.Config{
			BlockRemove:            cfg.Checks.BlockRM || flagBlockRM,
			ConfirmDestructiveFind: cfg.Checks.ConfirmDestructiveFind || flagConfirmDestructiveFind,
		}
		return runPermissionRequest(pcfg, os.Stdin, os.Stdout)
	},
}

func init() {
	permissionRequestCmd.Flags().BoolVar(&flagBlockRM, "block-rm", false, "Deny commands that invoke rm")
	permissionRequestCmd.Flags().BoolVar(&flagConfirmDestructiveFind, "confirm-destructive-find", false, "Ask before destructive find invocations")
}

// runPermissionRequest evaluates one shell-command event. Input that cannot
// be decoded yields no output and a nil error; the hook must never block
// the agent on its own malfunction.
func runPermissionRequest(pcfg policy.Config, stdin io.Reader, stdout io.Writer) error {
	p, err := policy.New(pcfg)
	if err != nil {
		return err
	}

	in, err := hook.ReadInput(stdin)
	if err != nil {
		log.Debug("unreadable event, no opinion: %v", err)
		return nil
	}

	v := p.CheckCommand(in)
	switch v.Kind {
	case policy.Deny:
		log.Info("denying command for %s", in.ToolName)
		return hook.WriteDeny(stdout, types.EventPermissionRequest, v.Message)
	case policy.Ask:
		log.Info("asking confirmation for %s", in.ToolName)
		return hook.WriteAsk(stdout, types.EventPermissionRequest, v.Message)
	default:
		return nil
	}
}
