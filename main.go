// agent-hooks inspects tool events emitted by an AI coding agent and
// answers them with permission decisions: deny dangerous shell commands,
// ask before destructive find invocations, and deny lint-suppression
// attributes written into Rust sources.
//
// Each subcommand reads one JSON event from stdin and writes at most one
// JSON envelope to stdout. Malformed or irrelevant input produces no
// output and a zero exit status so a broken hook never blocks the agent.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/waki285/agent-hooks/internal/config"
	"github.com/waki285/agent-hooks/internal/logger"
	"github.com/waki285/agent-hooks/internal/types"
)

// Version is set at build time via ldflags: -X main.Version=x.y.z
var Version = "1.0.0"

var log = logger.New("cli")

var (
	flagConfig   string
	flagLogLevel string
	flagNoColor  bool

	// cfg is the merged configuration, populated by the root
	// PersistentPreRunE before any subcommand runs.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "agent-hooks",
	Short: "Permission hooks for AI coding agents",
	Long: `agent-hooks evaluates agent tool events and answers with permission
decisions. It is meant to be registered as a hook command; each
subcommand handles one hook event:

  permission-request   Shell commands (block rm, confirm destructive find)
  pre-tool-use         File edits (deny Rust lint-suppression attributes)

Input is a single JSON event on stdin. A decision, when one is reached,
is a single JSON envelope on stdout. No opinion means no output.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			lvl := types.LogLevel(flagLogLevel)
			if !lvl.Valid() {
				return fmt.Errorf("unknown log level %q", flagLogLevel)
			}
			cfg.LogLevel = lvl
		}
		if flagNoColor {
			cfg.NoColor = true
		}
		logger.SetGlobalLevel(logger.FromLogLevel(cfg.LogLevel))
		if cfg.NoColor {
			logger.SetColored(false)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored log output")

	rootCmd.AddCommand(permissionRequestCmd)
	rootCmd.AddCommand(preToolUseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
