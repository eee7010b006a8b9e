package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/YT-Jin/diskspd/internal/logging"
	"github.com/YT-Jin/diskspd/internal/output"
)

var version = "0.1.0"

const appName = "diskspd-profile"

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Inspect and validate storage benchmark profiles",
		Version: version,
		Long: `diskspd-profile loads XML benchmark profiles the way the benchmark engine
does and reports what they configure: time spans, targets, affinity,
event tracing and result options.

Every command fails on the first malformed or out-of-range value and
names the element it came from.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newQueryCmd())
	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(RootCmd.ErrOrStderr(), "%s Error: %v\n", output.ErrorIcon(noColor(RootCmd, RootCmd.ErrOrStderr())), err)
		return err
	}
	return nil
}

// noColor resolves the --no-color flag against the writer the output goes to.
func noColor(cmd *cobra.Command, w io.Writer) bool {
	flag, _ := cmd.Flags().GetBool("no-color")
	return output.ColorDisabled(w, flag)
}

// newLogger builds the logger for a command from the persistent flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")

	return logging.NewLogger(appName, &logging.LogConfig{
		LogLevel:  level,
		LogColor:  !noColor(cmd, cmd.ErrOrStderr()),
		LogAsJSON: asJSON,
		Output:    cmd.ErrOrStderr(),
	})
}
