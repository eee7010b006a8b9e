package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YT-Jin/diskspd/internal/output"
	"github.com/YT-Jin/diskspd/internal/parser"
	"github.com/YT-Jin/diskspd/internal/profile"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show PROFILE",
		Short: "Print the loaded profile",
		Long: `Load a profile and print it with every default filled in.

Formats:
  text  indented summary (default)
  json  the full profile as JSON
  yaml  the full profile as a YAML document`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	cmd.Flags().StringP("format", "f", string(output.FormatText), "Output format (text, json, yaml)")
	cmd.Flags().Bool("strict", false, "Also require a runnable profile")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	p, err := loadProfile(cmd, args[0])
	if err != nil {
		return err
	}

	text, err := output.GetFormatter(format, noColor(cmd, cmd.OutOrStdout())).FormatProfile(p)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

// loadProfile parses path with the command's logger and --strict flag.
func loadProfile(cmd *cobra.Command, path string) (*profile.Profile, error) {
	strict, _ := cmd.Flags().GetBool("strict")

	opts := []parser.Option{parser.WithLogger(newLogger(cmd))}
	if strict {
		opts = append(opts, parser.WithStrictValidation())
	}
	return parser.ParseFile(path, opts...)
}

func countTargets(spans []profile.TimeSpan) int {
	n := 0
	for _, ts := range spans {
		n += len(ts.Targets)
	}
	return n
}
