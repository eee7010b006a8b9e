package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/YT-Jin/diskspd/internal/output"
	"github.com/YT-Jin/diskspd/internal/parser"
	"github.com/YT-Jin/diskspd/internal/xmldoc"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate PROFILE...",
		Short: "Check that profiles load",
		Long: `Load each profile and report whether it is valid.

With --strict a profile must also be runnable: at least one time span,
every time span with at least one target.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}
	cmd.Flags().Bool("strict", false, "Also require a runnable profile")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	out := cmd.OutOrStdout()
	plain := noColor(cmd, out)
	scheme := output.SchemeFor(plain)

	opts := []parser.Option{parser.WithLogger(newLogger(cmd))}
	if strict {
		opts = append(opts, parser.WithStrictValidation())
	}

	failed := 0
	for _, path := range args {
		p, err := parser.ParseFile(path, opts...)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n", output.ErrorIcon(plain), scheme.Path.Sprint(path))
			printProblems(out, scheme, err)
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", output.SuccessIcon(plain), scheme.Path.Sprint(path),
			scheme.Disabled.Sprintf("(%d time span(s), %d target(s))", len(p.TimeSpans), countTargets(p.TimeSpans)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d profile(s) invalid", failed, len(args))
	}
	return nil
}

// printProblems writes one line per problem. Schema violations carry every
// offending location; other errors are a single line.
func printProblems(w io.Writer, scheme *output.ColorScheme, err error) {
	var merr *multierror.Error
	var derr *xmldoc.Error
	if errors.As(err, &derr) && derr.Kind == xmldoc.SchemaViolation && errors.As(derr.Err, &merr) {
		fmt.Fprintf(w, "    %s\n", scheme.Error.Sprint(derr.Kind.Error()+": "+derr.Reason))
		for _, e := range merr.Errors {
			fmt.Fprintf(w, "      - %s\n", e)
		}
		return
	}
	fmt.Fprintf(w, "    %s\n", scheme.Error.Sprint(err.Error()))
}
