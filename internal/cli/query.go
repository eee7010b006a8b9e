package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/YT-Jin/diskspd/pkg/jsonpath"
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query PROFILE EXPR...",
		Short: "Print values selected from the loaded profile",
		Long: `Load a profile and evaluate JSONPath expressions against its JSON form.
Each result is printed on its own line, in argument order.

Examples:
  diskspd-profile query profile.xml '$.timeSpans[0].duration'
  diskspd-profile query profile.xml '$.timeSpans[*].targets[*].path'`,
		Args: cobra.MinimumNArgs(2),
		RunE: runQuery,
	}
	cmd.Flags().Bool("strict", false, "Also require a runnable profile")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	p, err := loadProfile(cmd, args[0])
	if err != nil {
		return err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "failed encoding profile")
	}

	var result *multierror.Error
	for _, expr := range args[1:] {
		value, err := jsonpath.Extract(string(data), expr)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return result.ErrorOrNil()
}
