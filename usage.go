package main

import (
	"github.com/spf13/cobra"

	"github.com/hannajonsd/granular-imports/workspace"
)

func newUsageCommand() *cobra.Command {
	var extract, declaration, source string

	cmd := &cobra.Command{
		Use:   "usage [paths...]",
		Short: "Show usage counts and extraction decisions per import",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			runner, err := newRunner(cmd, extract, declaration, source, false, false)
			if err != nil {
				return err
			}

			summary, err := runner.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			workspace.DisplayUsage(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	addTransformFlags(cmd, &extract, &declaration, &source)
	return cmd
}
