package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/pairscore/internal/config"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params [params.txt]",
		Short: "Show the effective scoring parameters",
		Long: `
Print the scoring parameters that a run would use: the defaults, merged
with the given parameter file when one is named.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			params, paramFile, err := config.ResolveParams(path)
			if err != nil {
				return err
			}
			reportParams(newLogger(cmd.ErrOrStderr()), params, paramFile, false)

			fmt.Fprintln(cmd.OutOrStdout(), params)
			return nil
		},
	}
}
