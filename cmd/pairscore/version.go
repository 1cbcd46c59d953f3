package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), pairscore.Info())
		},
	}
}
