package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aria-lang/pairscore/internal/sequence"
	"github.com/aria-lang/pairscore/internal/stats"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <fasta>",
		Short: "Show sequence file information",
		Long: `
Print per-sequence and file statistics of an aligned FASTA file. With
--fasta the sequences are printed as they were read instead: upper case,
one entry per identifier (the last occurrence wins), 80 columns per line.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sequence.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if dump, _ := cmd.Flags().GetBool("fasta"); dump {
				return sequence.WriteFASTA(out, store)
			}

			setStats, err := stats.FromStore(store)
			if err != nil {
				return err
			}

			for _, seq := range store.Sequences() {
				fmt.Fprintln(out, stats.FromSequence(seq))
			}
			fmt.Fprintln(out, setStats)
			return nil
		},
	}

	cmd.Flags().Bool("fasta", false, "print the sequences as normalized FASTA")

	return cmd
}
