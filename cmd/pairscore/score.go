package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aria-lang/pairscore/internal/alignment"
	"github.com/aria-lang/pairscore/internal/compare"
	"github.com/aria-lang/pairscore/internal/config"
	"github.com/aria-lang/pairscore/internal/input"
	"github.com/aria-lang/pairscore/internal/sequence"
	"github.com/aria-lang/pairscore/internal/stats"
)

var paramsHelp = `scoring parameter file <TXT>, one "name=value" per line.
Names are gap, identity, transition and transversion.`

// scoreFlags are bound into viper under their flag names.
var scoreFlags = []string{"params", "out", "yes", "skip-undefined", "progress", "summary", "show", "verbose"}

func newScoreCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <fasta> [params.txt] [output]",
		Short: "Score all sequence pairs of an aligned FASTA file",
		Long: `
Score every pair of sequences in an aligned FASTA file (.fna, .fasta, .fa)
and print one line per pair:

  id1-id2: Identity: 3/4 (75%), Gaps: 1/4 (25%), Score=2

Optional arguments name a parameter file and an output file. Arguments
containing "param" or "output" are matched by name, others by position.`,
		Args: func(cmd *cobra.Command, args []string) error {
			return input.CheckArgs(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, v, args)
		},
		SuggestionsMinimumDistance: 2,
	}

	cmd.Flags().StringP("params", "p", "", paramsHelp)
	cmd.Flags().StringP("out", "o", "", "output file, overwritten after confirmation")
	cmd.Flags().BoolP("yes", "y", false, "answer yes to every confirmation")
	cmd.Flags().Bool("skip-undefined", false, "skip pairs whose columns are all double gaps")
	cmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	cmd.Flags().Bool("summary", false, "print a summary after the pairs")
	cmd.Flags().Bool("show", false, "print both aligned sequences with a match line")
	cmd.Flags().BoolP("verbose", "v", false, "log parameters and counts")

	for _, name := range scoreFlags {
		v.BindPFlag(name, cmd.Flags().Lookup(name))
	}

	return cmd
}

func runScore(cmd *cobra.Command, v *viper.Viper, args []string) (err error) {
	settings, err := config.NewSettings(v)
	if err != nil {
		return err
	}

	files, err := input.ClassifyArgs(args)
	if err != nil {
		return err
	}
	if settings.Params != "" {
		files.Params = settings.Params
	}
	if settings.Out != "" {
		files.Output = settings.Out
	}

	confirm := input.Prompt(cmd.InOrStdin(), cmd.ErrOrStderr())
	if settings.Yes {
		confirm = input.Always(true)
	}

	files, err = input.Check(files, confirm)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr())

	params, paramFile, err := config.ResolveParams(files.Params)
	if err != nil {
		return err
	}
	reportParams(logger, params, paramFile, settings.Verbose)

	store, err := sequence.Load(files.Fasta)
	if err != nil {
		return fmt.Errorf("loading %s: %w", files.Fasta, err)
	}
	if settings.Verbose {
		logger.Printf("%d sequences, %d pairs (%s)", store.Len(), store.PairCount(), store.SeqType())
	}

	console := &compare.WriterSink{W: cmd.OutOrStdout()}
	sink := compare.MultiSink{console}
	if files.Output != "" {
		fileSink, ferr := compare.NewFileSink(files.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := fileSink.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		sink = append(sink, fileSink)
	}

	runner := compare.NewRunner(params, sink)
	runner.Logger = logger
	if settings.Show {
		// the visual block stays on the console, files keep one line per pair
		runner.Show = true
		runner.Display = console
		runner.Sink = sink[1:]
	}
	runner.ShowProgress = settings.Progress
	runner.ProgressOutput = cmd.ErrOrStderr()
	if settings.SkipUndefined {
		runner.OnUndefined = compare.Skip
	}

	summary := &stats.ComparisonSummary{}
	runner.Observer = func(pair compare.Pair, r *alignment.Result) {
		summary.Add(pair.ID1, pair.ID2, r)
	}

	report, err := runner.Run(cmd.Context(), store)
	if err != nil {
		return err
	}

	if settings.Summary {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	}
	if settings.Verbose {
		logger.Printf("compared %d of %d pairs, skipped %d", report.Compared, report.Total, report.Skipped)
	}

	return nil
}

// reportParams logs ignored parameter names, and the effective parameters
// when verbose.
func reportParams(logger *log.Logger, params alignment.Params, f *config.ParamFile, verbose bool) {
	if f != nil {
		for _, name := range f.Ignored {
			logger.Printf("ignoring unknown parameter %q", name)
		}
	}
	if verbose {
		logger.Printf("parameters: %s", params)
	}
}
