package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aria-lang/pairscore/internal/config"
	"github.com/aria-lang/pairscore/internal/input"
	"github.com/aria-lang/pairscore/pkg/pairscore"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks command line mistakes.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[pairscore] ", 0)
}

// newRootCmd builds the command tree with settings read through v.
func newRootCmd(v *viper.Viper) *cobra.Command {
	config.Bind(v)

	root := &cobra.Command{
		Use:   "pairscore",
		Short: "Score every pair of aligned nucleotide sequences in a FASTA file",
		Long: `
Compare every pair of pre-aligned DNA or RNA sequences in a FASTA file.
Each pair is reported with its identities, gaps and a score built from
the gap, identity, transition and transversion parameters.`,
		Version:       pairscore.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(newScoreCmd(v))
	root.AddCommand(newInfoCmd())
	root.AddCommand(newParamsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var usage *usageError
	var arity *input.ArityError
	switch {
	case err == nil, errors.Is(err, input.ErrDeclined):
		return exitOK
	case errors.As(err, &usage), errors.As(err, &arity):
		return exitUsage
	case strings.HasPrefix(err.Error(), "unknown command"):
		return exitUsage
	default:
		return exitFailure
	}
}

// run executes the command line args and returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(viper.New())
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	logger := newLogger(stderr)
	switch {
	case err == nil:
	case errors.Is(err, input.ErrDeclined):
		logger.Println("stopped: declined by user")
	default:
		logger.Printf("error: %v", err)
		var usage *usageError
		var arity *input.ArityError
		if errors.As(err, &usage) || errors.As(err, &arity) {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		}
	}
	return exitCode(err)
}
