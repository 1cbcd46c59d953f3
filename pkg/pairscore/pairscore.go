// Package pairscore provides a high-level API for scoring aligned
// nucleotide sequences pair by pair.
//
// Example usage:
//
//	store, err := pairscore.LoadStore("aligned.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	run, err := pairscore.Compare(ctx, store, pairscore.DefaultParams(), pairscore.CompareOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range run.Lines {
//	    fmt.Println(line)
//	}
package pairscore

import (
	"context"
	"fmt"
	"io"

	"github.com/aria-lang/pairscore/internal/alignment"
	"github.com/aria-lang/pairscore/internal/compare"
	"github.com/aria-lang/pairscore/internal/config"
	"github.com/aria-lang/pairscore/internal/sequence"
	"github.com/aria-lang/pairscore/internal/stats"
)

// Re-export types for convenience
type (
	Sequence          = sequence.Sequence
	SequenceType      = sequence.SequenceType
	Store             = sequence.Store
	Params            = alignment.Params
	Param             = alignment.Param
	Result            = alignment.Result
	ParsedLine        = alignment.ParsedLine
	ParamFile         = config.ParamFile
	SequenceSetStats  = stats.SequenceSetStats
	ComparisonSummary = stats.ComparisonSummary

	SequenceError         = sequence.SequenceError
	ScoringError          = alignment.ScoringError
	AlphabetConflictError = sequence.AlphabetConflictError
	UndefinedPercentError = alignment.UndefinedPercentError
)

// Constants
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Unknown = sequence.Unknown
)

// NewSequence creates a new aligned sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new aligned sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// NewStore creates an empty sequence store.
func NewStore() *Store {
	return sequence.NewStore()
}

// LoadStore reads every sequence of a FASTA file.
func LoadStore(filename string) (*Store, error) {
	return sequence.Load(filename)
}

// ParseStore reads every sequence of FASTA text.
func ParseStore(r io.Reader) (*Store, error) {
	return sequence.Parse(r)
}

// DefaultParams returns gap=-1, identity=1, transition=-1, transversion=-2.
func DefaultParams() Params {
	return alignment.DefaultParams()
}

// LoadParams reads a parameter file and merges it over the defaults.
// An empty path yields the defaults.
func LoadParams(path string) (Params, *ParamFile, error) {
	return config.ResolveParams(path)
}

// Score scores two aligned sequences.
func Score(seq1, seq2 string, params Params) (*Result, error) {
	return alignment.Score(seq1, seq2, params)
}

// ParseLine parses a line produced by Result.Line.
func ParseLine(line string) (*ParsedLine, error) {
	return alignment.ParseLine(line)
}

// Stats summarizes the sequences of a store.
func Stats(store *Store) (*SequenceSetStats, error) {
	return stats.FromStore(store)
}

// CompareOptions tune a comparison run.
type CompareOptions struct {
	// SkipUndefined skips pairs whose columns are all double gaps instead
	// of failing the run.
	SkipUndefined bool
	// Show renders both aligned sequences with a match line.
	Show bool
}

// PairResult is the result of one compared pair.
type PairResult struct {
	ID1    string  `json:"id1"`
	ID2    string  `json:"id2"`
	Result *Result `json:"result"`
}

// Comparison holds the outcome of comparing every pair of a store.
type Comparison struct {
	Lines   []string           `json:"lines"`
	Results []PairResult       `json:"results"`
	Summary *ComparisonSummary `json:"summary"`
}

// Compare scores every pair of store and collects the emitted lines.
func Compare(ctx context.Context, store *Store, params Params, opts CompareOptions) (*Comparison, error) {
	sink := &compare.CollectSink{}
	runner := compare.NewRunner(params, sink)
	runner.Show = opts.Show
	if opts.SkipUndefined {
		runner.OnUndefined = compare.Skip
	}

	cmp := &Comparison{Summary: &ComparisonSummary{}}
	runner.Observer = func(pair compare.Pair, r *alignment.Result) {
		cmp.Summary.Add(pair.ID1, pair.ID2, r)
		if r != nil {
			cmp.Results = append(cmp.Results, PairResult{ID1: pair.ID1, ID2: pair.ID2, Result: r})
		}
	}

	if _, err := runner.Run(ctx, store); err != nil {
		return nil, err
	}

	cmp.Lines = sink.Lines()
	return cmp, nil
}

// Version returns the pairscore version.
func Version() string {
	return "1.0.0"
}

// Info returns information about pairscore.
func Info() string {
	return fmt.Sprintf(`pairscore v%s - Pairwise Alignment Scoring

Scores every pair of pre-aligned nucleotide sequences in a FASTA file.

Features:
  - DNA/RNA aligned sequences with gap handling
  - Identity, gap, transition and transversion counting
  - Configurable scoring parameters from a text file
  - Visual alignment with a match line
  - Sequence set and comparison summaries
  - REST API
`, Version())
}
