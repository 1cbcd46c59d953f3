// Package compare runs the all-pairs comparison over a sequence store.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/cheggaaa/pb.v1"

	"github.com/aria-lang/pairscore/internal/alignment"
	"github.com/aria-lang/pairscore/internal/sequence"
)

// Policy decides what happens to a pair whose percentages are undefined.
type Policy int

const (
	// Abort stops the run with the pair's error
	Abort Policy = iota
	// Skip logs the pair and continues
	Skip
)

func (p Policy) String() string {
	if p == Skip {
		return "skip"
	}
	return "abort"
}

// Pair is one unordered comparison, I < J.
type Pair struct {
	I   int
	J   int
	ID1 string
	ID2 string
}

// Pairs returns every pair (i, j) with i < j, outer index ascending, then
// inner index ascending.
func Pairs(ids []string) []Pair {
	n := len(ids)
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, ID1: ids[i], ID2: ids[j]})
		}
	}
	return pairs
}

// PairError wraps a scoring failure with the pair it occurred on.
type PairError struct {
	Pair Pair
	Err  error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("%s-%s: %v", e.Pair.ID1, e.Pair.ID2, e.Err)
}

func (e *PairError) Unwrap() error {
	return e.Err
}

// Observer is called with every successfully scored pair, after its line
// was emitted. A nil result marks a skipped pair.
type Observer func(pair Pair, result *alignment.Result)

// Report counts the pairs of a finished run.
type Report struct {
	Total    int
	Compared int
	Skipped  int
}

// Runner compares every pair of a store and emits one line per pair.
type Runner struct {
	Params      alignment.Params
	Sink        Sink
	OnUndefined Policy

	// Observer, if set, sees every pair.
	Observer Observer

	// Show renders both aligned sequences with a match line above the
	// report line. The block goes to Display when set, and Sink then still
	// receives only the report line; otherwise the block goes to Sink.
	Show    bool
	Display Sink

	// ShowProgress draws a progress bar over the pair count on
	// ProgressOutput (stderr when nil).
	ShowProgress   bool
	ProgressOutput io.Writer

	Logger *log.Logger
}

// NewRunner creates a runner with the given parameters and sink.
func NewRunner(params alignment.Params, sink Sink) *Runner {
	return &Runner{Params: params, Sink: sink}
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func (r *Runner) progressBar(total int) *pb.ProgressBar {
	if !r.ShowProgress || total == 0 {
		return nil
	}
	bar := pb.New(total).Prefix("pairs ")
	bar.Output = r.ProgressOutput
	if bar.Output == nil {
		bar.Output = os.Stderr
	}
	bar.ShowSpeed = false
	return bar.Start()
}

// Run compares all pairs of store sequentially. It stops at the first
// error, or between pairs when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, store *sequence.Store) (*Report, error) {
	if r.Sink == nil {
		return nil, fmt.Errorf("runner has no sink")
	}

	pairs := Pairs(store.IDs())
	report := &Report{Total: len(pairs)}

	bar := r.progressBar(len(pairs))
	if bar != nil {
		defer bar.Finish()
	}

	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		seq1, _ := store.Get(pair.ID1)
		seq2, _ := store.Get(pair.ID2)

		result, err := alignment.ScoreSequences(seq1, seq2, r.Params)
		var undefined *alignment.UndefinedPercentError
		switch {
		case errors.As(err, &undefined) && r.OnUndefined == Skip:
			r.logger().Printf("skipping %s-%s: %v", pair.ID1, pair.ID2, err)
			report.Skipped++
			if r.Observer != nil {
				r.Observer(pair, nil)
			}
		case err != nil:
			return report, &PairError{Pair: pair, Err: err}
		default:
			line := result.Line(pair.ID1, pair.ID2)
			if r.Show {
				block := result.Format(pair.ID1, seq1.Bases, pair.ID2, seq2.Bases)
				if r.Display == nil {
					line = block
				} else if err := r.Display.Emit(block); err != nil {
					return report, fmt.Errorf("emitting %s-%s: %w", pair.ID1, pair.ID2, err)
				}
			}
			if err := r.Sink.Emit(line); err != nil {
				return report, fmt.Errorf("emitting %s-%s: %w", pair.ID1, pair.ID2, err)
			}
			report.Compared++
			if r.Observer != nil {
				r.Observer(pair, result)
			}
		}

		if bar != nil {
			bar.Increment()
		}
	}

	return report, nil
}
