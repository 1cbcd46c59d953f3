package compare

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aria-lang/pairscore/internal/alignment"
	"github.com/aria-lang/pairscore/internal/sequence"
)

func parseStore(t *testing.T, fasta string) *sequence.Store {
	t.Helper()
	store, err := sequence.Parse(strings.NewReader(fasta))
	require.NoError(t, err)
	return store
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestPairs(t *testing.T) {
	assert.Nil(t, Pairs(nil))
	assert.Nil(t, Pairs([]string{"a"}))

	pairs := Pairs([]string{"a", "b", "c", "d"})
	require.Len(t, pairs, 6)

	var got []string
	for _, p := range pairs {
		assert.Less(t, p.I, p.J)
		got = append(got, p.ID1+p.ID2)
	}
	assert.Equal(t, []string{"ab", "ac", "ad", "bc", "bd", "cd"}, got)
}

func TestPairsCount(t *testing.T) {
	for n := 0; n < 12; n++ {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		assert.Len(t, Pairs(ids), n*(n-1)/2)
	}
}

func TestRunnerRun(t *testing.T) {
	store := parseStore(t, ">Seq1\nACGT-\n>seq2\nAGCT-\n>seq3\nA-GT-\n")

	sink := &CollectSink{}
	runner := NewRunner(alignment.DefaultParams(), sink)

	report, err := runner.Run(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, &Report{Total: 3, Compared: 3}, report)

	assert.Equal(t, []string{
		"Seq1-seq2: Identity: 2/4 (50%), Gaps: 0/4 (0%), Score=-2",
		"Seq1-seq3: Identity: 3/4 (75%), Gaps: 1/4 (25%), Score=2",
		"seq2-seq3: Identity: 2/4 (50%), Gaps: 1/4 (25%), Score=-1",
	}, sink.Lines())
}

func TestRunnerSingleSequence(t *testing.T) {
	store := parseStore(t, ">only\nACGT\n")
	sink := &CollectSink{}

	report, err := NewRunner(alignment.DefaultParams(), sink).Run(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, sink.Lines())
}

func TestRunnerUndefinedPolicy(t *testing.T) {
	store := parseStore(t, ">a\n--\n>b\n--\n>c\nAC\n")

	t.Run("abort", func(t *testing.T) {
		sink := &CollectSink{}
		runner := NewRunner(alignment.DefaultParams(), sink)

		report, err := runner.Run(context.Background(), store)

		var undefined *alignment.UndefinedPercentError
		require.ErrorAs(t, err, &undefined)

		var pairErr *PairError
		require.ErrorAs(t, err, &pairErr)
		assert.Equal(t, "a", pairErr.Pair.ID1)
		assert.Equal(t, "b", pairErr.Pair.ID2)
		assert.Equal(t, 0, report.Compared)
		assert.Empty(t, sink.Lines())
	})

	t.Run("skip", func(t *testing.T) {
		sink := &CollectSink{}
		runner := NewRunner(alignment.DefaultParams(), sink)
		runner.OnUndefined = Skip
		runner.Logger = quietLogger()

		var observed []Pair
		var skipped int
		runner.Observer = func(p Pair, r *alignment.Result) {
			observed = append(observed, p)
			if r == nil {
				skipped++
			}
		}

		report, err := runner.Run(context.Background(), store)
		require.NoError(t, err)
		assert.Equal(t, &Report{Total: 3, Compared: 2, Skipped: 1}, report)
		assert.Len(t, observed, 3)
		assert.Equal(t, 1, skipped)
		assert.Equal(t, []string{
			"a-c: Identity: 0/2 (0%), Gaps: 2/2 (100%), Score=-2",
			"b-c: Identity: 0/2 (0%), Gaps: 2/2 (100%), Score=-2",
		}, sink.Lines())
	})
}

func TestRunnerLengthMismatchAborts(t *testing.T) {
	store := parseStore(t, ">a\nACGT\n>b\nACG\n")
	runner := NewRunner(alignment.DefaultParams(), &CollectSink{})
	runner.OnUndefined = Skip

	_, err := runner.Run(context.Background(), store)
	var mismatch *alignment.LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestRunnerCustomParams(t *testing.T) {
	store := parseStore(t, ">x\nACGT\n>y\nACGA\n")
	params := alignment.DefaultParams().Merge(map[alignment.Param]float64{alignment.Identity: 2})

	sink := &CollectSink{}
	_, err := NewRunner(params, sink).Run(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, []string{"x-y: Identity: 3/4 (75%), Gaps: 0/4 (0%), Score=4"}, sink.Lines())
}

func TestRunnerShow(t *testing.T) {
	store := parseStore(t, ">a\nAG\n>b\nAA\n")
	sink := &CollectSink{}
	runner := NewRunner(alignment.DefaultParams(), sink)
	runner.Show = true

	_, err := runner.Run(context.Background(), store)
	require.NoError(t, err)

	lines := sink.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "a  AG\n   |:\nb  AA\na-b: Identity: 1/2 (50%), Gaps: 0/2 (0%), Score=0", lines[0])
}

func TestRunnerShowDisplay(t *testing.T) {
	store := parseStore(t, ">a\nAG\n>b\nAA\n")
	display := &CollectSink{}
	sink := &CollectSink{}
	runner := NewRunner(alignment.DefaultParams(), sink)
	runner.Show = true
	runner.Display = display

	_, err := runner.Run(context.Background(), store)
	require.NoError(t, err)

	line := "a-b: Identity: 1/2 (50%), Gaps: 0/2 (0%), Score=0"
	assert.Equal(t, []string{"a  AG\n   |:\nb  AA\n" + line}, display.Lines())
	assert.Equal(t, []string{line}, sink.Lines())
}

func TestRunnerCancelled(t *testing.T) {
	store := parseStore(t, ">a\nAC\n>b\nAC\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(alignment.DefaultParams(), &CollectSink{}).Run(ctx, store)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerNoSink(t *testing.T) {
	_, err := (&Runner{}).Run(context.Background(), sequence.NewStore())
	require.Error(t, err)
}

type failingSink struct{}

func (failingSink) Emit(string) error { return errors.New("disk full") }

func TestRunnerSinkError(t *testing.T) {
	store := parseStore(t, ">a\nAC\n>b\nAC\n")
	_, err := NewRunner(alignment.DefaultParams(), failingSink{}).Run(context.Background(), store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunnerProgress(t *testing.T) {
	store := parseStore(t, ">a\nAC\n>b\nAC\n>c\nAG\n")

	var progress bytes.Buffer
	runner := NewRunner(alignment.DefaultParams(), &CollectSink{})
	runner.ShowProgress = true
	runner.ProgressOutput = &progress

	report, err := runner.Run(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Compared)
	assert.NotEmpty(t, progress.String())
}

func TestSinks(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "output.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	file, err := NewFileSink(path)
	require.NoError(t, err)

	collect := &CollectSink{}
	sink := MultiSink{&WriterSink{W: &console}, file, collect}

	require.NoError(t, sink.Emit("first"))
	require.NoError(t, sink.Emit("second"))
	require.NoError(t, file.Close())

	assert.Equal(t, "first\nsecond\n", console.String())
	assert.Equal(t, []string{"first", "second"}, collect.Lines())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}

func TestMultiSinkStopsAtError(t *testing.T) {
	collect := &CollectSink{}
	err := MultiSink{failingSink{}, collect}.Emit("line")
	require.Error(t, err)
	assert.Empty(t, collect.Lines())
}

func TestNewFileSinkError(t *testing.T) {
	_, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "out.txt"))
	require.Error(t, err)
}
