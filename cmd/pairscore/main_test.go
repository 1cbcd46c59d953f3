package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSeqs = ">Seq1\nACGT-\n>seq2\nAGCT-\n>seq3\nA-GT-\n"

var defaultLines = "Seq1-seq2: Identity: 2/4 (50%), Gaps: 0/4 (0%), Score=-2\n" +
	"Seq1-seq3: Identity: 3/4 (75%), Gaps: 1/4 (25%), Score=2\n" +
	"seq2-seq3: Identity: 2/4 (50%), Gaps: 1/4 (25%), Score=-1\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestScore(t *testing.T) {
	fasta := writeFile(t, t.TempDir(), "aligned.fasta", threeSeqs)

	res := runCLI(t, "", "score", fasta)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, defaultLines, res.stdout)
}

func TestScoreWithParamsAndOutput(t *testing.T) {
	dir := t.TempDir()
	fasta := writeFile(t, dir, "aligned.fa", threeSeqs)
	params := writeFile(t, dir, "params.txt", "identity=2\nfoo=3\n")
	output := filepath.Join(dir, "output.txt")

	// output before params, both matched by name
	res := runCLI(t, "", "score", fasta, output, params)
	require.Equal(t, exitOK, res.code, res.stderr)

	want := "Seq1-seq2: Identity: 2/4 (50%), Gaps: 0/4 (0%), Score=0\n" +
		"Seq1-seq3: Identity: 3/4 (75%), Gaps: 1/4 (25%), Score=5\n" +
		"seq2-seq3: Identity: 2/4 (50%), Gaps: 1/4 (25%), Score=1\n"
	assert.Equal(t, want, res.stdout)
	assert.Contains(t, res.stderr, `ignoring unknown parameter "foo"`)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, want, string(content))
}

func TestScoreFlags(t *testing.T) {
	dir := t.TempDir()
	fasta := writeFile(t, dir, "aligned.fna", threeSeqs)
	params := writeFile(t, dir, "scoring.txt", "gap = 0\n")
	output := writeFile(t, dir, "result.txt", "old\n")

	res := runCLI(t, "", "score", fasta, "-p", params, "-o", output, "--yes", "--summary", "--verbose")
	require.Equal(t, exitOK, res.code, res.stderr)

	assert.Contains(t, res.stdout, "Seq1-seq3: Identity: 3/4 (75%), Gaps: 1/4 (25%), Score=3")
	assert.Contains(t, res.stdout, "Compared 3 pairs, skipped 0")
	assert.Contains(t, res.stderr, "parameters: gap=0, identity=1, transition=-1, transversion=-2")
	assert.Contains(t, res.stderr, "3 sequences, 3 pairs (DNA)")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "old")
	assert.Contains(t, string(content), "Seq1-seq2")
}

func TestScoreSummaryFromEnv(t *testing.T) {
	t.Setenv("PAIRSCORE_SUMMARY", "true")
	fasta := writeFile(t, t.TempDir(), "aligned.fasta", threeSeqs)

	res := runCLI(t, "", "score", fasta)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Best: Seq1-seq3 (Score=2)")
}

func TestScoreConfirmations(t *testing.T) {
	t.Run("missing params declined", func(t *testing.T) {
		fasta := writeFile(t, t.TempDir(), "aligned.fasta", threeSeqs)

		res := runCLI(t, "n\n", "score", fasta, "missing_params.txt")
		assert.Equal(t, exitOK, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "Continue with default parameters")
		assert.Contains(t, res.stderr, "declined")
	})

	t.Run("missing params accepted", func(t *testing.T) {
		fasta := writeFile(t, t.TempDir(), "aligned.fasta", threeSeqs)

		res := runCLI(t, "yes\n", "score", fasta, "missing_params.txt")
		require.Equal(t, exitOK, res.code, res.stderr)
		assert.Equal(t, defaultLines, res.stdout)
	})

	t.Run("overwrite declined", func(t *testing.T) {
		dir := t.TempDir()
		fasta := writeFile(t, dir, "aligned.fasta", threeSeqs)
		output := writeFile(t, dir, "output.txt", "keep me\n")

		res := runCLI(t, "\n", "score", fasta, output)
		assert.Equal(t, exitOK, res.code)
		assert.Empty(t, res.stdout)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "keep me\n", string(content))
	})
}

func TestScoreUndefined(t *testing.T) {
	fasta := writeFile(t, t.TempDir(), "gaps.fasta", ">a\n--\n>b\n--\n>c\nAC\n")

	res := runCLI(t, "", "score", fasta)
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "a-b")

	res = runCLI(t, "", "score", fasta, "--skip-undefined")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "a-c: Identity: 0/2 (0%), Gaps: 2/2 (100%), Score=-2\n"+
		"b-c: Identity: 0/2 (0%), Gaps: 2/2 (100%), Score=-2\n", res.stdout)
	assert.Contains(t, res.stderr, "skipping a-b")
}

func TestScoreErrors(t *testing.T) {
	dir := t.TempDir()
	fasta := writeFile(t, dir, "aligned.fasta", threeSeqs)
	fastq := writeFile(t, dir, "reads.fastq", "@r\nACGT\n+\nIIII\n")
	mixed := writeFile(t, dir, "mixed.fasta", ">a\nACGT\n>b\nACGU\n")
	badParams := writeFile(t, dir, "params.txt", "gap=abc\n")

	tests := []struct {
		name   string
		args   []string
		code   int
		errMsg string
	}{
		{"no arguments", []string{"score"}, exitUsage, "argument"},
		{"too many arguments", []string{"score", fasta, "a", "b", "c"}, exitUsage, "argument"},
		{"unknown flag", []string{"score", fasta, "--nope"}, exitUsage, "unknown flag"},
		{"unknown command", []string{"align"}, exitUsage, "unknown command"},
		{"missing fasta", []string{"score", filepath.Join(dir, "none.fasta")}, exitFailure, "none.fasta"},
		{"fastq", []string{"score", fastq}, exitFailure, "FASTQ"},
		{"alphabet conflict", []string{"score", mixed}, exitFailure, "DNA"},
		{"malformed params", []string{"score", fasta, badParams}, exitFailure, "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, res.code)
			assert.Contains(t, res.stderr, tt.errMsg)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestScoreShow(t *testing.T) {
	fasta := writeFile(t, t.TempDir(), "pair.fasta", ">a\nAG\n>b\nAA\n")

	res := runCLI(t, "", "score", fasta, "--show")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "a  AG\n   |:\nb  AA\na-b: Identity: 1/2 (50%), Gaps: 0/2 (0%), Score=0\n", res.stdout)
}

func TestScoreShowWithOutput(t *testing.T) {
	dir := t.TempDir()
	fasta := writeFile(t, dir, "pair.fasta", ">a\nAG\n>b\nAA\n")
	output := filepath.Join(dir, "output.txt")

	res := runCLI(t, "", "score", fasta, output, "--show")
	require.Equal(t, exitOK, res.code, res.stderr)

	line := "a-b: Identity: 1/2 (50%), Gaps: 0/2 (0%), Score=0"
	assert.Equal(t, "a  AG\n   |:\nb  AA\n"+line+"\n", res.stdout)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, line+"\n", string(content))
}

func TestInfo(t *testing.T) {
	fasta := writeFile(t, t.TempDir(), "aligned.fasta", threeSeqs)

	res := runCLI(t, "", "info", fasta)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Seq1: length 5 (4 ungapped)")
	assert.Contains(t, res.stdout, "sequences: 3")
	assert.Contains(t, res.stdout, "alphabet: DNA")

	res = runCLI(t, "", "info")
	assert.Equal(t, exitUsage, res.code)
}

func TestInfoFasta(t *testing.T) {
	long := strings.Repeat("ac-t", 25)
	fasta := writeFile(t, t.TempDir(), "raw.fasta", ">a\nacgt\n\n>b\n"+long+"\n>a\nGG-C\n")

	res := runCLI(t, "", "info", "--fasta", fasta)
	require.Equal(t, exitOK, res.code, res.stderr)

	upper := strings.ToUpper(long)
	assert.Equal(t, ">a\nGG-C\n>b\n"+upper[:80]+"\n"+upper[80:]+"\n", res.stdout)
}

func TestParams(t *testing.T) {
	res := runCLI(t, "", "params")
	require.Equal(t, exitOK, res.code)
	assert.Equal(t, "gap=-1, identity=1, transition=-1, transversion=-2\n", res.stdout)

	params := writeFile(t, t.TempDir(), "params.txt", "# custom\ntransversion=-3 # harsher\nbogus=1\n")
	res = runCLI(t, "", "params", params)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "gap=-1, identity=1, transition=-1, transversion=-3\n", res.stdout)
	assert.Contains(t, res.stderr, `"bogus"`)
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "pairscore v1.0.0")

	res = runCLI(t, "", "--version")
	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "1.0.0")
}
