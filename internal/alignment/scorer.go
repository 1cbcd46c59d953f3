package alignment

import (
	"fmt"
	"strconv"

	"github.com/aria-lang/pairscore/internal/sequence"
)

// Column classifies a single aligned position.
type Column int

const (
	// DoubleGap is a gap in both sequences; it is excluded from scoring
	DoubleGap Column = iota
	// SingleGap is a gap in exactly one sequence
	SingleGap
	// Match is an identical non-gap base in both sequences
	Match
	// TransitionColumn is a purine/purine or pyrimidine/pyrimidine change
	TransitionColumn
	// TransversionColumn is any other substitution
	TransversionColumn
)

func (c Column) String() string {
	switch c {
	case DoubleGap:
		return "double-gap"
	case SingleGap:
		return "gap"
	case Match:
		return "match"
	case TransitionColumn:
		return "transition"
	case TransversionColumn:
		return "transversion"
	default:
		return "unknown"
	}
}

// Result holds the scoring of one aligned pair.
//
// Invariants:
//
//	Identities + Gaps + Transitions + Transversions == Length
//	Length + DoubleGaps == len(Columns)
//	0 <= IdentityPercent, GapPercent <= 100
type Result struct {
	Length          int      `json:"length"`
	Identities      int      `json:"identities"`
	IdentityPercent float64  `json:"identity_percent"`
	Gaps            int      `json:"gaps"`
	GapPercent      float64  `json:"gap_percent"`
	Score           float64  `json:"score"`
	Transitions     int      `json:"transitions"`
	Transversions   int      `json:"transversions"`
	DoubleGaps      int      `json:"double_gaps"`
	Columns         []Column `json:"-"`
}

// isTransition reports whether two differing upper-case bases form one of
// the unordered pairs A/G, C/T or C/U.
func isTransition(a, b byte) bool {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == 'A' && b == 'G':
		return true
	case a == 'C' && b == 'T':
		return true
	case a == 'C' && b == 'U':
		return true
	default:
		return false
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Classify returns the column class of two aligned bases.
func Classify(a, b byte) Column {
	a, b = upper(a), upper(b)
	switch {
	case a == sequence.Gap && b == sequence.Gap:
		return DoubleGap
	case a == sequence.Gap || b == sequence.Gap:
		return SingleGap
	case a == b:
		return Match
	case isTransition(a, b):
		return TransitionColumn
	default:
		return TransversionColumn
	}
}

// Score compares two aligned sequences of equal length column by column.
//
// The effective length excludes double-gap columns and is the denominator
// of both percentages. Percentages are rounded to one decimal. Score
// returns an UndefinedPercentError when no column is left after removing
// double gaps, and a LengthMismatchError for unequal inputs.
func Score(seq1, seq2 string, params Params) (*Result, error) {
	if len(seq1) != len(seq2) {
		return nil, &LengthMismatchError{Length1: len(seq1), Length2: len(seq2)}
	}

	r := &Result{Columns: make([]Column, len(seq1))}

	for i := 0; i < len(seq1); i++ {
		col := Classify(seq1[i], seq2[i])
		r.Columns[i] = col

		switch col {
		case DoubleGap:
			r.DoubleGaps++
		case SingleGap:
			r.Gaps++
			r.Score += params.Gap
		case Match:
			r.Identities++
			r.Score += params.Identity
		case TransitionColumn:
			r.Transitions++
			r.Score += params.Transition
		case TransversionColumn:
			r.Transversions++
			r.Score += params.Transversion
		}
	}

	r.Length = len(seq1) - r.DoubleGaps
	if r.Length == 0 {
		return nil, &UndefinedPercentError{Columns: len(seq1)}
	}

	r.IdentityPercent = Percent(r.Identities, r.Length)
	r.GapPercent = Percent(r.Gaps, r.Length)

	return r, nil
}

// ScoreSequences scores two stored sequences.
func ScoreSequences(seq1, seq2 *sequence.Sequence, params Params) (*Result, error) {
	if seq1 == nil || seq2 == nil {
		return nil, fmt.Errorf("sequences must be non-nil")
	}
	return Score(seq1.Bases, seq2.Bases, params)
}

// Percent returns count/total*100 rounded to one decimal place, ties to
// even on the exact binary value.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	raw := float64(count) / float64(total) * 100
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(raw, 'f', 1, 64), 64)
	return rounded
}
