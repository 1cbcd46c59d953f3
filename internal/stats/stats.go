// Package stats provides summaries of sequence sets and comparison runs.
package stats

import (
	"fmt"
	"sort"

	"github.com/aria-lang/pairscore/internal/alignment"
	"github.com/aria-lang/pairscore/internal/sequence"
)

// SequenceStats represents statistics for a single aligned sequence.
//
// Invariants:
//
//	ACount + CCount + GCount + TCount + UCount + GapCount == Length
//	0 <= GCContent <= 1
type SequenceStats struct {
	ID        string  `json:"id"`
	Length    int     `json:"length"`
	Ungapped  int     `json:"ungapped"`
	GCContent float64 `json:"gc_content"`
	ACount    int     `json:"a"`
	CCount    int     `json:"c"`
	GCount    int     `json:"g"`
	TCount    int     `json:"t"`
	UCount    int     `json:"u"`
	GapCount  int     `json:"gaps"`
}

// FromSequence calculates statistics for a sequence.
func FromSequence(seq *sequence.Sequence) *SequenceStats {
	counts := seq.BaseCounts()

	return &SequenceStats{
		ID:        seq.ID,
		Length:    seq.Len(),
		Ungapped:  counts.Ungapped(),
		GCContent: seq.GCContent(),
		ACount:    counts.A,
		CCount:    counts.C,
		GCount:    counts.G,
		TCount:    counts.T,
		UCount:    counts.U,
		GapCount:  counts.Gap,
	}
}

func (s *SequenceStats) String() string {
	return fmt.Sprintf("%s: length %d (%d ungapped), GC %.1f%%, A=%d C=%d G=%d T=%d U=%d gaps=%d",
		s.ID, s.Length, s.Ungapped, s.GCContent*100,
		s.ACount, s.CCount, s.GCount, s.TCount, s.UCount, s.GapCount)
}

// SequenceSetStats represents aggregated statistics for a sequence file.
type SequenceSetStats struct {
	Count         int     `json:"count"`
	Pairs         int     `json:"pairs"`
	Alphabet      string  `json:"alphabet"`
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	MeanLength    float64 `json:"mean_length"`
	MedianLength  int     `json:"median_length"`
	EqualLength   bool    `json:"equal_length"`
	MeanGCContent float64 `json:"mean_gc_content"`
	GapFraction   float64 `json:"gap_fraction"`
}

// FromStore calculates statistics for every sequence of a store.
func FromStore(store *sequence.Store) (*SequenceSetStats, error) {
	s, err := FromSequences(store.Sequences())
	if err != nil {
		return nil, err
	}
	s.Alphabet = store.SeqType().String()
	return s, nil
}

// FromSequences calculates statistics for a collection of sequences.
func FromSequences(sequences []*sequence.Sequence) (*SequenceSetStats, error) {
	if len(sequences) == 0 {
		return nil, fmt.Errorf("sequence list cannot be empty")
	}

	count := len(sequences)
	lengths := make([]int, count)
	totalBases := 0
	totalGaps := 0
	gcSum := 0.0
	hasT, hasU := false, false

	for i, seq := range sequences {
		lengths[i] = seq.Len()
		totalBases += seq.Len()
		counts := seq.BaseCounts()
		totalGaps += counts.Gap
		gcSum += seq.GCContent()
		hasT = hasT || counts.T > 0
		hasU = hasU || counts.U > 0
	}

	sortedLengths := make([]int, count)
	copy(sortedLengths, lengths)
	sort.Ints(sortedLengths)

	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sortedLengths[mid-1] + sortedLengths[mid]) / 2
	} else {
		medianLen = sortedLengths[mid]
	}

	alphabet := sequence.Unknown
	switch {
	case hasT && hasU:
		return nil, &sequence.AlphabetConflictError{}
	case hasT:
		alphabet = sequence.DNA
	case hasU:
		alphabet = sequence.RNA
	}

	gapFraction := 0.0
	if totalBases > 0 {
		gapFraction = float64(totalGaps) / float64(totalBases)
	}

	return &SequenceSetStats{
		Count:         count,
		Pairs:         count * (count - 1) / 2,
		Alphabet:      alphabet.String(),
		MinLength:     sortedLengths[0],
		MaxLength:     sortedLengths[count-1],
		MeanLength:    float64(totalBases) / float64(count),
		MedianLength:  medianLen,
		EqualLength:   sortedLengths[0] == sortedLengths[count-1],
		MeanGCContent: gcSum / float64(count),
		GapFraction:   gapFraction,
	}, nil
}

func (s *SequenceSetStats) String() string {
	return fmt.Sprintf(`SequenceSetStats {
  sequences: %d
  pairs: %d
  alphabet: %s
  length range: %d - %d
  mean length: %.1f
  median length: %d
  equal length: %t
  mean GC: %.1f%%
  gaps: %.1f%%
}`, s.Count, s.Pairs, s.Alphabet, s.MinLength, s.MaxLength,
		s.MeanLength, s.MedianLength, s.EqualLength, s.MeanGCContent*100, s.GapFraction*100)
}

// PairScore names the score of one compared pair.
type PairScore struct {
	ID1   string  `json:"id1"`
	ID2   string  `json:"id2"`
	Score float64 `json:"score"`
}

// ComparisonSummary accumulates the results of a comparison run.
type ComparisonSummary struct {
	Compared            int        `json:"compared"`
	Skipped             int        `json:"skipped"`
	MeanIdentityPercent float64    `json:"mean_identity_percent"`
	MeanGapPercent      float64    `json:"mean_gap_percent"`
	Best                *PairScore `json:"best,omitempty"`
	Worst               *PairScore `json:"worst,omitempty"`

	identitySum float64
	gapSum      float64
}

// Add records one pair. A nil result counts as skipped.
func (c *ComparisonSummary) Add(id1, id2 string, r *alignment.Result) {
	if r == nil {
		c.Skipped++
		return
	}

	c.Compared++
	c.identitySum += r.IdentityPercent
	c.gapSum += r.GapPercent
	c.MeanIdentityPercent = c.identitySum / float64(c.Compared)
	c.MeanGapPercent = c.gapSum / float64(c.Compared)

	if c.Best == nil || r.Score > c.Best.Score {
		c.Best = &PairScore{ID1: id1, ID2: id2, Score: r.Score}
	}
	if c.Worst == nil || r.Score < c.Worst.Score {
		c.Worst = &PairScore{ID1: id1, ID2: id2, Score: r.Score}
	}
}

func (c *ComparisonSummary) String() string {
	if c.Compared == 0 {
		return fmt.Sprintf("Compared 0 pairs, skipped %d", c.Skipped)
	}
	return fmt.Sprintf("Compared %d pairs, skipped %d\nMean identity: %.1f%%, mean gaps: %.1f%%\nBest: %s-%s (Score=%s)\nWorst: %s-%s (Score=%s)",
		c.Compared, c.Skipped, c.MeanIdentityPercent, c.MeanGapPercent,
		c.Best.ID1, c.Best.ID2, alignment.FormatScore(c.Best.Score),
		c.Worst.ID1, c.Worst.ID2, alignment.FormatScore(c.Worst.Score))
}
