// Package sequence provides gap-padded DNA/RNA sequence types with validation.
//
// Sequences hold aligned nucleotide data: the bases A, C, G, T, U plus the
// gap marker '-'. Bases are normalized to upper case at construction and
// never change afterwards.
package sequence

import (
	"fmt"
	"strings"
)

// SequenceType represents the type of biological sequence.
type SequenceType int

const (
	// DNA represents a DNA sequence (contains T)
	DNA SequenceType = iota
	// RNA represents an RNA sequence (contains U)
	RNA
	// Unknown represents a sequence with neither T nor U
	Unknown
)

func (t SequenceType) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	default:
		return "Unknown"
	}
}

// Gap is the alignment gap marker.
const Gap = '-'

// ValidBases lists every symbol allowed in an aligned sequence.
var ValidBases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'U': true, Gap: true}

// Sequence represents a validated, aligned nucleotide sequence.
//
// Invariants:
//
//	bases contain only A, C, G, T, U and '-'
//	bases never contain both T and U
type Sequence struct {
	Bases   string
	ID      string
	SeqType SequenceType
}

// New creates a new sequence with validation.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	seqType := Classify(normalized)
	if seqType == invalidType {
		return nil, &AlphabetConflictError{}
	}

	return &Sequence{
		Bases:   normalized,
		SeqType: seqType,
	}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	seq, err := New(bases)
	if err != nil {
		if conflict, ok := err.(*AlphabetConflictError); ok {
			conflict.ID = id
		}
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// invalidType is returned by Classify for bases holding both T and U.
const invalidType SequenceType = -1

// Classify derives the alphabet of already validated bases.
func Classify(bases string) SequenceType {
	hasT := strings.ContainsRune(bases, 'T')
	hasU := strings.ContainsRune(bases, 'U')
	switch {
	case hasT && hasU:
		return invalidType
	case hasT:
		return DNA
	case hasU:
		return RNA
	default:
		return Unknown
	}
}

// Len returns the aligned length of the sequence, gaps included.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// BaseCounts holds per-symbol counts of a sequence.
type BaseCounts struct {
	A   int
	C   int
	G   int
	T   int
	U   int
	Gap int
}

// BaseCounts returns the count of each symbol.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}

	for i := 0; i < len(s.Bases); i++ {
		switch s.Bases[i] {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		case 'U':
			counts.U++
		case Gap:
			counts.Gap++
		}
	}

	return counts
}

// Total returns the total count of all symbols.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.U + bc.Gap
}

// Ungapped returns the number of non-gap positions.
func (bc BaseCounts) Ungapped() int {
	return bc.Total() - bc.Gap
}

// GCContent calculates the GC proportion over non-gap positions.
func (s *Sequence) GCContent() float64 {
	counts := s.BaseCounts()
	if counts.Ungapped() == 0 {
		return 0.0
	}
	return float64(counts.G+counts.C) / float64(counts.Ungapped())
}

// GapFraction returns the proportion of positions holding a gap.
func (s *Sequence) GapFraction() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}
	return float64(strings.Count(s.Bases, string(Gap))) / float64(len(s.Bases))
}

// ToFASTA returns the sequence in FASTA format.
func (s *Sequence) ToFASTA() string {
	header := ">sequence"
	if s.ID != "" {
		header = ">" + s.ID
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteRune('\n')

	// Split sequence into 80-character lines
	for i := 0; i < len(s.Bases); i += 80 {
		end := i + 80
		if end > len(s.Bases) {
			end = len(s.Bases)
		}
		sb.WriteString(s.Bases[i:end])
		sb.WriteRune('\n')
	}

	return sb.String()
}

// String returns a string representation of the sequence.
func (s *Sequence) String() string {
	if s.ID != "" {
		return fmt.Sprintf(">%s\n%s", s.ID, s.Bases)
	}
	return s.Bases
}
