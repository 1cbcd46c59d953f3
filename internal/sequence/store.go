package sequence

import "fmt"

// Store holds the sequences of one FASTA file, keyed by identifier.
//
// Identifiers keep the order in which they first received sequence data.
// Adding a sequence under an existing identifier replaces the stored
// sequence but keeps the original position (last occurrence wins).
type Store struct {
	ids  []string
	seqs map[string]*Sequence
	hasT bool
	hasU bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{seqs: make(map[string]*Sequence)}
}

// Add stores seq under its ID. It fails when seq would mix DNA and RNA
// alphabets across the store.
func (s *Store) Add(seq *Sequence) error {
	if seq == nil {
		return fmt.Errorf("cannot add nil sequence")
	}
	if seq.ID == "" {
		return fmt.Errorf("cannot add sequence without ID")
	}

	hasT := s.hasT || seq.SeqType == DNA
	hasU := s.hasU || seq.SeqType == RNA
	if hasT && hasU {
		return &AlphabetConflictError{ID: seq.ID}
	}
	s.hasT, s.hasU = hasT, hasU

	if _, ok := s.seqs[seq.ID]; !ok {
		s.ids = append(s.ids, seq.ID)
	}
	s.seqs[seq.ID] = seq
	return nil
}

// IDs returns identifiers in order of first appearance.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Get returns the sequence stored under id.
func (s *Store) Get(id string) (*Sequence, bool) {
	seq, ok := s.seqs[id]
	return seq, ok
}

// Len returns the number of stored sequences.
func (s *Store) Len() int {
	return len(s.ids)
}

// Sequences returns the stored sequences in identifier order.
func (s *Store) Sequences() []*Sequence {
	out := make([]*Sequence, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.seqs[id])
	}
	return out
}

// SeqType returns the file-scoped alphabet of the store.
func (s *Store) SeqType() SequenceType {
	switch {
	case s.hasT:
		return DNA
	case s.hasU:
		return RNA
	default:
		return Unknown
	}
}

// PairCount returns the number of unordered pairs, n(n-1)/2.
func (s *Store) PairCount() int {
	n := len(s.ids)
	return n * (n - 1) / 2
}
