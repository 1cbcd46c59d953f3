package sequence

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// HeaderMarker starts every FASTA header line.
const HeaderMarker = '>'

// maxLineSize bounds a single FASTA line; aligned sequences are often
// written on one line.
const maxLineSize = 1 << 30

// Parse reads a FASTA-like stream into a Store.
//
// Header lines start with '>' and name the following sequence with the
// rest of the line. Sequence lines may span several lines and are
// concatenated. Empty lines are skipped. Any other line, including
// sequence data before the first header, is a MalformedLineError.
// A header without sequence lines creates no entry.
func Parse(r io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var currentID string
	var currentBases strings.Builder
	var hasT, hasU bool
	lineNum := 0

	flushSequence := func() error {
		if currentBases.Len() == 0 {
			return nil
		}
		seq, err := WithID(currentBases.String(), currentID)
		if err != nil {
			return err
		}
		currentBases.Reset()
		return store.Add(seq)
	}

	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if len(line) == 0 {
			continue
		}

		if line[0] == HeaderMarker {
			if err := flushSequence(); err != nil {
				return nil, err
			}
			currentID = strings.TrimSpace(line[1:])
			if currentID == "" {
				return nil, &MalformedLineError{Line: lineNum, Text: raw, Reason: "empty header"}
			}
			continue
		}

		bases := strings.ToUpper(line)
		if err := Validate(bases); err != nil {
			return nil, &MalformedLineError{
				Line:   lineNum,
				Text:   raw,
				Reason: "expected a header starting with '>' or bases (A,C,G,T,U) and gaps (-)",
			}
		}
		if currentID == "" {
			return nil, &MalformedLineError{Line: lineNum, Text: raw, Reason: "sequence data before first header"}
		}

		hasT = hasT || strings.ContainsRune(bases, 'T')
		hasU = hasU || strings.ContainsRune(bases, 'U')
		if hasT && hasU {
			return nil, &AlphabetConflictError{ID: currentID, Line: lineNum}
		}

		currentBases.WriteString(bases)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sequences: %w", err)
	}

	if err := flushSequence(); err != nil {
		return nil, err
	}

	return store, nil
}

// Load maps a FASTA file into memory read-only and parses it.
func Load(filename string) (*Store, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filename, err)
	}
	if info.Size() == 0 {
		return NewStore(), nil
	}

	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", filename, err)
	}
	defer mm.Unmap()

	return Parse(bytes.NewReader(mm))
}

// WriteFASTA writes the store's sequences in identifier order.
func WriteFASTA(w io.Writer, store *Store) error {
	for _, seq := range store.Sequences() {
		if _, err := io.WriteString(w, seq.ToFASTA()); err != nil {
			return fmt.Errorf("writing sequence: %w", err)
		}
	}
	return nil
}
