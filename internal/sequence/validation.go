package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when an invalid base is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// AlphabetConflictError is returned when DNA (T) and RNA (U) bases are mixed.
type AlphabetConflictError struct {
	ID   string
	Line int
}

func (e *AlphabetConflictError) Error() string {
	msg := "sequences cannot mix DNA (T) and RNA (U) bases"
	if e.ID != "" {
		msg += fmt.Sprintf(" (sequence %q", e.ID)
		if e.Line > 0 {
			msg += fmt.Sprintf(", line %d", e.Line)
		}
		msg += ")"
	}
	return msg
}

func (e *AlphabetConflictError) IsSequenceError() {}

// MalformedLineError is returned for a FASTA line that is neither a header
// nor a sequence line over the allowed alphabet.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *MalformedLineError) IsSequenceError() {}

// Validate checks that a string contains only allowed aligned symbols.
func Validate(bases string) error {
	for i, b := range bases {
		if !IsValidBase(b) {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidBase checks if a character is an allowed aligned symbol.
func IsValidBase(c rune) bool {
	return ValidBases[c]
}
