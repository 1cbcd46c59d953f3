package alignment

import "fmt"

// ScoringError is the base error type for alignment scoring.
type ScoringError interface {
	error
	IsScoringError()
}

// UndefinedPercentError is returned when every column of an alignment is a
// double gap, leaving no positions to compute percentages over.
type UndefinedPercentError struct {
	Columns int
}

func (e *UndefinedPercentError) Error() string {
	return fmt.Sprintf("percentages undefined: all %d aligned positions are gaps in both sequences", e.Columns)
}

func (e *UndefinedPercentError) IsScoringError() {}

// LengthMismatchError is returned when the aligned sequences differ in length.
type LengthMismatchError struct {
	Length1 int
	Length2 int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("aligned sequences must have equal length, got %d and %d", e.Length1, e.Length2)
}

func (e *LengthMismatchError) IsScoringError() {}

// MalformedLineError is returned when a result line cannot be parsed.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed result line: %q", e.Line)
}

func (e *MalformedLineError) IsScoringError() {}
