package input

import (
	"errors"
	"fmt"
	"strings"
)

// InputError is the base error type for command input validation.
type InputError interface {
	error
	IsInputError()
}

// ErrDeclined is returned when a confirmation was answered negatively.
var ErrDeclined = errors.New("declined by user")

// ArityError is returned for a wrong number of command arguments.
type ArityError struct {
	Got int
	Min int
	Max int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d to %d arguments (fasta file, optional parameter file, optional output file), got %d",
		e.Min, e.Max, e.Got)
}

func (e *ArityError) IsInputError() {}

// NotFoundError is returned when a required file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

func (e *NotFoundError) IsInputError() {}

// TooLargeError is returned when a file exceeds its size limit.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
	Hint  string
}

func (e *TooLargeError) Error() string {
	msg := fmt.Sprintf("%s is %d bytes, limit is %d bytes", e.Path, e.Size, e.Limit)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

func (e *TooLargeError) IsInputError() {}

// ExtensionError is returned when a file name has an unsupported extension.
type ExtensionError struct {
	Path    string
	Allowed []string
	Hint    string
}

func (e *ExtensionError) Error() string {
	msg := fmt.Sprintf("%s must end in %s", e.Path, strings.Join(e.Allowed, ", "))
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

func (e *ExtensionError) IsInputError() {}
