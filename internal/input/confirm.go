package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Condition names a situation that needs the user's consent to continue.
type Condition int

const (
	// LargeInput is a sequence file above LargeInputSize
	LargeInput Condition = iota
	// MissingParams is a parameter file that does not exist
	MissingParams
	// OverwriteOutput is an output file that already exists
	OverwriteOutput
)

func (c Condition) String() string {
	switch c {
	case LargeInput:
		return "large-input"
	case MissingParams:
		return "missing-params"
	case OverwriteOutput:
		return "overwrite-output"
	default:
		return "unknown"
	}
}

// Confirmation is a single consent request.
type Confirmation struct {
	Condition Condition
	Path      string
}

// Question returns the text shown to the user.
func (c Confirmation) Question() string {
	switch c.Condition {
	case LargeInput:
		return fmt.Sprintf("%s is larger than 1GB. Continue with this file?", c.Path)
	case MissingParams:
		return fmt.Sprintf("%s not found. Continue with default parameters (%s)?", c.Path, defaultParamsText)
	case OverwriteOutput:
		return fmt.Sprintf("%s already exists. Continue and overwrite it?", c.Path)
	default:
		return fmt.Sprintf("Continue with %s?", c.Path)
	}
}

const defaultParamsText = "gap=-1, identity=1, transition=-1, transversion=-2"

// Confirmer decides whether a run may continue past a Confirmation.
type Confirmer func(Confirmation) bool

// Always returns a Confirmer giving the same answer to every request.
func Always(answer bool) Confirmer {
	return func(Confirmation) bool { return answer }
}

// IsAffirmative reports whether an answer explicitly says yes. Empty and
// any other input count as no.
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return len(answer) > 0 && (answer[0] == 'y' || answer[0] == 'Y')
}

// Prompt returns a Confirmer that asks on out and reads one line from in.
func Prompt(in io.Reader, out io.Writer) Confirmer {
	reader := bufio.NewReader(in)
	return func(c Confirmation) bool {
		fmt.Fprintf(out, "%s\nAnswer with y (yes) or n (no) and press enter\n", c.Question())
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		return IsAffirmative(answer)
	}
}
