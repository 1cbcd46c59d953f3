package alignment

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatScore renders a score with the shortest exact representation,
// so whole values print without a fractional part.
func FormatScore(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage with one decimal, dropping ".0".
func FormatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// Line formats the result as a single report line:
//
//	<id1>-<id2>: Identity: <n>/<len> (<pct>%), Gaps: <n>/<len> (<pct>%), Score=<score>
//
// IDs are written exactly as they appear in the headers; no case is
// changed, so ParseLine recovers them unchanged.
func (r *Result) Line(id1, id2 string) string {
	return fmt.Sprintf("%s-%s: Identity: %d/%d (%s%%), Gaps: %d/%d (%s%%), Score=%s",
		id1, id2,
		r.Identities, r.Length, FormatPercent(r.IdentityPercent),
		r.Gaps, r.Length, FormatPercent(r.GapPercent),
		FormatScore(r.Score))
}

// ParsedLine holds the fields recovered from a report line.
type ParsedLine struct {
	// Pair is the "<id1>-<id2>" prefix. IDs containing '-' make the split
	// into ID1 and ID2 ambiguous; ID1 ends at the first '-'.
	Pair            string
	ID1             string
	ID2             string
	Length          int
	Identities      int
	IdentityPercent float64
	Gaps            int
	GapPercent      float64
	Score           float64
}

const identityMarker = ": Identity: "

// ParseLine parses a line produced by Result.Line.
func ParseLine(line string) (*ParsedLine, error) {
	line = strings.TrimRight(line, "\r\n")

	idx := strings.LastIndex(line, identityMarker)
	if idx <= 0 {
		return nil, &MalformedLineError{Line: line}
	}

	p := &ParsedLine{Pair: line[:idx]}
	if id1, id2, ok := strings.Cut(p.Pair, "-"); ok {
		p.ID1, p.ID2 = id1, id2
	} else {
		return nil, &MalformedLineError{Line: line}
	}

	var gapLength int
	n, err := fmt.Sscanf(line[idx+len(identityMarker):],
		"%d/%d (%g%%), Gaps: %d/%d (%g%%), Score=%g",
		&p.Identities, &p.Length, &p.IdentityPercent,
		&p.Gaps, &gapLength, &p.GapPercent, &p.Score)
	if err != nil || n != 7 || gapLength != p.Length {
		return nil, &MalformedLineError{Line: line}
	}

	return p, nil
}

// columnMark returns the match-line symbol of a column.
func columnMark(c Column) byte {
	switch c {
	case Match:
		return '|'
	case TransitionColumn:
		return ':'
	case TransversionColumn:
		return '.'
	default:
		return ' '
	}
}

// Format renders both aligned sequences around a match line followed by
// the report line. Matches are marked '|', transitions ':' and
// transversions '.'; gap columns stay blank.
func (r *Result) Format(id1, seq1, id2, seq2 string) string {
	width := len(id1)
	if len(id2) > width {
		width = len(id2)
	}

	var matchLine strings.Builder
	for _, c := range r.Columns {
		matchLine.WriteByte(columnMark(c))
	}

	return fmt.Sprintf("%-*s  %s\n%*s  %s\n%-*s  %s\n%s",
		width, id1, seq1,
		width, "", matchLine.String(),
		width, id2, seq2,
		r.Line(id1, id2))
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { length: %d, identity: %s%%, gaps: %s%%, score: %s }",
		r.Length, FormatPercent(r.IdentityPercent), FormatPercent(r.GapPercent), FormatScore(r.Score))
}
