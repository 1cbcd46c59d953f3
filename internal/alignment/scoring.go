// Package alignment scores pre-computed pairwise alignments.
//
// Two equal-length, gap-padded sequences are compared column by column.
// Every column is classified as a double gap, a gap, a match, a transition
// or a transversion, and the flat scoring parameters in Params are summed
// over the classified columns.
package alignment

import (
	"fmt"
	"sort"
	"strings"
)

// Param names one of the four scoring parameters.
type Param int

const (
	// Gap is added for every column with exactly one gap
	Gap Param = iota
	// Identity is added for every matching column
	Identity
	// Transition is added for A/G and C/T (C/U) substitutions
	Transition
	// Transversion is added for every other substitution
	Transversion
)

// AllParams lists the parameters in display order.
var AllParams = []Param{Gap, Identity, Transition, Transversion}

func (p Param) String() string {
	switch p {
	case Gap:
		return "gap"
	case Identity:
		return "identity"
	case Transition:
		return "transition"
	case Transversion:
		return "transversion"
	default:
		return "unknown"
	}
}

// ParseParam resolves a parameter name, ignoring case and surrounding space.
func ParseParam(name string) (Param, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gap":
		return Gap, true
	case "identity":
		return Identity, true
	case "transition":
		return Transition, true
	case "transversion":
		return Transversion, true
	default:
		return 0, false
	}
}

// Params holds the scoring parameters. Values may be any signed real
// number, zero included.
type Params struct {
	Gap          float64 `json:"gap"`
	Identity     float64 `json:"identity"`
	Transition   float64 `json:"transition"`
	Transversion float64 `json:"transversion"`
}

// DefaultParams returns gap=-1, identity=+1, transition=-1, transversion=-2.
func DefaultParams() Params {
	return Params{
		Gap:          -1,
		Identity:     1,
		Transition:   -1,
		Transversion: -2,
	}
}

// Get returns the value of a single parameter.
func (p Params) Get(param Param) float64 {
	switch param {
	case Gap:
		return p.Gap
	case Identity:
		return p.Identity
	case Transition:
		return p.Transition
	case Transversion:
		return p.Transversion
	default:
		return 0
	}
}

// With returns a copy of p with one parameter replaced.
func (p Params) With(param Param, value float64) Params {
	switch param {
	case Gap:
		p.Gap = value
	case Identity:
		p.Identity = value
	case Transition:
		p.Transition = value
	case Transversion:
		p.Transversion = value
	}
	return p
}

// Merge returns a copy of p with every parameter present in overrides
// replaced. Absent parameters keep their value.
func (p Params) Merge(overrides map[Param]float64) Params {
	for param, value := range overrides {
		p = p.With(param, value)
	}
	return p
}

// MergeNamed merges overrides keyed by parameter name. Unrecognized names
// are ignored and returned sorted so callers can report them.
func (p Params) MergeNamed(overrides map[string]float64) (Params, []string) {
	known := make(map[Param]float64, len(overrides))
	var ignored []string

	for name, value := range overrides {
		param, ok := ParseParam(name)
		if !ok {
			ignored = append(ignored, name)
			continue
		}
		known[param] = value
	}
	sort.Strings(ignored)

	return p.Merge(known), ignored
}

// String returns a string representation of the parameters.
func (p Params) String() string {
	return fmt.Sprintf("gap=%s, identity=%s, transition=%s, transversion=%s",
		FormatScore(p.Gap), FormatScore(p.Identity),
		FormatScore(p.Transition), FormatScore(p.Transversion))
}
