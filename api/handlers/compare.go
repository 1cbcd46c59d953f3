package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

// CompareRequest represents a request to score every pair of a FASTA text.
type CompareRequest struct {
	Fasta         string             `json:"fasta"`
	Params        map[string]float64 `json:"params,omitempty"`
	SkipUndefined bool               `json:"skip_undefined,omitempty"`
}

// CompareResponse represents the outcome of an all-pairs comparison.
type CompareResponse struct {
	*pairscore.Comparison
	Params  pairscore.Params `json:"params"`
	Ignored []string         `json:"ignored,omitempty"`
}

// CompareHandler handles all-pairs comparison requests.
func CompareHandler(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decode(w, r, &req) {
		return
	}

	store, err := pairscore.ParseStore(strings.NewReader(req.Fasta))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	params, ignored := mergeParams(req.Params)

	cmp, err := pairscore.Compare(r.Context(), store, params, pairscore.CompareOptions{
		SkipUndefined: req.SkipUndefined,
	})
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	if cmp.Lines == nil {
		cmp.Lines = []string{}
	}
	if cmp.Results == nil {
		cmp.Results = []pairscore.PairResult{}
	}

	writeJSON(w, http.StatusOK, CompareResponse{
		Comparison: cmp,
		Params:     params,
		Ignored:    ignored,
	})
}
