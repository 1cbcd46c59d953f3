package handlers

import (
	"net/http"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

// ScoreRequest represents a request to score one aligned pair.
type ScoreRequest struct {
	Sequence1 string             `json:"sequence1"`
	Sequence2 string             `json:"sequence2"`
	Params    map[string]float64 `json:"params,omitempty"`
}

// ScoreResponse represents the scoring of one aligned pair.
type ScoreResponse struct {
	Result  *pairscore.Result `json:"result"`
	Line    string            `json:"line"`
	Params  pairscore.Params  `json:"params"`
	Ignored []string          `json:"ignored,omitempty"`
}

// ScoreHandler handles pair scoring requests.
func ScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !decode(w, r, &req) {
		return
	}

	store := pairscore.NewStore()
	for _, s := range []struct{ id, bases string }{
		{"sequence1", req.Sequence1},
		{"sequence2", req.Sequence2},
	} {
		seq, err := pairscore.NewSequenceWithID(s.bases, s.id)
		if err != nil {
			writeError(w, statusFor(err), s.id+": "+err.Error())
			return
		}
		if err := store.Add(seq); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	params, ignored := mergeParams(req.Params)

	seq1, _ := store.Get("sequence1")
	seq2, _ := store.Get("sequence2")
	result, err := pairscore.Score(seq1.Bases, seq2.Bases, params)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ScoreResponse{
		Result:  result,
		Line:    result.Line("sequence1", "sequence2"),
		Params:  params,
		Ignored: ignored,
	})
}
