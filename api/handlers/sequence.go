package handlers

import (
	"net/http"
	"strings"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

// SequencesRequest represents a request carrying FASTA text.
type SequencesRequest struct {
	Fasta string `json:"fasta"`
}

// SequencesInfoResponse represents the summary of a FASTA text.
type SequencesInfoResponse struct {
	IDs   []string                    `json:"ids"`
	Stats *pairscore.SequenceSetStats `json:"stats"`
}

// SequencesInfoHandler handles sequence set summary requests.
func SequencesInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequencesRequest
	if !decode(w, r, &req) {
		return
	}

	store, err := pairscore.ParseStore(strings.NewReader(req.Fasta))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	stats, err := pairscore.Stats(store)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SequencesInfoResponse{
		IDs:   store.IDs(),
		Stats: stats,
	})
}
