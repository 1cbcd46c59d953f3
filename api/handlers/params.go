package handlers

import (
	"net/http"

	"github.com/aria-lang/pairscore/pkg/pairscore"
)

// ParamsResponse represents effective scoring parameters.
type ParamsResponse struct {
	Params  pairscore.Params `json:"params"`
	Ignored []string         `json:"ignored,omitempty"`
}

// DefaultParamsHandler returns the default scoring parameters.
func DefaultParamsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ParamsResponse{Params: pairscore.DefaultParams()})
}

// mergeParams applies request overrides, keyed by parameter name, to the
// defaults.
func mergeParams(overrides map[string]float64) (pairscore.Params, []string) {
	return pairscore.DefaultParams().MergeNamed(overrides)
}
