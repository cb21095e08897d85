package models

import (
	"strings"
	"time"
)

// Run kinds.
const (
	RunCalculation = "CALCULATION"
	RunSweep       = "SWEEP"
)

// NormalizeRunKind canonicalizes a run kind as stored and filtered.
func NormalizeRunKind(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Run is a single recorded calculation or sweep.
type Run struct {
	RunID       string    `json:"run_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Kind        string    `json:"kind"` // CALCULATION | SWEEP
	UserID      int       `json:"user_id,omitempty"`
	Description string    `json:"description"`
	Inputs      Inputs    `json:"inputs"`
	Summary     any       `json:"summary,omitempty"`
}
