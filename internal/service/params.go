package service

import (
	"time"

	"oil_heating/internal/models"
)

// CalculationParams describes one calculation request.
type CalculationParams struct {
	UserID      int
	Inputs      models.Inputs
	Description string
	Record      bool // append the run to the history
}

// CalculationOutcome is the result of Calculate; RunID is empty when the run was not recorded.
type CalculationOutcome struct {
	RunID  string        `json:"run_id,omitempty"`
	Result models.Result `json:"result"`
}

// Sweep failure policies.
const (
	PolicyStop = "stop" // abort on the first failing power
	PolicySkip = "skip" // keep going, mark the point failed
)

// SweepParams describes a power sweep. Powers, when set, takes precedence over Range.
type SweepParams struct {
	UserID      int
	Inputs      models.Inputs
	Range       models.PowerRange
	Powers      []float64
	Policy      string
	KeepResults bool // attach the full Result to every point
	Record      bool
}

// PointFunc receives each point as soon as it is computed. A non-nil error aborts the sweep.
type PointFunc func(models.SweepPoint) error

// RunFilter supports history filtering by time range, kind and owner.
type RunFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Kind   string    // "", "CALCULATION", "SWEEP"
	UserID int       // 0 means any user
	Limit  int
}
