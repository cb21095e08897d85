package models

import (
	"errors"
	"fmt"
	"math"
)

// PlotScale divides heater power for the chart x-axis.
const PlotScale = 10

var errInvalidRange = errors.New("invalid power range: step must be > 0 and stop must be >= start")

// PowerRange is a half-open range [Start, Stop) walked in Step increments, in watts.
type PowerRange struct {
	Start float64 `json:"start" mapstructure:"start"`
	Stop  float64 `json:"stop" mapstructure:"stop"`
	Step  float64 `json:"step" mapstructure:"step"`
}

// maxRangeLen bounds any expansion regardless of the caller's limit.
const maxRangeLen = math.MaxInt32

// Len reports how many power values the range yields. Malformed ranges and
// ranges too long to expand report 0.
func (r PowerRange) Len() int {
	n := r.count()
	if n > maxRangeLen {
		return 0
	}
	return int(n)
}

// count is the point count as a float, so spans that overflow int stay comparable.
func (r PowerRange) count() float64 {
	if r.Step <= 0 || r.Stop <= r.Start || isBad(r.Start) || isBad(r.Stop) || isBad(r.Step) {
		return 0
	}
	return math.Ceil((r.Stop - r.Start) / r.Step)
}

// Values expands the range. It fails when the range is malformed or yields more than maxPoints values
// (maxPoints <= 0 disables the limit).
func (r PowerRange) Values(maxPoints int) ([]float64, error) {
	if r.Step <= 0 || r.Stop < r.Start || isBad(r.Start) || isBad(r.Stop) || isBad(r.Step) {
		return nil, errInvalidRange
	}
	n := r.count()
	if isBad(n) || n > maxRangeLen {
		return nil, fmt.Errorf("power range yields %g points, limit is %d", n, maxRangeLen)
	}
	if maxPoints > 0 && n > float64(maxPoints) {
		return nil, fmt.Errorf("power range yields %.0f points, limit is %d", n, maxPoints)
	}
	out := make([]float64, int(n))
	for i := range out {
		out[i] = r.Start + float64(i)*r.Step
	}
	return out, nil
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// SweepPoint is the outcome of one power value in a sweep.
type SweepPoint struct {
	Index          int     `json:"index"`
	Power          float64 `json:"power"`  // W
	PlotX          float64 `json:"plot_x"` // Power / PlotScale
	MaxVelocityNew float64 `json:"max_velocity_new"`
	Result         *Result `json:"result,omitempty"`
	Failed         bool    `json:"failed,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// Sweep is an ordered set of points, one per input power value.
type Sweep struct {
	RunID  string       `json:"run_id,omitempty"`
	Inputs Inputs       `json:"inputs"`
	Points []SweepPoint `json:"points"`
}

// Velocities returns MaxVelocityNew per point, positionally.
func (s Sweep) Velocities() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.MaxVelocityNew
	}
	return out
}

// Failures counts skipped points.
func (s Sweep) Failures() int {
	n := 0
	for _, p := range s.Points {
		if p.Failed {
			n++
		}
	}
	return n
}
