package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"oil_heating/internal/models"
	"oil_heating/internal/physics"
	"oil_heating/internal/repository"
)

// ErrInvalidSweep marks sweep requests rejected before any point is computed.
var ErrInvalidSweep = errors.New("invalid sweep")

var (
	errInvalidPolicy = fmt.Errorf("%w: policy must be stop or skip", ErrInvalidSweep)
	errNoPowers      = fmt.Errorf("%w: at least one power value is required", ErrInvalidSweep)
)

// SweepError identifies the power value that aborted a sweep under PolicyStop.
type SweepError struct {
	Index int
	Power float64
	Err   error
}

func (e *SweepError) Error() string {
	return fmt.Sprintf("sweep stopped at point %d (power %.0f W): %v", e.Index, e.Power, e.Err)
}

func (e *SweepError) Unwrap() error { return e.Err }

// SweepSummary is what a recorded sweep stores in the run history.
type SweepSummary struct {
	Points         int     `json:"points"`
	Failures       int     `json:"failures"`
	FirstPower     float64 `json:"first_power"`
	LastPower      float64 `json:"last_power"`
	MinMaxVelocity float64 `json:"min_max_velocity"`
	MaxMaxVelocity float64 `json:"max_max_velocity"`
}

type SweepService struct {
	runRepo   repository.RunRepo
	maxPoints int
}

func NewSweepService(runRepo repository.RunRepo, maxPoints int) *SweepService {
	return &SweepService{runRepo: runRepo, maxPoints: maxPoints}
}

// Sweep evaluates the transform once per power value, all other inputs fixed.
// The returned points line up with the power sequence one to one.
func (s *SweepService) Sweep(ctx context.Context, p SweepParams, onPoint PointFunc) (models.Sweep, error) {
	policy, err := normalizePolicy(p.Policy)
	if err != nil {
		return models.Sweep{}, err
	}
	powers, err := s.resolvePowers(p)
	if err != nil {
		return models.Sweep{}, err
	}

	out := models.Sweep{Inputs: p.Inputs, Points: make([]models.SweepPoint, 0, len(powers))}
	for i, power := range powers {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		pt := models.SweepPoint{Index: i, Power: power, PlotX: power / models.PlotScale}

		res, err := physics.Run(p.Inputs.WithPower(power))
		switch {
		case err != nil && policy == PolicyStop:
			return out, &SweepError{Index: i, Power: power, Err: err}
		case err != nil:
			pt.Failed = true
			pt.Error = err.Error()
		default:
			pt.MaxVelocityNew = res.MaxVelocityNew
			if p.KeepResults {
				pt.Result = &res
			}
		}

		out.Points = append(out.Points, pt)
		if onPoint != nil {
			if err := onPoint(pt); err != nil {
				return out, err
			}
		}
	}

	if p.Record {
		id, err := s.runRepo.Append(ctx, models.Run{
			Kind:        models.RunSweep,
			UserID:      p.UserID,
			Description: fmt.Sprintf("sweep of %d points, %d failed", len(out.Points), out.Failures()),
			Inputs:      p.Inputs,
			Summary:     summarize(out),
		})
		if err != nil {
			return out, fmt.Errorf("record sweep: %w", err)
		}
		out.RunID = id
	}
	return out, nil
}

func (s *SweepService) resolvePowers(p SweepParams) ([]float64, error) {
	powers := p.Powers
	if len(powers) == 0 {
		var err error
		if powers, err = p.Range.Values(s.maxPoints); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSweep, err)
		}
	} else if s.maxPoints > 0 && len(powers) > s.maxPoints {
		return nil, fmt.Errorf("%w: %d points, limit is %d", ErrInvalidSweep, len(powers), s.maxPoints)
	}
	if len(powers) == 0 {
		return nil, errNoPowers
	}
	return powers, nil
}

func normalizePolicy(p string) (string, error) {
	switch p {
	case "", PolicyStop:
		return PolicyStop, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", errInvalidPolicy
	}
}

func summarize(sw models.Sweep) SweepSummary {
	sum := SweepSummary{
		Points:         len(sw.Points),
		Failures:       sw.Failures(),
		MinMaxVelocity: math.Inf(1),
		MaxMaxVelocity: math.Inf(-1),
	}
	if n := len(sw.Points); n > 0 {
		sum.FirstPower = sw.Points[0].Power
		sum.LastPower = sw.Points[n-1].Power
	}
	for _, pt := range sw.Points {
		if pt.Failed {
			continue
		}
		sum.MinMaxVelocity = math.Min(sum.MinMaxVelocity, pt.MaxVelocityNew)
		sum.MaxMaxVelocity = math.Max(sum.MaxMaxVelocity, pt.MaxVelocityNew)
	}
	if sum.Failures == sum.Points {
		sum.MinMaxVelocity, sum.MaxMaxVelocity = 0, 0
	}
	return sum
}
