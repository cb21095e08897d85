package service

import (
	"context"
	"fmt"

	"oil_heating/internal/models"
	"oil_heating/internal/physics"
	"oil_heating/internal/repository"
)

type CalculationService struct {
	runRepo  repository.RunRepo
	defaults models.Inputs
}

func NewCalculationService(runRepo repository.RunRepo, defaults models.Inputs) *CalculationService {
	return &CalculationService{runRepo: runRepo, defaults: defaults}
}

// Defaults returns the configured baseline parameter set.
func (s *CalculationService) Defaults() models.Inputs {
	return s.defaults
}

// Calculate runs the transform and, when requested, records the run.
// A failed transform is never recorded.
func (s *CalculationService) Calculate(ctx context.Context, p CalculationParams) (CalculationOutcome, error) {
	res, err := physics.Run(p.Inputs)
	if err != nil {
		return CalculationOutcome{}, err
	}
	out := CalculationOutcome{Result: res}
	if !p.Record {
		return out, nil
	}

	desc := p.Description
	if desc == "" {
		desc = fmt.Sprintf("heater %.0f W, Δt %.2f °C, v_max %.4f m/s", p.Inputs.Heater.Power, res.DeltaT, res.MaxVelocityNew)
	}
	id, err := s.runRepo.Append(ctx, models.Run{
		Kind:        models.RunCalculation,
		UserID:      p.UserID,
		Description: desc,
		Inputs:      p.Inputs,
		Summary:     res,
	})
	if err != nil {
		return out, fmt.Errorf("record calculation: %w", err)
	}
	out.RunID = id
	return out, nil
}
