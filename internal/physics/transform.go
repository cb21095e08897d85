// Package physics computes the thermo-hydraulic state of oil heated in a pipe.
// Every function is pure; Run chains them into one transform.
package physics

import (
	"fmt"

	"oil_heating/internal/models"
)

// Validate checks the record-level constraints of one Inputs snapshot.
func Validate(in models.Inputs) error {
	const op = "validate"
	if err := requirePositive(op, "pipe.diameter", in.Pipe.Diameter); err != nil {
		return err
	}
	if err := requirePositive(op, "pipe.length", in.Pipe.Length); err != nil {
		return err
	}
	if !finite(in.Pipe.Roughness) || in.Pipe.Roughness < 0 {
		return precondition(op, "pipe.roughness", in.Pipe.Roughness, "must be >= 0")
	}
	if err := requirePositive(op, "fluid.density", in.Fluid.Density); err != nil {
		return err
	}
	if err := requirePositive(op, "fluid.viscosity", in.Fluid.Viscosity); err != nil {
		return err
	}
	if !finite(in.Fluid.ThermalExpansion) {
		return precondition(op, "fluid.thermal_expansion", in.Fluid.ThermalExpansion, "must be finite")
	}
	if err := requirePositive(op, "fluid.heat_capacity", in.Fluid.HeatCapacity); err != nil {
		return err
	}
	if !finite(in.Fluid.Temperature) {
		return precondition(op, "fluid.temperature", in.Fluid.Temperature, "must be finite")
	}
	if err := requirePositive(op, "fluid.speed", in.Fluid.Speed); err != nil {
		return err
	}
	if !finite(in.Heater.Power) || in.Heater.Power < 0 {
		return precondition(op, "heater.power", in.Heater.Power, "must be >= 0")
	}
	if !finite(in.Heater.Efficiency) || in.Heater.Efficiency <= 0 || in.Heater.Efficiency > 1 {
		return precondition(op, "heater.efficiency", in.Heater.Efficiency, "must be in (0, 1]")
	}
	if !finite(in.DeltaPressure) || in.DeltaPressure < 0 {
		return precondition(op, "delta_pressure", in.DeltaPressure, "must be >= 0")
	}
	return nil
}

// Run derives the heated state of the flow. The flow speed is held at the
// initial value for both Reynolds numbers; it is never recomputed from the
// heated density or viscosity.
func Run(in models.Inputs) (models.Result, error) {
	if err := Validate(in); err != nil {
		return models.Result{}, err
	}
	pipe, fluid, heater := in.Pipe, in.Fluid, in.Heater

	area, err := PipeArea(pipe.Diameter)
	if err != nil {
		return models.Result{}, err
	}
	massFlow, err := MassFlow(fluid.Density, fluid.Speed, area)
	if err != nil {
		return models.Result{}, err
	}
	deltaT, err := TemperatureRise(heater.Power, heater.Efficiency, fluid.Density, fluid.Speed, area, fluid.HeatCapacity)
	if err != nil {
		return models.Result{}, err
	}

	res := models.Result{
		Area:               area,
		MassFlow:           massFlow,
		DeltaT:             deltaT,
		InitialTemperature: fluid.Temperature,
		NewTemperature:     fluid.Temperature + deltaT,
		NewDensity:         UpdatedDensity(fluid.Density, fluid.ThermalExpansion, deltaT),
		NewViscosity:       UpdatedViscosity(fluid.Viscosity, ViscosityBeta, deltaT),
	}
	if res.NewDensity <= 0 {
		res.Warnings = append(res.Warnings, models.Warning{
			Code:    models.WarnNonphysicalDensity,
			Message: fmt.Sprintf("heated density %.2f kg/m³ is not positive at Δt=%.2f °C", res.NewDensity, deltaT),
		})
	}
	if res.ReynoldsInitial, err = Reynolds(fluid.Density, fluid.Speed, pipe.Diameter, fluid.Viscosity); err != nil {
		return models.Result{}, fmt.Errorf("initial state: %w", err)
	}
	if res.ReynoldsNew, err = Reynolds(res.NewDensity, fluid.Speed, pipe.Diameter, res.NewViscosity); err != nil {
		return models.Result{}, fmt.Errorf("heated state: %w", err)
	}

	if res.FrictionInitial, err = FrictionFactor(res.ReynoldsInitial, pipe.Roughness, pipe.Diameter); err != nil {
		return models.Result{}, fmt.Errorf("initial state: %w", err)
	}
	if res.FrictionNew, err = FrictionFactor(res.ReynoldsNew, pipe.Roughness, pipe.Diameter); err != nil {
		return models.Result{}, fmt.Errorf("heated state: %w", err)
	}
	res.Warnings = appendTransitional(res.Warnings, "initial", res.ReynoldsInitial)
	res.Warnings = appendTransitional(res.Warnings, "heated", res.ReynoldsNew)
	res.Warnings = appendNonpositiveFriction(res.Warnings, "initial", res.FrictionInitial)
	res.Warnings = appendNonpositiveFriction(res.Warnings, "heated", res.FrictionNew)

	if res.MaxVelocityInitial, err = MaxVelocity(in.DeltaPressure, fluid.Density, pipe.Diameter, res.FrictionInitial); err != nil {
		return models.Result{}, fmt.Errorf("initial state: %w", err)
	}
	if res.MaxVelocityNew, err = MaxVelocity(in.DeltaPressure, res.NewDensity, pipe.Diameter, res.FrictionNew); err != nil {
		return models.Result{}, fmt.Errorf("heated state: %w", err)
	}
	return res, nil
}

func appendTransitional(ws []models.Warning, state string, re float64) []models.Warning {
	if Regime(re) != "transitional" {
		return ws
	}
	return append(ws, models.Warning{
		Code:    models.WarnTransitionalFriction,
		Message: fmt.Sprintf("%s state Re=%.0f is transitional; friction factor fixed at %g", state, re, TransitionalFriction),
	})
}

func appendNonpositiveFriction(ws []models.Warning, state string, f float64) []models.Warning {
	if f > 0 {
		return ws
	}
	return append(ws, models.Warning{
		Code:    models.WarnNonpositiveFriction,
		Message: fmt.Sprintf("%s state friction factor %.5f is not positive", state, f),
	})
}
