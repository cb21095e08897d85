package physics

import "math"

// ViscosityBeta is the empirical viscosity-temperature coefficient, 1/°C.
const ViscosityBeta = 0.02

// PipeArea returns the cross-sectional area of a pipe of diameter d, m².
func PipeArea(diameter float64) (float64, error) {
	if err := requirePositive("pipe_area", "diameter", diameter); err != nil {
		return 0, err
	}
	return math.Pi * (diameter / 2) * (diameter / 2), nil
}

// MassFlow returns ρ·v·A, kg/s.
func MassFlow(density, velocity, area float64) (float64, error) {
	const op = "mass_flow"
	if err := requirePositive(op, "density", density); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "velocity", velocity); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "area", area); err != nil {
		return 0, err
	}
	return density * velocity * area, nil
}

// TemperatureRise returns the bulk temperature increase of the flow, °C:
// Δt = P·η / (ρ·v·A·cp).
func TemperatureRise(power, efficiency, density, velocity, area, heatCapacity float64) (float64, error) {
	const op = "temperature_rise"
	if !finite(power) || power < 0 {
		return 0, precondition(op, "power", power, "must be >= 0")
	}
	if !finite(efficiency) || efficiency <= 0 || efficiency > 1 {
		return 0, precondition(op, "efficiency", efficiency, "must be in (0, 1]")
	}
	if err := requirePositive(op, "heat_capacity", heatCapacity); err != nil {
		return 0, err
	}
	m, err := MassFlow(density, velocity, area)
	if err != nil {
		return 0, err
	}
	return power * efficiency / (m * heatCapacity), nil
}

// UpdatedDensity applies volumetric expansion: ρ₀·(1 − α·Δt).
// There is no floor; large α·Δt yields a non-positive density.
func UpdatedDensity(initialDensity, thermalExpansion, deltaT float64) float64 {
	return initialDensity * (1 - thermalExpansion*deltaT)
}

// UpdatedViscosity applies exponential thinning: μ₀·exp(−β·Δt).
func UpdatedViscosity(initialViscosity, beta, deltaT float64) float64 {
	return initialViscosity * math.Exp(-beta*deltaT)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
