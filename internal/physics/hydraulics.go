package physics

import "math"

// Flow regime boundaries on the Reynolds number.
const (
	LaminarLimit   = 2000.0
	TurbulentLimit = 4000.0
)

const (
	// TransitionalFriction is a fixed placeholder for 2000 <= Re < 4000, not a correlation.
	TransitionalFriction = 0.5

	turbulentSeed       = 0.02
	turbulentIterations = 10
)

// Reynolds returns ρ·v·d/μ. A negative density is passed through, so a
// heated state past the density zero yields a negative Re.
func Reynolds(density, velocity, diameter, viscosity float64) (float64, error) {
	const op = "reynolds"
	if err := requireNonZero(op, "density", density); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "velocity", velocity); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "diameter", diameter); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "viscosity", viscosity); err != nil {
		return 0, err
	}
	return density * velocity * diameter / viscosity, nil
}

// Regime names the flow regime for a Reynolds number.
func Regime(re float64) string {
	switch {
	case re < LaminarLimit:
		return "laminar"
	case re >= TurbulentLimit:
		return "turbulent"
	default:
		return "transitional"
	}
}

// FrictionFactor returns the Darcy friction factor for the given regime.
//
// In the turbulent regime the update is applied a fixed number of times from
// f = 0.02. The right-hand side does not read the previous f, so every pass
// after the first reproduces the same value. A negative Re takes the laminar
// branch and returns a negative factor.
func FrictionFactor(re, roughness, diameter float64) (float64, error) {
	const op = "friction_factor"
	if err := requireNonZero(op, "reynolds", re); err != nil {
		return 0, err
	}
	if !finite(roughness) || roughness < 0 {
		return 0, precondition(op, "roughness", roughness, "must be >= 0")
	}

	switch Regime(re) {
	case "laminar":
		return 64 / re, nil
	case "turbulent":
		if err := requirePositive(op, "diameter", diameter); err != nil {
			return 0, err
		}
		f := turbulentSeed
		for i := 0; i < turbulentIterations; i++ {
			arg := roughness/(3.7*diameter) + 5.74/math.Pow(re, 0.9)
			denom := -2 * math.Log10(arg)
			if denom == 0 || !finite(denom) {
				return 0, precondition(op, "colebrook_argument", arg, "log term must be non-zero")
			}
			f = 1 / denom
		}
		return f, nil
	default:
		return TransitionalFriction, nil
	}
}

// MaxVelocity returns sqrt(2·Δp/(f·ρ))/10, m/s. The /10 is a calibration factor.
// Only the product f·ρ has to be positive; both may be negative together.
func MaxVelocity(deltaPressure, density, diameter, friction float64) (float64, error) {
	const op = "max_velocity"
	if !finite(deltaPressure) {
		return 0, precondition(op, "delta_pressure", deltaPressure, "must be finite")
	}
	if err := requireNonZero(op, "density", density); err != nil {
		return 0, err
	}
	if err := requireNonZero(op, "friction_factor", friction); err != nil {
		return 0, err
	}
	radicand := 2 * deltaPressure / (friction * density)
	if radicand < 0 {
		return 0, precondition(op, "delta_pressure", deltaPressure, "2·Δp/(f·ρ) is negative")
	}
	return math.Sqrt(radicand) / 10, nil
}
