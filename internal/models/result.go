package models

// Warning codes carried on a Result.
const (
	// WarnTransitionalFriction marks a friction factor taken from the fixed transitional placeholder.
	WarnTransitionalFriction = "TRANSITIONAL_FRICTION"
	// WarnNonphysicalDensity marks a heated density at or below zero.
	WarnNonphysicalDensity = "NONPHYSICAL_DENSITY"
	// WarnNonpositiveFriction marks a friction factor at or below zero.
	WarnNonpositiveFriction = "NONPOSITIVE_FRICTION"
)

// Warning flags a value that was computed but is physically questionable.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the thermo-hydraulic state derived from one Inputs snapshot.
type Result struct {
	Area     float64 `json:"area"`      // m²
	MassFlow float64 `json:"mass_flow"` // kg/s

	DeltaT             float64 `json:"delta_t"`             // °C
	InitialTemperature float64 `json:"initial_temperature"` // °C
	NewTemperature     float64 `json:"new_temperature"`     // °C
	NewDensity         float64 `json:"new_density"`         // kg/m³
	NewViscosity       float64 `json:"new_viscosity"`       // Pa·s

	ReynoldsInitial float64 `json:"reynolds_initial"`
	ReynoldsNew     float64 `json:"reynolds_new"`
	FrictionInitial float64 `json:"friction_initial"`
	FrictionNew     float64 `json:"friction_new"`

	MaxVelocityInitial float64 `json:"max_velocity_initial"` // m/s
	MaxVelocityNew     float64 `json:"max_velocity_new"`     // m/s

	Warnings []Warning `json:"warnings,omitempty"`
}
