package models

// PipeSpec describes the heated pipe section.
type PipeSpec struct {
	Diameter  float64 `json:"diameter" mapstructure:"diameter"`   // m
	Length    float64 `json:"length" mapstructure:"length"`       // m, not used by the current formulas
	Roughness float64 `json:"roughness" mapstructure:"roughness"` // m
}

// FluidState is the oil snapshot before heating.
type FluidState struct {
	Density          float64 `json:"density" mapstructure:"density"`                     // kg/m³
	Viscosity        float64 `json:"viscosity" mapstructure:"viscosity"`                 // Pa·s
	ThermalExpansion float64 `json:"thermal_expansion" mapstructure:"thermal_expansion"` // 1/°C
	HeatCapacity     float64 `json:"heat_capacity" mapstructure:"heat_capacity"`         // J/(kg·°C)
	Temperature      float64 `json:"temperature" mapstructure:"temperature"`             // °C
	Speed            float64 `json:"speed" mapstructure:"speed"`                         // m/s
}

// HeaterSpec is the heater applied to the flow.
type HeaterSpec struct {
	Power      float64 `json:"power" mapstructure:"power"`           // W
	Efficiency float64 `json:"efficiency" mapstructure:"efficiency"` // (0, 1]
}

// Inputs is the full parameter set of one calculation.
type Inputs struct {
	Pipe          PipeSpec   `json:"pipe" mapstructure:"pipe"`
	Fluid         FluidState `json:"fluid" mapstructure:"fluid"`
	Heater        HeaterSpec `json:"heater" mapstructure:"heater"`
	DeltaPressure float64    `json:"delta_pressure" mapstructure:"delta_pressure"` // Pa
}

// WithPower returns a copy of in with the heater power replaced.
func (in Inputs) WithPower(power float64) Inputs {
	in.Heater.Power = power
	return in
}

// DefaultInputs returns the reference oil line: 0.5 m pipe, 850 kg/m³ oil at 20 °C, 500 kW heater.
func DefaultInputs() Inputs {
	return Inputs{
		Pipe: PipeSpec{
			Diameter:  0.5,
			Length:    10,
			Roughness: 0.0001,
		},
		Fluid: FluidState{
			Density:          850,
			Viscosity:        0.1,
			ThermalExpansion: 0.0007,
			HeatCapacity:     2100,
			Temperature:      20,
			Speed:            1,
		},
		Heater: HeaterSpec{
			Power:      500000,
			Efficiency: 0.9,
		},
		DeltaPressure: 50000,
	}
}
