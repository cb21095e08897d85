// Package report renders a calculation result as fixed-precision text.
package report

import (
	"fmt"
	"io"

	"oil_heating/internal/models"
)

type line struct {
	label string
	value float64
	prec  int
	unit  string
}

func lines(in models.Inputs, res models.Result) []line {
	return []line{
		{"Initial temperature", res.InitialTemperature, 2, "°C"},
		{"New temperature", res.NewTemperature, 2, "°C"},
		{"Temperature rise", res.DeltaT, 2, "°C"},
		{"Initial density", in.Fluid.Density, 2, "kg/m³"},
		{"New density", res.NewDensity, 2, "kg/m³"},
		{"Initial viscosity", in.Fluid.Viscosity, 5, "Pa·s"},
		{"New viscosity", res.NewViscosity, 5, "Pa·s"},
		{"Reynolds number (before heating)", res.ReynoldsInitial, 2, ""},
		{"Reynolds number (after heating)", res.ReynoldsNew, 2, ""},
		{"Friction factor (before heating)", res.FrictionInitial, 5, ""},
		{"Friction factor (after heating)", res.FrictionNew, 5, ""},
		{"Max velocity (before heating)", res.MaxVelocityInitial, 7, "m/s"},
		{"Max velocity (after heating)", res.MaxVelocityNew, 7, "m/s"},
	}
}

// Write prints the result block followed by any warnings.
func Write(w io.Writer, in models.Inputs, res models.Result) error {
	if _, err := fmt.Fprintln(w, "=== Results ==="); err != nil {
		return err
	}
	for _, l := range lines(in, res) {
		s := fmt.Sprintf("%s: %.*f", l.label, l.prec, l.value)
		if l.unit != "" {
			s += " " + l.unit
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	for _, wn := range res.Warnings {
		if _, err := fmt.Fprintf(w, "warning [%s]: %s\n", wn.Code, wn.Message); err != nil {
			return err
		}
	}
	return nil
}
