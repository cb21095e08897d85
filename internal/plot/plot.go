// Package plot renders a power sweep as a PDF line chart or as an XLSX
// workbook carrying the data and a native line chart.
package plot

import (
	"errors"
	"math"

	"oil_heating/internal/models"
)

// ErrNoData is returned when a sweep has no successful point to draw.
var ErrNoData = errors.New("plot: sweep has no successful points")

const (
	defaultTitle = "Max velocity after heating vs heater power"
	xLabel       = "Power / 10"
	yLabel       = "Max velocity (m/s)"
)

type bounds struct {
	minX, maxX, minY, maxY float64
}

// dataBounds scans successful points. Degenerate spans are widened so the
// chart always has a non-zero extent.
func dataBounds(points []models.SweepPoint) (bounds, bool) {
	b := bounds{minX: math.Inf(1), maxX: math.Inf(-1), minY: math.Inf(1), maxY: math.Inf(-1)}
	seen := false
	for _, p := range points {
		if p.Failed {
			continue
		}
		seen = true
		b.minX = math.Min(b.minX, p.PlotX)
		b.maxX = math.Max(b.maxX, p.PlotX)
		b.minY = math.Min(b.minY, p.MaxVelocityNew)
		b.maxY = math.Max(b.maxY, p.MaxVelocityNew)
	}
	if !seen {
		return b, false
	}
	if b.maxX == b.minX {
		b.minX--
		b.maxX++
	}
	if b.maxY == b.minY {
		pad := math.Max(math.Abs(b.maxY)*0.05, 1e-6)
		b.minY -= pad
		b.maxY += pad
	}
	return b, true
}

func titleOr(title string) string {
	if title == "" {
		return defaultTitle
	}
	return title
}
