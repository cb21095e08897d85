package plot

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"oil_heating/internal/models"
)

// Chart area in millimetres on an A4 landscape page.
const (
	chartLeft   = 30.0
	chartTop    = 25.0
	chartWidth  = 240.0
	chartHeight = 150.0
	gridLines   = 5
)

// WritePDF draws max velocity after heating against power/10. Failed points
// break the line instead of being interpolated over.
func WritePDF(w io.Writer, sweep models.Sweep, title string) error {
	b, ok := dataBounds(sweep.Points)
	if !ok {
		return ErrNoData
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(chartLeft, chartTop-10, titleOr(title))

	sx := func(x float64) float64 { return chartLeft + (x-b.minX)/(b.maxX-b.minX)*chartWidth }
	sy := func(y float64) float64 { return chartTop + chartHeight - (y-b.minY)/(b.maxY-b.minY)*chartHeight }

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.1)
	for i := 0; i <= gridLines; i++ {
		fx := b.minX + float64(i)*(b.maxX-b.minX)/gridLines
		fy := b.minY + float64(i)*(b.maxY-b.minY)/gridLines
		pdf.Line(sx(fx), chartTop, sx(fx), chartTop+chartHeight)
		pdf.Line(chartLeft, sy(fy), chartLeft+chartWidth, sy(fy))
		pdf.Text(sx(fx)-4, chartTop+chartHeight+5, fmt.Sprintf("%.0f", fx))
		pdf.Text(chartLeft-18, sy(fy)+1, fmt.Sprintf("%.4f", fy))
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(chartLeft, chartTop, chartWidth, chartHeight, "D")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(chartLeft+chartWidth/2-10, chartTop+chartHeight+12, xLabel)
	pdf.TransformBegin()
	pdf.TransformRotate(90, chartLeft-22, chartTop+chartHeight/2+15)
	pdf.Text(chartLeft-22, chartTop+chartHeight/2+15, yLabel)
	pdf.TransformEnd()

	pdf.SetDrawColor(31, 119, 180)
	pdf.SetLineWidth(0.4)
	var prev *models.SweepPoint
	for i := range sweep.Points {
		p := &sweep.Points[i]
		if p.Failed {
			prev = nil
			continue
		}
		if prev != nil {
			pdf.Line(sx(prev.PlotX), sy(prev.MaxVelocityNew), sx(p.PlotX), sy(p.MaxVelocityNew))
		}
		prev = p
	}

	if failures := sweep.Failures(); failures > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.Text(chartLeft, chartTop+chartHeight+20, fmt.Sprintf("%d point(s) failed and were skipped", failures))
	}

	return pdf.Output(w)
}
