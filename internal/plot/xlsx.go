package plot

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"oil_heating/internal/models"
)

// SheetName is the worksheet holding sweep data.
const SheetName = "Sweep"

var header = []interface{}{"Power (W)", xLabel, yLabel, "Error"}

// WriteXLSX writes one row per sweep point and a line chart of column C
// against column B. Failed points leave the velocity cell empty.
func WriteXLSX(w io.Writer, sweep models.Sweep, title string) error {
	if _, ok := dataBounds(sweep.Points); !ok {
		return ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, p := range sweep.Points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Power, p.PlotX, nil, nil}
		if p.Failed {
			row[3] = p.Error
		} else {
			row[2] = p.MaxVelocityNew
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	last := len(sweep.Points) + 1
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$C$1", SheetName),
			Categories: fmt.Sprintf("%s!$B$2:$B$%d", SheetName, last),
			Values:     fmt.Sprintf("%s!$C$2:$C$%d", SheetName, last),
		}},
		Title: []excelize.RichTextRun{{Text: titleOr(title)}},
	}
	if err := f.AddChart(SheetName, "F2", chart); err != nil {
		return err
	}

	return f.Write(w)
}
