package plotting

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart palette. Steelblue and gold mirror the no-scholarship / scholarship
// colors used across all charts; violet is the histogram fill.
var (
	colorSteelblue = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorGold      = color.RGBA{R: 218, G: 165, B: 32, A: 255}
	colorViolet    = color.RGBA{R: 120, G: 81, B: 169, A: 200}
	colorTeal      = color.RGBA{R: 54, G: 117, B: 136, A: 255}
	colorRed       = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	colorGreen     = color.RGBA{R: 30, G: 140, B: 60, A: 255}
)

const (
	defaultWidth  = 10 * vg.Inch
	defaultHeight = 6 * vg.Inch
	wideWidth     = 14 * vg.Inch
	wideHeight    = 8 * vg.Inch
)

// newPlot creates a plot with the shared style applied.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	return p
}

// savePlot writes the chart to outPath, creating the directory first.
func savePlot(p *plot.Plot, w, h vg.Length, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}
	if err := p.Save(w, h, outPath); err != nil {
		return fmt.Errorf("save chart %s: %w", filepath.Base(outPath), err)
	}
	return nil
}
