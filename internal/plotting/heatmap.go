package plotting

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"unistats/internal/analysis"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	corr analysis.Correlation
}

func (g corrGrid) Dims() (int, int) { n := len(g.corr.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 {
	return g.corr.Values[r][c]
}
func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }

// CorrelationHeatmap renders the correlation matrix as a heat map on a
// blue-red diverging palette fixed to [-1, 1] and returns its summary.
func CorrelationHeatmap(corr analysis.Correlation, outPath string) (string, error) {
	if corr.Empty() {
		return "", fmt.Errorf("la matriz de correlación está vacía")
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	heat := plotter.NewHeatMap(corrGrid{corr: corr}, cm.Palette(255))
	heat.Min = -1
	heat.Max = 1

	p := newPlot("Matriz de Correlación de Variables Numéricas", "", "")
	p.Add(heat)

	names := make([]string, len(corr.Columns))
	for i, c := range corr.Columns {
		names[i] = string(c)
	}
	p.NominalX(names...)
	p.NominalY(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1

	if err := savePlot(p, wideWidth, wideHeight, outPath); err != nil {
		return "", err
	}

	return correlationHeatmapSummary(corr), nil
}

type corrPair struct {
	a, b string
	r    float64
}

func correlationHeatmapSummary(corr analysis.Correlation) string {
	var pairs []corrPair
	sum, n := 0.0, 0
	for i := range corr.Columns {
		for j := i + 1; j < len(corr.Columns); j++ {
			r := corr.Values[i][j]
			if math.IsNaN(r) {
				continue
			}
			pairs = append(pairs, corrPair{a: string(corr.Columns[i]), b: string(corr.Columns[j]), r: r})
			sum += math.Abs(r)
			n++
		}
	}
	if len(pairs) == 0 {
		return "Análisis de la Matriz de Correlación:\n- No hay pares de variables suficientes para evaluar correlaciones."
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].r > pairs[j].r })

	var b []string
	b = append(b, "Análisis de la Matriz de Correlación:")
	if len(pairs) >= 2 {
		b = append(b, fmt.Sprintf(
			"- La correlación positiva más fuerte se observa entre %s y %s (r = %.2f), seguida por %s y %s (r = %.2f).",
			pairs[0].a, pairs[0].b, pairs[0].r, pairs[1].a, pairs[1].b, pairs[1].r))
		last := pairs[len(pairs)-1]
		prev := pairs[len(pairs)-2]
		b = append(b, fmt.Sprintf(
			"- La correlación negativa más fuerte se observa entre %s y %s (r = %.2f), seguida por %s y %s (r = %.2f).",
			last.a, last.b, last.r, prev.a, prev.b, prev.r))
	} else {
		b = append(b, fmt.Sprintf("- La única correlación disponible es entre %s y %s (r = %.2f).",
			pairs[0].a, pairs[0].b, pairs[0].r))
	}

	overall := "En general, las correlaciones entre variables son moderadas o débiles, lo que sugiere que las variables son relativamente independientes entre sí."
	if sum/float64(n) > 0.4 {
		overall = "En general, se observan correlaciones fuertes entre múltiples variables, lo que sugiere interdependencias significativas en los datos."
	}
	b = append(b, "- "+overall)

	return strings.Join(b, "\n")
}
