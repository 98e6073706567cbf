package plotting

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"unistats/internal/dataset"
)

// GPAVsCredits renders a scatter plot of GPA against approved credits,
// colored by scholarship status and with a least-squares trend line, and
// returns its Spanish textual summary.
func GPAVsCredits(t *dataset.Table, outPath string) (string, error) {
	if t.Len() == 0 {
		return "", fmt.Errorf("no hay datos para graficar GPA vs créditos")
	}

	var withScholarship, withoutScholarship plotter.XYs
	credits := make([]float64, 0, t.Len())
	gpas := make([]float64, 0, t.Len())
	for _, rec := range t.Records {
		pt := plotter.XY{X: float64(rec.CreditsApproved), Y: rec.GPA}
		if rec.Scholarship {
			withScholarship = append(withScholarship, pt)
		} else {
			withoutScholarship = append(withoutScholarship, pt)
		}
		credits = append(credits, float64(rec.CreditsApproved))
		gpas = append(gpas, rec.GPA)
	}

	p := newPlot("Relación entre GPA y Número de Créditos Aprobados",
		"Número de Créditos Aprobados", "GPA (Promedio Académico)")

	if len(withoutScholarship) > 0 {
		s, err := plotter.NewScatter(withoutScholarship)
		if err != nil {
			return "", fmt.Errorf("build scatter: %w", err)
		}
		s.GlyphStyle.Color = colorSteelblue
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add("Sin Beca", s)
	}
	if len(withScholarship) > 0 {
		s, err := plotter.NewScatter(withScholarship)
		if err != nil {
			return "", fmt.Errorf("build scatter: %w", err)
		}
		s.GlyphStyle.Color = colorGold
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add("Con Beca", s)
	}
	p.Legend.Top = true

	// Least-squares trend across all rows.
	alpha, beta := stat.LinearRegression(credits, gpas, nil, false)
	minX, maxX := credits[0], credits[0]
	for _, x := range credits {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	trend, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: alpha + beta*minX},
		{X: maxX, Y: alpha + beta*maxX},
	})
	if err != nil {
		return "", fmt.Errorf("build trend line: %w", err)
	}
	trend.LineStyle.Color = colorRed
	trend.LineStyle.Width = vg.Points(1)
	trend.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(trend)

	if err := savePlot(p, defaultWidth, wideHeight, outPath); err != nil {
		return "", err
	}

	return gpaVsCreditsSummary(t, credits, gpas), nil
}

func gpaVsCreditsSummary(t *dataset.Table, credits, gpas []float64) string {
	correlation := stat.Correlation(gpas, credits, nil)

	var withGPA, withoutGPA []float64
	for _, rec := range t.Records {
		if rec.Scholarship {
			withGPA = append(withGPA, rec.GPA)
		} else {
			withoutGPA = append(withoutGPA, rec.GPA)
		}
	}
	meanWith := math.NaN()
	if len(withGPA) > 0 {
		meanWith = stat.Mean(withGPA, nil)
	}
	meanWithout := math.NaN()
	if len(withoutGPA) > 0 {
		meanWithout = stat.Mean(withoutGPA, nil)
	}
	diff := meanWith - meanWithout

	sign := "positiva"
	if correlation < 0 {
		sign = "negativa"
	}
	reading := "a medida que los estudiantes aprueban más créditos, tienden a tener un GPA más bajo"
	if correlation > 0 {
		reading = "a medida que los estudiantes aprueban más créditos, tienden a tener un GPA más alto"
	} else if math.Abs(correlation) < 0.3 {
		reading = "no hay una relación fuerte entre ambas variables"
	}

	favor := "a favor de los no becados"
	if diff > 0 {
		favor = "a favor de los becados"
	}

	tendency := "No se observa una tendencia clara entre el número de créditos aprobados y el GPA, lo que sugiere que otros factores pueden ser más determinantes en el rendimiento académico."
	if correlation > 0.3 {
		tendency = "Se observa una tendencia donde los estudiantes con más créditos aprobados generalmente tienen un GPA más alto, lo que podría indicar que la experiencia académica contribuye positivamente al rendimiento."
	}

	return fmt.Sprintf(
		"Análisis de GPA vs Créditos Aprobados:\n"+
			"- Existe una correlación %s de %.2f entre el GPA y el número de créditos aprobados, lo que sugiere que %s.\n"+
			"- Los estudiantes con beca tienen un GPA promedio de %.2f, mientras que los estudiantes sin beca tienen un GPA promedio de %.2f (una diferencia de %.2f puntos %s).\n"+
			"- %s",
		sign, math.Abs(correlation), reading,
		meanWith, meanWithout, math.Abs(diff), favor,
		tendency)
}
