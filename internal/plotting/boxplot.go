package plotting

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"unistats/internal/analysis"
	"unistats/internal/dataset"
)

// maxBoxplotPrograms caps the boxplot at the 10 most enrolled programs.
const maxBoxplotPrograms = 10

// GPABoxplotByProgram renders one box per program for the top programs by
// enrollment, ordered by descending mean GPA, and returns its summary.
func GPABoxplotByProgram(t *dataset.Table, outPath string) (string, error) {
	counts, err := analysis.ValueCounts(t, dataset.ColProgram)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "", fmt.Errorf("no hay datos de programas para graficar")
	}

	keep := make(map[string]bool, maxBoxplotPrograms)
	for i, vc := range counts {
		if i == maxBoxplotPrograms {
			break
		}
		keep[vc.Value] = true
	}

	// Order the kept programs by descending mean GPA.
	var order []analysis.ProgramGPA
	for _, pg := range analysis.GPAByProgram(t) {
		if keep[pg.Program] {
			order = append(order, pg)
		}
	}

	gpasByProgram := make(map[string][]float64, len(keep))
	for _, rec := range t.Records {
		if keep[rec.Program] {
			gpasByProgram[rec.Program] = append(gpasByProgram[rec.Program], rec.GPA)
		}
	}

	p := newPlot("Distribución de GPA por Programa Académico (Top 10 programas por número de estudiantes)",
		"Programa Académico", "GPA (Promedio Académico)")

	names := make([]string, len(order))
	for i, pg := range order {
		names[i] = pg.Program
		box, err := plotter.NewBoxPlot(vg.Points(25), float64(i), plotter.Values(gpasByProgram[pg.Program]))
		if err != nil {
			return "", fmt.Errorf("build box plot for %s: %w", pg.Program, err)
		}
		p.Add(box)
	}
	p.NominalX(names...)

	if err := savePlot(p, wideWidth, wideHeight, outPath); err != nil {
		return "", err
	}

	return gpaBoxplotSummary(order), nil
}

func gpaBoxplotSummary(order []analysis.ProgramGPA) string {
	top := order[0]

	mostVariable := order[0]
	minMean, maxMean := order[0].Mean, order[0].Mean
	for _, pg := range order {
		if pg.Std > mostVariable.Std {
			mostVariable = pg
		}
		if pg.Mean < minMean {
			minMean = pg.Mean
		}
		if pg.Mean > maxMean {
			maxMean = pg.Mean
		}
	}

	spread := "No se observan grandes diferencias en el GPA promedio entre los programas, lo que sugiere una consistencia en los estándares académicos."
	if maxMean-minMean > 0.5 {
		spread = "Se observa una variación significativa en el GPA promedio entre diferentes programas, lo que podría reflejar diferencias en la dificultad académica o en los criterios de evaluación."
	}

	return fmt.Sprintf(
		"Análisis de GPA por Programa Académico:\n"+
			"- El programa con el GPA promedio más alto es '%s' con un promedio de %.2f.\n"+
			"- El programa con mayor variabilidad en el GPA es '%s' (desviación estándar de %.2f), lo que indica una mayor dispersión en el rendimiento académico de sus estudiantes.\n"+
			"- %s\n"+
			"- Este análisis está basado en los %d programas con mayor número de estudiantes, que representan una parte significativa de la población estudiantil.",
		top.Program, top.Mean, mostVariable.Program, mostVariable.Std, spread, len(order))
}
