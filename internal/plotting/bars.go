package plotting

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"unistats/internal/analysis"
	"unistats/internal/dataset"
)

// maxProgramBars caps the students-per-program chart at the 15 largest
// programs so the axis stays readable.
const maxProgramBars = 15

// StudentsPerProgram renders a horizontal bar chart of enrollment counts
// per program and returns its Spanish textual summary.
func StudentsPerProgram(t *dataset.Table, outPath string) (string, error) {
	counts, err := analysis.ValueCounts(t, dataset.ColProgram)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "", fmt.Errorf("no hay datos de programas para graficar")
	}

	titleSuffix := ""
	shown := counts
	if len(shown) > maxProgramBars {
		shown = shown[:maxProgramBars]
		titleSuffix = " (Top 15)"
	}

	// Reverse so the largest program ends up at the top of the axis.
	names := make([]string, len(shown))
	values := make(plotter.Values, len(shown))
	for i, vc := range shown {
		j := len(shown) - 1 - i
		names[j] = vc.Value
		values[j] = float64(vc.Count)
	}

	p := newPlot("Número de Estudiantes por Programa Académico"+titleSuffix,
		"Número de Estudiantes", "Programa Académico")

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = colorTeal
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	if err := savePlot(p, wideWidth, wideHeight, outPath); err != nil {
		return "", err
	}

	return studentsPerProgramSummary(t, counts, shown), nil
}

func studentsPerProgramSummary(t *dataset.Table, all, shown []analysis.ValueCount) string {
	total := t.Len()
	top := shown[0]
	topShare := float64(top.Count) / float64(total) * 100

	coverage := "la totalidad"
	if len(shown) < len(all) {
		coverage = "una parte significativa"
	}

	values := make([]float64, len(shown))
	for i, vc := range shown {
		values[i] = float64(vc.Count)
	}
	mean := stat.Mean(values, nil)
	spread := "una distribución relativamente uniforme"
	if mean > 0 && stat.StdDev(values, nil)/mean >= 0.5 {
		spread = "una variación considerable"
	}

	return fmt.Sprintf(
		"Análisis de Estudiantes por Programa:\n"+
			"- De un total de %d estudiantes, el programa con mayor número de estudiantes es '%s' con %d estudiantes (%.1f%% del total).\n"+
			"- Los %d programas mostrados representan %s de la oferta académica.\n"+
			"- Se observa %s en el número de estudiantes por programa.",
		total, top.Value, top.Count, topShare, len(shown), coverage, spread)
}

// AcademicStanding renders a bar chart of student counts per academic
// standing, with count labels over each bar, and returns its summary.
func AcademicStanding(t *dataset.Table, outPath string) (string, error) {
	counts, err := analysis.ValueCounts(t, dataset.ColAcademicStanding)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "", fmt.Errorf("no hay datos de rendimiento académico para graficar")
	}

	// Bars ordered by standing name, as the original chart sorts its axis.
	ordered := append([]analysis.ValueCount(nil), counts...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Value < ordered[j].Value })

	names := make([]string, len(ordered))
	values := make(plotter.Values, len(ordered))
	labels := make([]string, len(ordered))
	pts := make(plotter.XYs, len(ordered))
	for i, vc := range ordered {
		names[i] = vc.Value
		values[i] = float64(vc.Count)
		labels[i] = fmt.Sprintf("%d", vc.Count)
		pts[i] = plotter.XY{X: float64(i), Y: float64(vc.Count)}
	}

	p := newPlot("Distribución de Estudiantes por Rendimiento Académico",
		"Rendimiento Académico", "Número de Estudiantes")

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	bars.Color = colorTeal
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	countLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return "", fmt.Errorf("build bar labels: %w", err)
	}
	p.Add(countLabels)

	if err := savePlot(p, defaultWidth, defaultHeight, outPath); err != nil {
		return "", err
	}

	return academicStandingSummary(counts), nil
}

func academicStandingSummary(counts []analysis.ValueCount) string {
	total := 0
	for _, vc := range counts {
		total += vc.Count
	}
	top := counts[0]

	concentration := "hay una variación significativa en el rendimiento académico de los estudiantes"
	if top.Value == "Average" {
		concentration = "la mayoría de los estudiantes se concentran en rendimientos medios"
	}

	poor := 0
	for _, vc := range counts {
		if vc.Value == "Poor" {
			poor = vc.Count
		}
	}
	risk := "Hay una proporción considerable de estudiantes con rendimiento académico bajo, lo que podría requerir programas de apoyo académico"
	if float64(poor) < float64(total)*0.2 {
		risk = "Hay una proporción relativamente baja de estudiantes con rendimiento académico bajo o en riesgo"
	}

	return fmt.Sprintf(
		"Análisis de la Distribución de Rendimiento Académico:\n"+
			"- El rendimiento académico más común entre los %d estudiantes es '%s', con %d estudiantes (%.1f%% del total).\n"+
			"- La distribución muestra que %s.\n"+
			"- %s",
		total, top.Value, top.Count, float64(top.Count)/float64(total)*100, concentration, risk)
}

// ScholarshipStatus renders the scholarship share as a two-bar percentage
// chart and returns its Spanish textual summary.
func ScholarshipStatus(t *dataset.Table, outPath string) (string, error) {
	if t.Len() == 0 {
		return "", fmt.Errorf("no hay datos de becas para graficar")
	}

	with := 0
	for _, rec := range t.Records {
		if rec.Scholarship {
			with++
		}
	}
	total := t.Len()
	without := total - with
	withPct := float64(with) / float64(total) * 100
	withoutPct := float64(without) / float64(total) * 100

	p := newPlot("Distribución de Estudiantes por Estatus de Beca",
		"", "Porcentaje de Estudiantes")

	withoutBar, err := plotter.NewBarChart(plotter.Values{withoutPct, 0}, vg.Points(60))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	withoutBar.Color = colorSteelblue
	withoutBar.LineStyle.Width = 0

	withBar, err := plotter.NewBarChart(plotter.Values{0, withPct}, vg.Points(60))
	if err != nil {
		return "", fmt.Errorf("build bar chart: %w", err)
	}
	withBar.Color = colorGold
	withBar.LineStyle.Width = 0

	p.Add(withoutBar, withBar)
	p.NominalX(
		fmt.Sprintf("Sin Beca (%.1f%%)", withoutPct),
		fmt.Sprintf("Con Beca (%.1f%%)", withPct),
	)

	if err := savePlot(p, defaultWidth, defaultHeight, outPath); err != nil {
		return "", err
	}

	return scholarshipStatusSummary(with, without), nil
}

func scholarshipStatusSummary(with, without int) string {
	total := with + without

	policy := "Una proporción significativa de estudiantes cuenta con beca, lo que podría indicar una fuerte política de apoyo financiero en la institución."
	if without > with {
		policy = "La mayoría de los estudiantes no cuentan con beca, lo que podría indicar criterios estrictos para su asignación."
	}

	ratio := "- Ningún estudiante cuenta con beca en este conjunto de datos.\n"
	if with > 0 {
		ratio = fmt.Sprintf("- La proporción de estudiantes con beca es de aproximadamente 1 por cada %.1f estudiantes.\n",
			float64(total)/float64(with))
	}

	return fmt.Sprintf(
		"Análisis de la Distribución de Becas:\n"+
			"- De un total de %d estudiantes, %d (%.1f%%) cuentan con beca, mientras que %d (%.1f%%) no tienen beca.\n"+
			"%s"+
			"- %s",
		total, with, float64(with)/float64(total)*100,
		without, float64(without)/float64(total)*100,
		ratio, policy)
}
