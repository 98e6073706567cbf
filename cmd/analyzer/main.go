// Command analyzer runs the university-enrollment analysis pipeline:
// load, clean, validate, aggregate, chart and (optionally) report.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"unistats/internal/analysis"
	"unistats/internal/cleaning"
	"unistats/internal/config"
	"unistats/internal/dataset"
	"unistats/internal/infrastructure"
	"unistats/internal/plotting"
	"unistats/internal/report"
)

func main() {
	dataPath := flag.String("data", "", "ruta al archivo CSV con los datos universitarios (default: data/university_data.csv)")
	outputDir := flag.String("out", "", "directorio donde guardar los resultados (default: output/)")
	markdown := flag.Bool("report", false, "generar un reporte en formato markdown")
	configPath := flag.String("config", "", "ruta a un archivo de configuración YAML opcional")
	topN := flag.Int("top", 0, "número de programas en el ranking por GPA (default: 5)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *dataPath != "" {
		cfg.Paths.DataFile = *dataPath
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}
	if *topN > 0 {
		cfg.Analysis.TopPrograms = *topN
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	if err := cfg.EnsureOutputDir(); err != nil {
		logger.Error("Cannot create output directory", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting university data analysis",
		slog.String("data_file", cfg.Paths.DataFile),
		slog.String("output_dir", cfg.Paths.OutputDir),
		slog.Bool("markdown_report", *markdown))

	if err := run(cfg, *markdown, logger); err != nil {
		logger.Error("Error durante el análisis", "error", err)
		fmt.Fprintf(os.Stderr, "Error durante el análisis: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Análisis completado",
		slog.String("output_dir", cfg.Paths.OutputDir))
}

func run(cfg *config.Config, markdown bool, logger *slog.Logger) error {
	now := time.Now()

	// Load
	raw, err := dataset.Load(cfg.Paths.DataFile)
	if err != nil {
		return err
	}

	// Clean and validate
	cleaner := cleaning.NewCleaner(now, logger)
	cleaned := cleaner.Clean(raw)
	problems := cleaner.Validate(cleaned)
	if len(problems) == 0 {
		logger.Info("No se encontraron problemas en los datos")
	}
	for _, problem := range problems {
		logger.Warn("Problema encontrado en los datos", slog.String("detail", problem))
	}

	// Descriptive statistics
	stats := analysis.Describe(cleaned, nil)
	csvWriter := report.NewCSVWriter(logger)
	statsPath := cfg.OutputPath("descriptive_statistics.csv")
	if err := csvWriter.WriteDescriptiveStats(stats, statsPath); err != nil {
		return fmt.Errorf("export descriptive statistics: %w", err)
	}

	// Categorical distributions
	for _, col := range []dataset.Column{dataset.ColProgram, dataset.ColGender, dataset.ColAcademicStanding} {
		counts, err := analysis.ValueCounts(cleaned, col)
		if err != nil {
			return err
		}
		for i, vc := range counts {
			if i == 10 {
				break
			}
			logger.Info("distribución",
				slog.String("column", string(col)),
				slog.String("value", vc.Value),
				slog.Int("count", vc.Count))
		}
	}

	// Grouped analyses
	correlation := analysis.CorrelationMatrix(cleaned, nil)

	gpaByProgram := analysis.GPAByProgram(cleaned)
	for i, pg := range gpaByProgram {
		if i == 10 {
			break
		}
		logger.Info("GPA por programa",
			slog.String("program", pg.Program),
			slog.Float64("mean", pg.Mean),
			slog.Int("count", pg.Count))
	}

	scholarshipByGender, err := analysis.ScholarshipDistribution(cleaned, dataset.ColGender)
	if err != nil {
		return err
	}
	for _, g := range scholarshipByGender {
		logger.Info("becas por género",
			slog.String("group", g.Group),
			slog.Int("total", g.Total),
			slog.String("percent", fmt.Sprintf("%.1f", g.Percent)))
	}

	creditsBySemester := analysis.CreditsBySemester(cleaned)

	topPrograms := analysis.TopProgramsByGPA(cleaned, cfg.Analysis.TopPrograms)
	for _, pg := range topPrograms {
		logger.Info("top programa por GPA",
			slog.String("program", pg.Program),
			slog.Float64("mean", pg.Mean))
	}

	scholarshipByProgram, err := analysis.ScholarshipDistribution(cleaned, dataset.ColProgram)
	if err != nil {
		return err
	}

	// Workbook with the aggregate tables
	excel := report.NewExcelExporter(logger)
	if err := excel.Export(report.Aggregates{
		Stats:        stats,
		GPAByProgram: gpaByProgram,
		Credits:      creditsBySemester,
		Scholarships: scholarshipByProgram,
	}, cfg.OutputPath("analysis_summary.xlsx")); err != nil {
		return fmt.Errorf("export workbook: %w", err)
	}

	// Charts
	sections, err := renderCharts(cleaned, correlation, cfg, logger)
	if err != nil {
		return err
	}

	if markdown {
		gen := report.NewGenerator(now, logger)
		if err := gen.Generate(sections, cfg.Paths.OutputDir); err != nil {
			return err
		}
	}

	return nil
}

// chartSpec ties a fixed output filename to its render function.
type chartSpec struct {
	title    string
	filename string
	render   func(*dataset.Table, string) (string, error)
}

func renderCharts(t *dataset.Table, corr analysis.Correlation, cfg *config.Config, logger *slog.Logger) ([]report.Section, error) {
	charts := []chartSpec{
		{"Distribución de GPA", "gpa_distribution.png", plotting.GPADistribution},
		{"Estudiantes por Programa", "students_per_program.png", plotting.StudentsPerProgram},
		{"GPA vs Créditos Aprobados", "gpa_vs_credits.png", plotting.GPAVsCredits},
		{"Distribución de Becas", "scholarship_status.png", plotting.ScholarshipStatus},
		{"Distribución de Rendimiento Académico", "academic_standing.png", plotting.AcademicStanding},
		{"GPA por Programa", "gpa_boxplot_by_program.png", plotting.GPABoxplotByProgram},
	}

	sections := make([]report.Section, 0, len(charts)+1)
	for _, c := range charts {
		path := cfg.OutputPath(c.filename)
		logger.Info("Generando visualización", slog.String("chart", c.title))
		text, err := c.render(t, path)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", c.filename, err)
		}
		sections = append(sections, report.Section{Title: c.title, ImagePath: path, Text: text})
	}

	heatmapPath := cfg.OutputPath("correlation_heatmap.png")
	logger.Info("Generando visualización", slog.String("chart", "Mapa de Calor de Correlación"))
	text, err := plotting.CorrelationHeatmap(corr, heatmapPath)
	if err != nil {
		return nil, fmt.Errorf("render correlation_heatmap.png: %w", err)
	}
	sections = append(sections, report.Section{
		Title:     "Mapa de Calor de Correlación",
		ImagePath: heatmapPath,
		Text:      text,
	})

	return sections, nil
}
