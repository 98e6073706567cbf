package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ReportFilename is the fixed name of the markdown report inside the
// output directory.
const ReportFilename = "analysis_report.md"

// Section is one chart of the report: its title, the rendered image and
// the generated textual summary.
type Section struct {
	Title     string
	ImagePath string
	Text      string
}

// Generator assembles the markdown analysis report.
type Generator struct {
	logger *slog.Logger
	now    time.Time
}

// NewGenerator creates a report generator stamped with the given time.
func NewGenerator(now time.Time, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{logger: logger, now: now}
}

// Generate writes the markdown report into outputDir, referencing chart
// images by path relative to the report location.
func (g *Generator) Generate(sections []Section, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Reporte de Análisis de Datos Universitarios\n\n")
	fmt.Fprintf(&b, "*Generado el %s*\n\n", g.now.Format("02-01-2006 15:04:05"))

	b.WriteString("## Resumen Ejecutivo\n\n")
	b.WriteString("Este reporte presenta un análisis completo de los datos universitarios, ")
	b.WriteString("incluyendo estadísticas descriptivas y visualizaciones que exploran ")
	b.WriteString("las relaciones entre variables clave como el GPA, los créditos ")
	b.WriteString("aprobados, el programa académico y el estado de becas.\n\n")

	b.WriteString("## Análisis de Visualizaciones\n\n")
	for _, s := range sections {
		rel, err := filepath.Rel(outputDir, s.ImagePath)
		if err != nil {
			rel = filepath.Base(s.ImagePath)
		}
		fmt.Fprintf(&b, "### %s\n\n", s.Title)
		fmt.Fprintf(&b, "![%s](%s)\n\n", s.Title, filepath.ToSlash(rel))
		fmt.Fprintf(&b, "%s\n\n", s.Text)
	}

	b.WriteString("## Conclusiones\n\n")
	b.WriteString("- Los datos muestran patrones interesantes en términos de rendimiento académico y su relación con otras variables.\n")
	b.WriteString("- Se observa una clara distribución de estudiantes entre diferentes programas académicos.\n")
	b.WriteString("- El estatus de beca parece tener una relación con el rendimiento académico de los estudiantes.\n")
	b.WriteString("- Se recomiendan análisis adicionales para explorar las causas de las diferencias observadas en el rendimiento académico entre programas.\n")

	reportPath := filepath.Join(outputDir, ReportFilename)
	if err := os.WriteFile(reportPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	g.logger.Info("reporte generado",
		slog.String("path", reportPath),
		slog.Int("sections", len(sections)))
	return nil
}
