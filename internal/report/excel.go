package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"unistats/internal/analysis"
)

// ExcelExporter writes the aggregate tables of one pipeline run into a
// single workbook, one sheet per aggregate.
type ExcelExporter struct {
	logger *slog.Logger
}

// NewExcelExporter creates a new workbook exporter.
func NewExcelExporter(logger *slog.Logger) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelExporter{logger: logger}
}

// Aggregates bundles the tables exported to the workbook.
type Aggregates struct {
	Stats        analysis.DescriptiveStats
	GPAByProgram []analysis.ProgramGPA
	Credits      []analysis.SemesterCredits
	Scholarships []analysis.ScholarshipGroup
}

// Export writes the workbook to filePath.
func (e *ExcelExporter) Export(agg Aggregates, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeStatsSheet(f, "Estadísticas", agg.Stats); err != nil {
		return err
	}
	if err := e.writeProgramSheet(f, "GPA por Programa", agg.GPAByProgram); err != nil {
		return err
	}
	if err := e.writeCreditsSheet(f, "Créditos por Semestre", agg.Credits); err != nil {
		return err
	}
	if err := e.writeScholarshipSheet(f, "Becas", agg.Scholarships); err != nil {
		return err
	}

	// The workbook starts with a default sheet; drop it once the real
	// sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("workbook exported", slog.String("path", filePath))
	return nil
}

func (e *ExcelExporter) writeStatsSheet(f *excelize.File, sheet string, stats analysis.DescriptiveStats) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	for j, col := range stats.Columns {
		cell, _ := excelize.CoordinatesToCellName(j+2, 1)
		f.SetCellValue(sheet, cell, string(col))
	}
	for i, row := range stats.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetCellValue(sheet, cell, row.Name)
		for j, v := range row.Values {
			cell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (e *ExcelExporter) writeProgramSheet(f *excelize.File, sheet string, rows []analysis.ProgramGPA) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	headers := []string{"programa", "promedio", "mediana", "mínimo", "máximo", "desviación_estándar", "estudiantes"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{row.Program, row.Mean, row.Median, row.Min, row.Max, row.Std, row.Count}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (e *ExcelExporter) writeCreditsSheet(f *excelize.File, sheet string, rows []analysis.SemesterCredits) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	headers := []string{"semestre", "promedio_creditos", "total_estudiantes", "mediana_creditos", "max_creditos", "min_creditos"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{row.Semester, row.Mean, row.Count, row.Median, row.Max, row.Min}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

func (e *ExcelExporter) writeScholarshipSheet(f *excelize.File, sheet string, rows []analysis.ScholarshipGroup) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}
	headers := []string{"grupo", "total_estudiantes", "estudiantes_con_beca", "porcentaje_con_beca"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []interface{}{row.Group, row.Total, row.WithScholarship, row.Percent}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}
