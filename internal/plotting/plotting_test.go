package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unistats/internal/analysis"
	"unistats/internal/dataset"
)

func chartTable() *dataset.Table {
	programs := []string{"Biology", "Computer Science", "Mathematics"}
	standings := []string{"Average", "Good", "Excellent"}

	t := &dataset.Table{}
	for i := 0; i < 30; i++ {
		t.Records = append(t.Records, dataset.StudentRecord{
			StudentID:            "S" + string(rune('A'+i%26)),
			Program:              programs[i%len(programs)],
			AcademicStanding:     standings[i%len(standings)],
			Gender:               []string{"Female", "Male"}[i%2],
			CurrentSemester:      1 + i%8,
			CreditsApproved:      20 + i*4,
			CreditsRemaining:     140 - i*4,
			GPA:                  2.0 + float64(i%10)*0.3,
			Scholarship:          i%3 == 0,
			CourseLoad:           3 + i%4,
			LibraryBooksBorrowed: i % 7,
		})
	}
	return t
}

func assertChart(t *testing.T, summary string, err error, outPath string) {
	t.Helper()
	require.NoError(t, err)
	assert.NotEmpty(t, summary)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCharts(t *testing.T) {
	table := chartTable()
	dir := t.TempDir()

	t.Run("gpa distribution", func(t *testing.T) {
		out := filepath.Join(dir, "gpa_distribution.png")
		summary, err := GPADistribution(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("students per program", func(t *testing.T) {
		out := filepath.Join(dir, "students_per_program.png")
		summary, err := StudentsPerProgram(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("academic standing", func(t *testing.T) {
		out := filepath.Join(dir, "academic_standing.png")
		summary, err := AcademicStanding(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("scholarship status", func(t *testing.T) {
		out := filepath.Join(dir, "scholarship_status.png")
		summary, err := ScholarshipStatus(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("gpa vs credits", func(t *testing.T) {
		out := filepath.Join(dir, "gpa_vs_credits.png")
		summary, err := GPAVsCredits(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("gpa boxplot by program", func(t *testing.T) {
		out := filepath.Join(dir, "gpa_boxplot_by_program.png")
		summary, err := GPABoxplotByProgram(table, out)
		assertChart(t, summary, err, out)
	})

	t.Run("correlation heatmap", func(t *testing.T) {
		corr := analysis.CorrelationMatrix(table, nil)
		out := filepath.Join(dir, "correlation_heatmap.png")
		summary, err := CorrelationHeatmap(corr, out)
		assertChart(t, summary, err, out)
	})

	t.Run("creates missing output directory", func(t *testing.T) {
		out := filepath.Join(dir, "nested", "charts", "gpa_distribution.png")
		summary, err := GPADistribution(table, out)
		assertChart(t, summary, err, out)
	})
}
