package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = strings.Join([]string{
	"student_id", "first_name", "last_name", "type_id_number",
	"identification_number", "email", "address", "gender", "nationality",
	"country_code", "phone_number", "program", "state_program",
	"current_semester", "Number_of_credits_approved", "credits_remaining",
	"GPA", "student_status", "advisor_id", "advisor_name", "scholarship",
	"payment_status", "academic_standing", "course_load", "marital_status",
	"library_books_borrowed", "date_of_birth", "enrollment_date",
}, ",")

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "university_data.csv")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func sampleRow() string {
	return `S001,Ana,García,CC,12345,ana@uni.edu,"Calle 1 #2-3",Female,Colombian,CO,3001234567,Biology,Active,5,85,75,3.07,Active,A01,Dr. Pérez,true,Paid,Average,5,Single,3,2000-04-15,2020-01-20`
}

func TestLoad(t *testing.T) {
	t.Run("parses a valid file", func(t *testing.T) {
		path := writeCSV(t, testHeader, sampleRow())

		table, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 1, table.Len())

		rec := table.Records[0]
		assert.Equal(t, "S001", rec.StudentID)
		assert.Equal(t, "Biology", rec.Program)
		assert.Equal(t, 5, rec.CurrentSemester)
		assert.Equal(t, 85, rec.CreditsApproved)
		assert.Equal(t, 75, rec.CreditsRemaining)
		assert.InDelta(t, 3.07, rec.GPA, 1e-9)
		assert.True(t, rec.Scholarship)
		assert.Equal(t, "Average", rec.AcademicStanding)
		assert.Equal(t, time.Date(2000, 4, 15, 0, 0, 0, 0, time.UTC), rec.DateOfBirth)
		assert.Equal(t, time.Date(2020, 1, 20, 0, 0, 0, 0, time.UTC), rec.EnrollmentDate)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing header column", func(t *testing.T) {
		truncated := strings.Replace(testHeader, "GPA", "grade", 1)
		path := writeCSV(t, truncated, sampleRow())

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GPA")
	})

	t.Run("empty numeric cell is flagged missing", func(t *testing.T) {
		row := strings.Replace(sampleRow(), ",3.07,", ",,", 1)
		path := writeCSV(t, testHeader, row)

		table, err := Load(path)
		require.NoError(t, err)
		assert.True(t, table.Records[0].IsMissing(ColGPA))
	})

	t.Run("unparseable numeric cell fails with row context", func(t *testing.T) {
		row := strings.Replace(sampleRow(), ",3.07,", ",abc,", 1)
		path := writeCSV(t, testHeader, row)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
	})
}

func TestTableFloat(t *testing.T) {
	table := &Table{Records: []StudentRecord{{GPA: 3.2, CurrentSemester: 4}}}

	vals, err := table.Float(ColGPA)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.2}, vals)

	_, err = table.Float(Column("no_such_column"))
	assert.ErrorIs(t, err, ErrColumnNotFound)

	// Derived columns fail the same way on categorical lookups.
	_, err = table.Strings(Column("no_such_column"))
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestTableClone(t *testing.T) {
	table := &Table{Records: []StudentRecord{{GPA: 3.2, Program: "Biology"}}}
	table.Records[0].MarkMissing(ColCourseLoad)

	clone := table.Clone()
	clone.Records[0].GPA = 1.0
	clone.Records[0].ClearMissing(ColCourseLoad)

	assert.InDelta(t, 3.2, table.Records[0].GPA, 1e-9)
	assert.True(t, table.Records[0].IsMissing(ColCourseLoad))
}
