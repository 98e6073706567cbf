package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unistats/internal/dataset"
)

// sampleTable returns six students across three programs with known GPA
// means: Computer Science 3.85, Mathematics 3.45, Biology 3.435.
func sampleTable() *dataset.Table {
	type row struct {
		id          string
		program     string
		gender      string
		standing    string
		status      string
		semester    int
		approved    int
		gpa         float64
		scholarship bool
		load        int
		books       int
	}
	rows := []row{
		{"S001", "Biology", "Female", "Average", "Active", 5, 85, 3.07, true, 5, 3},
		{"S002", "Biology", "Male", "Good", "Active", 3, 52, 3.8, false, 6, 1},
		{"S003", "Computer Science", "Female", "Excellent", "Active", 8, 147, 4.2, true, 4, 7},
		{"S004", "Computer Science", "Male", "Good", "Graduated", 2, 30, 3.5, false, 6, 0},
		{"S005", "Mathematics", "Female", "Average", "Inactive", 4, 68, 2.9, false, 3, 2},
		{"S006", "Mathematics", "Male", "Excellent", "Active", 6, 110, 4.0, true, 5, 5},
	}

	t := &dataset.Table{Records: make([]dataset.StudentRecord, len(rows))}
	for i, r := range rows {
		t.Records[i] = dataset.StudentRecord{
			StudentID:            r.id,
			Program:              r.program,
			Gender:               r.gender,
			AcademicStanding:     r.standing,
			StudentStatus:        r.status,
			CurrentSemester:      r.semester,
			CreditsApproved:      r.approved,
			CreditsRemaining:     160 - r.approved,
			GPA:                  r.gpa,
			Scholarship:          r.scholarship,
			CourseLoad:           r.load,
			LibraryBooksBorrowed: r.books,
		}
	}
	return t
}

func TestDescribe(t *testing.T) {
	table := sampleTable()

	stats := Describe(table, []dataset.Column{dataset.ColGPA})
	require.False(t, stats.Empty())
	require.Equal(t, []dataset.Column{dataset.ColGPA}, stats.Columns)

	count, ok := stats.Row("count")
	require.True(t, ok)
	assert.InDelta(t, 6, count[0], 1e-9)

	mean, ok := stats.Row("mean")
	require.True(t, ok)
	assert.InDelta(t, (3.07+3.8+4.2+3.5+2.9+4.0)/6, mean[0], 1e-9)

	min, ok := stats.Row("min")
	require.True(t, ok)
	assert.InDelta(t, 2.9, min[0], 1e-9)

	max, ok := stats.Row("max")
	require.True(t, ok)
	assert.InDelta(t, 4.2, max[0], 1e-9)

	// Sorted GPAs: 2.9 3.07 3.5 3.8 4.0 4.2, so the median interpolates
	// between the third and fourth values.
	median, ok := stats.Row("median")
	require.True(t, ok)
	assert.InDelta(t, 3.65, median[0], 1e-9)

	fifty, ok := stats.Row("50%")
	require.True(t, ok)
	assert.InDelta(t, median[0], fifty[0], 1e-9)

	t.Run("nil columns select the base numeric set", func(t *testing.T) {
		stats := Describe(table, nil)
		assert.Equal(t, dataset.BaseNumericColumns, stats.Columns)
	})

	t.Run("unknown columns are skipped", func(t *testing.T) {
		stats := Describe(table, []dataset.Column{"no_such_column"})
		assert.True(t, stats.Empty())
	})

	t.Run("zero rows yield count 0 and NaN statistics", func(t *testing.T) {
		stats := Describe(&dataset.Table{}, []dataset.Column{dataset.ColGPA})
		require.False(t, stats.Empty())

		count, ok := stats.Row("count")
		require.True(t, ok)
		assert.Zero(t, count[0])

		for _, name := range []string{"mean", "std", "min", "25%", "50%", "75%", "max", "median"} {
			values, ok := stats.Row(name)
			require.True(t, ok)
			assert.True(t, math.IsNaN(values[0]), "row %s", name)
		}
	})
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"two-point median interpolates", []float64{3.5, 4.2}, 0.5, 3.85},
		{"single value", []float64{2.0}, 0.75, 2.0},
		{"exact order statistic", []float64{1, 2, 3, 4, 5}, 0.5, 3},
		{"first quartile of four", []float64{1, 2, 3, 4}, 0.25, 1.75},
		{"extremes", []float64{1, 2, 3}, 1.0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantile(tt.sorted, tt.p), 1e-9)
		})
	}
}

func TestValueCounts(t *testing.T) {
	table := sampleTable()

	counts, err := ValueCounts(table, dataset.ColProgram)
	require.NoError(t, err)
	require.Len(t, counts, 3)

	// Equal counts order alphabetically.
	assert.Equal(t, "Biology", counts[0].Value)
	assert.Equal(t, "Computer Science", counts[1].Value)
	assert.Equal(t, "Mathematics", counts[2].Value)

	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.Equal(t, table.Len(), total)

	t.Run("unknown column", func(t *testing.T) {
		_, err := ValueCounts(table, "no_such_column")
		assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	})
}

func TestGPAByProgram(t *testing.T) {
	table := sampleTable()

	ranked := GPAByProgram(table)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Computer Science", ranked[0].Program)
	assert.InDelta(t, 3.85, ranked[0].Mean, 1e-9)
	assert.InDelta(t, 3.85, ranked[0].Median, 1e-9)
	assert.InDelta(t, 3.5, ranked[0].Min, 1e-9)
	assert.InDelta(t, 4.2, ranked[0].Max, 1e-9)
	assert.Equal(t, 2, ranked[0].Count)

	assert.Equal(t, "Mathematics", ranked[1].Program)
	assert.InDelta(t, 3.45, ranked[1].Mean, 1e-9)
	assert.Equal(t, "Biology", ranked[2].Program)
	assert.InDelta(t, 3.435, ranked[2].Mean, 1e-9)

	t.Run("row order does not change the result", func(t *testing.T) {
		shuffled := sampleTable()
		for i, j := 0, len(shuffled.Records)-1; i < j; i, j = i+1, j-1 {
			shuffled.Records[i], shuffled.Records[j] = shuffled.Records[j], shuffled.Records[i]
		}
		assert.Equal(t, ranked, GPAByProgram(shuffled))
	})
}

func TestTopProgramsByGPA(t *testing.T) {
	table := sampleTable()

	top := TopProgramsByGPA(table, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Computer Science", top[0].Program)
	assert.Equal(t, "Mathematics", top[1].Program)
	assert.InDelta(t, 3.85, top[0].Mean, 1e-9)

	t.Run("non-positive n selects the default", func(t *testing.T) {
		assert.Len(t, TopProgramsByGPA(table, 0), 3)
	})
}

func TestScholarshipDistribution(t *testing.T) {
	table := sampleTable()

	t.Run("by gender", func(t *testing.T) {
		groups, err := ScholarshipDistribution(table, dataset.ColGender)
		require.NoError(t, err)
		require.Len(t, groups, 2)

		// Females: 2 of 3 hold scholarships; males: 1 of 3.
		assert.Equal(t, "Female", groups[0].Group)
		assert.Equal(t, 3, groups[0].Total)
		assert.Equal(t, 2, groups[0].WithScholarship)
		assert.InDelta(t, 100.0*2/3, groups[0].Percent, 1e-9)

		assert.Equal(t, "Male", groups[1].Group)
		assert.InDelta(t, 100.0/3, groups[1].Percent, 1e-9)
	})

	t.Run("empty column defaults to program", func(t *testing.T) {
		groups, err := ScholarshipDistribution(table, "")
		require.NoError(t, err)
		require.Len(t, groups, 3)
		for _, g := range groups {
			assert.Equal(t, 2, g.Total)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := ScholarshipDistribution(table, "no_such_column")
		assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	})
}

func TestCreditsBySemester(t *testing.T) {
	table := sampleTable()

	credits := CreditsBySemester(table)
	require.Len(t, credits, 6)

	// Ascending semester order.
	for i := 1; i < len(credits); i++ {
		assert.Less(t, credits[i-1].Semester, credits[i].Semester)
	}

	bySemester := make(map[int]SemesterCredits, len(credits))
	for _, c := range credits {
		bySemester[c.Semester] = c
	}

	five := bySemester[5]
	assert.Equal(t, 1, five.Count)
	assert.InDelta(t, 85, five.Mean, 1e-9)
	assert.InDelta(t, 85, five.Median, 1e-9)

	eight := bySemester[8]
	assert.Equal(t, 1, eight.Count)
	assert.InDelta(t, 147, eight.Mean, 1e-9)
}

func TestStatusByStanding(t *testing.T) {
	table := sampleTable()

	crossTab := StatusByStanding(table)
	assert.Equal(t, []string{"Average", "Excellent", "Good"}, crossTab.Standings)
	assert.Equal(t, []string{"Active", "Graduated", "Inactive"}, crossTab.Statuses)

	for i, row := range crossTab.Percent {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 100, sum, 1e-9, "row %d", i)
	}

	// Average standing splits evenly between Active and Inactive.
	assert.InDelta(t, 50, crossTab.Percent[0][0], 1e-9)
	assert.InDelta(t, 50, crossTab.Percent[0][2], 1e-9)
	assert.Equal(t, []int{2, 2, 2}, crossTab.Totals)
}

func TestCorrelationMatrix(t *testing.T) {
	table := sampleTable()

	corr := CorrelationMatrix(table, nil)
	require.False(t, corr.Empty())
	require.Equal(t, dataset.BaseNumericColumns, corr.Columns)

	n := len(corr.Columns)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1, corr.Values[i][i], 1e-9)
		for j := 0; j < n; j++ {
			assert.InDelta(t, corr.Values[i][j], corr.Values[j][i], 1e-9)
			assert.LessOrEqual(t, corr.Values[i][j], 1.0+1e-9)
			assert.GreaterOrEqual(t, corr.Values[i][j], -1.0-1e-9)
		}
	}

	// credits_approved is 160-credits_remaining in the sample, so the pair
	// is perfectly anti-correlated.
	r, ok := corr.At(dataset.ColCreditsApproved, dataset.ColCreditsRemaining)
	require.True(t, ok)
	assert.InDelta(t, -1, r, 1e-9)

	t.Run("unknown pair", func(t *testing.T) {
		_, ok := corr.At(dataset.ColGPA, "no_such_column")
		assert.False(t, ok)
	})
}
