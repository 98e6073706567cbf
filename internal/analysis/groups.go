package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"unistats/internal/dataset"
)

// DefaultTopPrograms is the truncation for TopProgramsByGPA when the caller
// does not supply one.
const DefaultTopPrograms = 5

// ProgramGPA holds GPA statistics for one academic program.
type ProgramGPA struct {
	Program string
	Mean    float64
	Median  float64
	Min     float64
	Max     float64
	Std     float64
	Count   int
}

// GPAByProgram groups rows by program and computes GPA statistics per
// group, ordered by descending mean GPA. Ties order by program name so the
// result is deterministic for identical input regardless of row order.
func GPAByProgram(t *dataset.Table) []ProgramGPA {
	groups := groupFloat(t, func(r *dataset.StudentRecord) (string, float64) {
		return r.Program, r.GPA
	})

	out := make([]ProgramGPA, 0, len(groups))
	for program, gpas := range groups {
		sorted := append([]float64(nil), gpas...)
		sort.Float64s(sorted)
		out = append(out, ProgramGPA{
			Program: program,
			Mean:    stat.Mean(gpas, nil),
			Median:  Quantile(sorted, 0.5),
			Min:     sorted[0],
			Max:     sorted[len(sorted)-1],
			Std:     stat.StdDev(gpas, nil),
			Count:   len(gpas),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean != out[j].Mean {
			return out[i].Mean > out[j].Mean
		}
		return out[i].Program < out[j].Program
	})
	return out
}

// TopProgramsByGPA returns the n programs with the highest mean GPA. Only
// Mean and Count are meaningful in the result. n <= 0 selects the default.
func TopProgramsByGPA(t *dataset.Table, n int) []ProgramGPA {
	if n <= 0 {
		n = DefaultTopPrograms
	}
	ranked := GPAByProgram(t)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]ProgramGPA, len(ranked))
	for i, p := range ranked {
		out[i] = ProgramGPA{Program: p.Program, Mean: p.Mean, Count: p.Count}
	}
	return out
}

// ScholarshipGroup holds the scholarship distribution for one value of the
// grouping column.
type ScholarshipGroup struct {
	Group           string
	Total           int
	WithScholarship int
	Percent         float64
}

// ScholarshipDistribution groups rows by an arbitrary categorical column
// (empty selects program) and computes per-group scholarship totals,
// ordered by descending percentage. An unknown grouping column returns
// dataset.ErrColumnNotFound.
func ScholarshipDistribution(t *dataset.Table, groupBy dataset.Column) ([]ScholarshipGroup, error) {
	if groupBy == "" {
		groupBy = dataset.ColProgram
	}
	keys, err := t.Strings(groupBy)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*ScholarshipGroup)
	for i, key := range keys {
		g, ok := totals[key]
		if !ok {
			g = &ScholarshipGroup{Group: key}
			totals[key] = g
		}
		g.Total++
		if t.Records[i].Scholarship {
			g.WithScholarship++
		}
	}

	out := make([]ScholarshipGroup, 0, len(totals))
	for _, g := range totals {
		g.Percent = float64(g.WithScholarship) / float64(g.Total) * 100
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percent != out[j].Percent {
			return out[i].Percent > out[j].Percent
		}
		return out[i].Group < out[j].Group
	})
	return out, nil
}

// SemesterCredits holds approved-credit statistics for one semester.
type SemesterCredits struct {
	Semester int
	Mean     float64
	Count    int
	Median   float64
	Max      float64
	Min      float64
}

// CreditsBySemester groups rows by current semester and computes statistics
// of approved credits per group, ordered by ascending semester.
func CreditsBySemester(t *dataset.Table) []SemesterCredits {
	groups := make(map[int][]float64)
	for i := range t.Records {
		rec := &t.Records[i]
		groups[rec.CurrentSemester] = append(groups[rec.CurrentSemester], float64(rec.CreditsApproved))
	}

	out := make([]SemesterCredits, 0, len(groups))
	for semester, credits := range groups {
		sorted := append([]float64(nil), credits...)
		sort.Float64s(sorted)
		out = append(out, SemesterCredits{
			Semester: semester,
			Mean:     stat.Mean(credits, nil),
			Count:    len(credits),
			Median:   Quantile(sorted, 0.5),
			Max:      sorted[len(sorted)-1],
			Min:      sorted[0],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Semester < out[j].Semester })
	return out
}

// CrossTab is a student_status by academic_standing contingency table
// normalized to row percentages. Percent[i][j] is the share of Standings[i]
// rows that carry Statuses[j]; each row sums to 100. Totals holds the raw
// row counts.
type CrossTab struct {
	Standings []string
	Statuses  []string
	Percent   [][]float64
	Totals    []int
}

// StatusByStanding cross-tabulates student status against academic
// standing. Standings and statuses are sorted alphabetically.
func StatusByStanding(t *dataset.Table) CrossTab {
	counts := make(map[string]map[string]int)
	for i := range t.Records {
		rec := &t.Records[i]
		if counts[rec.AcademicStanding] == nil {
			counts[rec.AcademicStanding] = make(map[string]int)
		}
		counts[rec.AcademicStanding][rec.StudentStatus]++
	}

	var out CrossTab
	statuses := make(map[string]bool)
	for standing, byStatus := range counts {
		out.Standings = append(out.Standings, standing)
		for status := range byStatus {
			statuses[status] = true
		}
	}
	sort.Strings(out.Standings)
	for status := range statuses {
		out.Statuses = append(out.Statuses, status)
	}
	sort.Strings(out.Statuses)

	out.Percent = make([][]float64, len(out.Standings))
	out.Totals = make([]int, len(out.Standings))
	for i, standing := range out.Standings {
		total := 0
		for _, n := range counts[standing] {
			total += n
		}
		out.Totals[i] = total
		out.Percent[i] = make([]float64, len(out.Statuses))
		for j, status := range out.Statuses {
			out.Percent[i][j] = float64(counts[standing][status]) / float64(total) * 100
		}
	}
	return out
}

func groupFloat(t *dataset.Table, key func(*dataset.StudentRecord) (string, float64)) map[string][]float64 {
	groups := make(map[string][]float64)
	for i := range t.Records {
		k, v := key(&t.Records[i])
		groups[k] = append(groups[k], v)
	}
	return groups
}
