package dataset

// PerformanceCategory is the ordinal GPA bucket derived by the cleaner.
// The zero value is PerformanceVeryLow; values compare in ascending order
// of academic performance.
type PerformanceCategory int

const (
	PerformanceVeryLow PerformanceCategory = iota
	PerformanceLow
	PerformanceMedium
	PerformanceHigh
	PerformanceExcellent
)

// String returns the Spanish label used in charts and reports.
func (p PerformanceCategory) String() string {
	switch p {
	case PerformanceVeryLow:
		return "Muy bajo"
	case PerformanceLow:
		return "Bajo"
	case PerformanceMedium:
		return "Medio"
	case PerformanceHigh:
		return "Alto"
	case PerformanceExcellent:
		return "Excelente"
	default:
		return "unknown"
	}
}

// PerformanceFromGPA maps a clamped GPA to its bucket. It is total over
// [0, 5]: [0,2) Muy bajo, [2,3) Bajo, [3,3.5) Medio, [3.5,4) Alto,
// [4,5] Excelente.
func PerformanceFromGPA(gpa float64) PerformanceCategory {
	switch {
	case gpa < 2.0:
		return PerformanceVeryLow
	case gpa < 3.0:
		return PerformanceLow
	case gpa < 3.5:
		return PerformanceMedium
	case gpa < 4.0:
		return PerformanceHigh
	default:
		return PerformanceExcellent
	}
}
