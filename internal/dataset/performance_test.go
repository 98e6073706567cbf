package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceFromGPA(t *testing.T) {
	tests := []struct {
		name     string
		gpa      float64
		expected PerformanceCategory
	}{
		{"zero GPA", 0.0, PerformanceVeryLow},
		{"just below first edge", 1.99, PerformanceVeryLow},
		{"first edge is inclusive of the next bucket", 2.0, PerformanceLow},
		{"mid low bucket", 2.5, PerformanceLow},
		{"second edge", 3.0, PerformanceMedium},
		{"just below third edge", 3.49, PerformanceMedium},
		{"third edge", 3.5, PerformanceHigh},
		{"fourth edge", 4.0, PerformanceExcellent},
		{"maximum GPA", 5.0, PerformanceExcellent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PerformanceFromGPA(tt.gpa))
		})
	}
}

func TestPerformanceCategoryString(t *testing.T) {
	tests := []struct {
		category PerformanceCategory
		label    string
	}{
		{PerformanceVeryLow, "Muy bajo"},
		{PerformanceLow, "Bajo"},
		{PerformanceMedium, "Medio"},
		{PerformanceHigh, "Alto"},
		{PerformanceExcellent, "Excelente"},
		{PerformanceCategory(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.category.String())
	}
}

func TestPerformanceCategoryOrdering(t *testing.T) {
	// The ordinal values must sort Muy bajo < Bajo < Medio < Alto < Excelente.
	assert.True(t, PerformanceVeryLow < PerformanceLow)
	assert.True(t, PerformanceLow < PerformanceMedium)
	assert.True(t, PerformanceMedium < PerformanceHigh)
	assert.True(t, PerformanceHigh < PerformanceExcellent)
}
