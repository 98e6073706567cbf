// Package dataset defines the typed table model for the university
// enrollment data and the CSV loader that produces it.
//
// The schema is fixed: every column of the input file has a Column constant,
// the loader validates the header against that set, and unknown column keys
// fail with ErrColumnNotFound everywhere they are looked up. Rows are held
// as StudentRecord values inside a Table; pipeline stages exchange tables by
// ownership transfer (Clone) rather than aliasing.
//
// The three derived columns (age, years_enrolled, performance_category) are
// declared here but populated by the cleaning package.
package dataset
