// Package cleaning prepares the raw university dataset for analysis.
//
// Clean consumes a loaded table and produces a new, independently owned one:
// missing numeric cells are imputed with the column median, missing
// categorical cells become "Unknown", the age / years_enrolled /
// performance_category columns are derived, and GPA and credits_remaining
// are clamped into range. Only those two fields are ever corrected silently.
//
// Validate reports every other data-quality condition (negative counters,
// implausible ages, future enrollment dates) as advisory messages without
// touching the data.
package cleaning
