// Package plotting renders the seven fixed charts of the analysis pipeline
// as PNG files and generates the Spanish textual summary that accompanies
// each one in the markdown report.
//
// Charts are drawn with gonum.org/v1/plot. Each function takes the cleaned
// table (or, for the heat map, a precomputed correlation matrix) and the
// output path, creates the output directory if needed, and returns the
// summary text.
package plotting
