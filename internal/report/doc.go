// Package report exports analysis artifacts: the descriptive-statistics
// CSV, an Excel workbook with the aggregate tables, and the optional
// markdown report that stitches together the chart images and their
// generated summaries.
package report
