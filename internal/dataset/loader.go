package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing the two date columns.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02-01-2006",
}

// Load reads the university dataset from a comma-delimited, double-quoted
// CSV file. The header must contain every schema column; extra columns are
// rejected so a malformed export fails at load time instead of surfacing as
// odd aggregates later. Empty cells in the designated numeric columns are
// flagged missing for the cleaner to impute.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(schemaColumns)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	index, err := parseHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}

	table := &Table{Records: make([]StudentRecord, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		rec, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("dataset %s row %d: %w", path, i+2, err)
		}
		table.Records = append(table.Records, rec)
	}

	slog.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(schemaColumns)))

	return table, nil
}

// parseHeader maps each schema column to its position in the file.
func parseHeader(header []string) (map[Column]int, error) {
	index := make(map[Column]int, len(header))
	for i, name := range header {
		index[Column(strings.TrimSpace(name))] = i
	}
	for _, col := range schemaColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("header is missing column %q", string(col))
		}
	}
	if len(index) != len(schemaColumns) {
		return nil, fmt.Errorf("header has %d columns, want %d", len(index), len(schemaColumns))
	}
	return index, nil
}

func parseRow(row []string, index map[Column]int) (StudentRecord, error) {
	cell := func(c Column) string {
		return strings.TrimSpace(row[index[c]])
	}

	rec := StudentRecord{
		StudentID:            cell(ColStudentID),
		FirstName:            cell(ColFirstName),
		LastName:             cell(ColLastName),
		TypeIDNumber:         cell(ColTypeIDNumber),
		IdentificationNumber: cell(ColIdentificationNumber),
		Email:                cell(ColEmail),
		Address:              cell(ColAddress),
		Gender:               cell(ColGender),
		Nationality:          cell(ColNationality),
		CountryCode:          cell(ColCountryCode),
		PhoneNumber:          cell(ColPhoneNumber),
		Program:              cell(ColProgram),
		StateProgram:         cell(ColStateProgram),
		StudentStatus:        cell(ColStudentStatus),
		AdvisorID:            cell(ColAdvisorID),
		AdvisorName:          cell(ColAdvisorName),
		PaymentStatus:        cell(ColPaymentStatus),
		AcademicStanding:     cell(ColAcademicStanding),
		MaritalStatus:        cell(ColMaritalStatus),
	}

	intCols := []Column{
		ColCurrentSemester, ColCreditsApproved, ColCreditsRemaining,
		ColCourseLoad, ColLibraryBooksBorrowed,
	}
	for _, c := range intCols {
		raw := cell(c)
		if raw == "" {
			rec.MarkMissing(c)
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("column %q: %w", string(c), err)
		}
		rec.SetNumeric(c, float64(v))
	}

	if raw := cell(ColGPA); raw == "" {
		rec.MarkMissing(ColGPA)
	} else {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("column %q: %w", string(ColGPA), err)
		}
		rec.GPA = v
	}

	if raw := cell(ColScholarship); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return rec, fmt.Errorf("column %q: %w", string(ColScholarship), err)
		}
		rec.Scholarship = v
	}

	var err error
	if rec.DateOfBirth, err = parseDate(cell(ColDateOfBirth)); err != nil {
		return rec, fmt.Errorf("column %q: %w", string(ColDateOfBirth), err)
	}
	if rec.EnrollmentDate, err = parseDate(cell(ColEnrollmentDate)); err != nil {
		return rec, fmt.Errorf("column %q: %w", string(ColEnrollmentDate), err)
	}

	return rec, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
