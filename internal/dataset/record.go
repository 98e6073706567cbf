package dataset

import (
	"time"
)

// StudentRecord is one row of the university dataset with concrete field
// types. The Age, YearsEnrolled and Performance fields are zero until the
// cleaner derives them.
type StudentRecord struct {
	StudentID            string
	FirstName            string
	LastName             string
	TypeIDNumber         string
	IdentificationNumber string
	Email                string
	Address              string
	Gender               string
	Nationality          string
	CountryCode          string
	PhoneNumber          string
	Program              string
	StateProgram         string
	CurrentSemester      int
	CreditsApproved      int
	CreditsRemaining     int
	GPA                  float64
	StudentStatus        string
	AdvisorID            string
	AdvisorName          string
	Scholarship          bool
	PaymentStatus        string
	AcademicStanding     string
	CourseLoad           int
	MaritalStatus        string
	LibraryBooksBorrowed int
	DateOfBirth          time.Time
	EnrollmentDate       time.Time

	// Derived by the cleaner.
	Age           int
	YearsEnrolled float64
	Performance   PerformanceCategory

	missing map[Column]bool
}

// MarkMissing flags a numeric cell that was empty in the input file so the
// cleaner can impute it.
func (r *StudentRecord) MarkMissing(c Column) {
	if r.missing == nil {
		r.missing = make(map[Column]bool)
	}
	r.missing[c] = true
}

// IsMissing reports whether the cell for c was empty in the input file.
func (r *StudentRecord) IsMissing(c Column) bool {
	return r.missing[c]
}

// ClearMissing removes the missing flag after imputation.
func (r *StudentRecord) ClearMissing(c Column) {
	delete(r.missing, c)
}

// Numeric returns the value of a numeric column as float64. The second
// return is false when c is not a numeric column of the record.
func (r *StudentRecord) Numeric(c Column) (float64, bool) {
	switch c {
	case ColCurrentSemester:
		return float64(r.CurrentSemester), true
	case ColCreditsApproved:
		return float64(r.CreditsApproved), true
	case ColCreditsRemaining:
		return float64(r.CreditsRemaining), true
	case ColGPA:
		return r.GPA, true
	case ColCourseLoad:
		return float64(r.CourseLoad), true
	case ColLibraryBooksBorrowed:
		return float64(r.LibraryBooksBorrowed), true
	case ColAge:
		return float64(r.Age), true
	case ColYearsEnrolled:
		return r.YearsEnrolled, true
	default:
		return 0, false
	}
}

// SetNumeric stores v into a numeric column. Integer columns truncate the
// fractional part, matching how the cleaner narrows imputed medians.
func (r *StudentRecord) SetNumeric(c Column, v float64) bool {
	switch c {
	case ColCurrentSemester:
		r.CurrentSemester = int(v)
	case ColCreditsApproved:
		r.CreditsApproved = int(v)
	case ColCreditsRemaining:
		r.CreditsRemaining = int(v)
	case ColGPA:
		r.GPA = v
	case ColCourseLoad:
		r.CourseLoad = int(v)
	case ColLibraryBooksBorrowed:
		r.LibraryBooksBorrowed = int(v)
	default:
		return false
	}
	return true
}

// Categorical returns the value of a categorical column. The second return
// is false when c is not categorical.
func (r *StudentRecord) Categorical(c Column) (string, bool) {
	switch c {
	case ColGender:
		return r.Gender, true
	case ColNationality:
		return r.Nationality, true
	case ColCountryCode:
		return r.CountryCode, true
	case ColProgram:
		return r.Program, true
	case ColStateProgram:
		return r.StateProgram, true
	case ColStudentStatus:
		return r.StudentStatus, true
	case ColPaymentStatus:
		return r.PaymentStatus, true
	case ColAcademicStanding:
		return r.AcademicStanding, true
	case ColMaritalStatus:
		return r.MaritalStatus, true
	case ColPerformance:
		return r.Performance.String(), true
	default:
		return "", false
	}
}

// SetCategorical stores v into a categorical column. The derived
// performance column is read-only through this path.
func (r *StudentRecord) SetCategorical(c Column, v string) bool {
	switch c {
	case ColGender:
		r.Gender = v
	case ColNationality:
		r.Nationality = v
	case ColCountryCode:
		r.CountryCode = v
	case ColProgram:
		r.Program = v
	case ColStateProgram:
		r.StateProgram = v
	case ColStudentStatus:
		r.StudentStatus = v
	case ColPaymentStatus:
		r.PaymentStatus = v
	case ColAcademicStanding:
		r.AcademicStanding = v
	case ColMaritalStatus:
		r.MaritalStatus = v
	default:
		return false
	}
	return true
}

// clone returns a deep copy, including the missing-cell flags.
func (r *StudentRecord) clone() StudentRecord {
	out := *r
	if r.missing != nil {
		out.missing = make(map[Column]bool, len(r.missing))
		for k, v := range r.missing {
			out.missing[k] = v
		}
	}
	return out
}
