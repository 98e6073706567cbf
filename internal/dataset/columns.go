package dataset

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when an operation references a column that is
// not part of the dataset schema, or that does not hold the value kind the
// operation expects. Callers must treat it as a programming or configuration
// error, never as an empty result.
var ErrColumnNotFound = errors.New("column not found")

// Column identifies a named column of the university dataset. The schema is
// fixed, so every valid column has a constant below.
type Column string

// CSV columns, in file order.
const (
	ColStudentID            Column = "student_id"
	ColFirstName            Column = "first_name"
	ColLastName             Column = "last_name"
	ColTypeIDNumber         Column = "type_id_number"
	ColIdentificationNumber Column = "identification_number"
	ColEmail                Column = "email"
	ColAddress              Column = "address"
	ColGender               Column = "gender"
	ColNationality          Column = "nationality"
	ColCountryCode          Column = "country_code"
	ColPhoneNumber          Column = "phone_number"
	ColProgram              Column = "program"
	ColStateProgram         Column = "state_program"
	ColCurrentSemester      Column = "current_semester"
	ColCreditsApproved      Column = "Number_of_credits_approved"
	ColCreditsRemaining     Column = "credits_remaining"
	ColGPA                  Column = "GPA"
	ColStudentStatus        Column = "student_status"
	ColAdvisorID            Column = "advisor_id"
	ColAdvisorName          Column = "advisor_name"
	ColScholarship          Column = "scholarship"
	ColPaymentStatus        Column = "payment_status"
	ColAcademicStanding     Column = "academic_standing"
	ColCourseLoad           Column = "course_load"
	ColMaritalStatus        Column = "marital_status"
	ColLibraryBooksBorrowed Column = "library_books_borrowed"
	ColDateOfBirth          Column = "date_of_birth"
	ColEnrollmentDate       Column = "enrollment_date"
)

// Columns derived by the cleaner. They are not present in the input file.
const (
	ColAge           Column = "age"
	ColYearsEnrolled Column = "years_enrolled"
	ColPerformance   Column = "performance_category"
)

// schemaColumns lists every column the input CSV must contain.
var schemaColumns = []Column{
	ColStudentID, ColFirstName, ColLastName, ColTypeIDNumber,
	ColIdentificationNumber, ColEmail, ColAddress, ColGender,
	ColNationality, ColCountryCode, ColPhoneNumber, ColProgram,
	ColStateProgram, ColCurrentSemester, ColCreditsApproved,
	ColCreditsRemaining, ColGPA, ColStudentStatus, ColAdvisorID,
	ColAdvisorName, ColScholarship, ColPaymentStatus, ColAcademicStanding,
	ColCourseLoad, ColMaritalStatus, ColLibraryBooksBorrowed,
	ColDateOfBirth, ColEnrollmentDate,
}

// BaseNumericColumns is the fixed set of numeric columns read from the file,
// in the order used for descriptive statistics.
var BaseNumericColumns = []Column{
	ColGPA, ColCreditsApproved, ColCreditsRemaining,
	ColCurrentSemester, ColCourseLoad, ColLibraryBooksBorrowed,
}

// ImputableNumericColumns are the numeric columns whose missing values the
// cleaner replaces with the column median.
var ImputableNumericColumns = []Column{
	ColCurrentSemester, ColCreditsApproved, ColCreditsRemaining,
	ColGPA, ColCourseLoad, ColLibraryBooksBorrowed,
}

// ImputableCategoricalColumns are the categorical columns whose missing
// values the cleaner replaces with "Unknown".
var ImputableCategoricalColumns = []Column{
	ColGender, ColNationality, ColProgram, ColStateProgram,
	ColStudentStatus, ColPaymentStatus, ColAcademicStanding,
}

// unknownColumnError wraps ErrColumnNotFound with the offending name so the
// message that reaches the operator identifies the bad key.
func unknownColumnError(c Column) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, string(c))
}
