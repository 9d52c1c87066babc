package catalog

// The books section is a secondary catalog keyed by plain semester/subject
// labels rather than stored rows.

var bookSemesters = []string{
	"SEM-1", "SEM-2", "SEM-3", "SEM-4", "SEM-5", "SEM-6", "SEM-7", "SEM-8",
}

// Subject lists are only curated for the first two semesters so far.
var bookSubjects = map[string][]string{
	"SEM-1": firstYearSubjects,
	"SEM-2": firstYearSubjects,
}

var firstYearSubjects = []string{
	"BME", "BEE", "BASIC-CIVIL", "BE", "BIOLOGY", "CHEMISTRY", "DT", "EGD",
	"ENGLISH-COMMU", "IPDC", "MATHS-1", "ORGANIS-BEHAVIOUR", "PHYSICS", "PPS", "UHV",
}

// BookSemesters returns the fixed semester labels of the books catalog,
// in enumeration order.
func BookSemesters() []string {
	out := make([]string, len(bookSemesters))
	copy(out, bookSemesters)
	return out
}

// BookSubjects returns the subject labels for a book semester. The slice is
// empty (not nil-as-error) for semesters without a curated list yet; an
// unknown semester label is NotFound.
func BookSubjects(semester string) ([]string, error) {
	if !IsBookSemester(semester) {
		return nil, ErrNotFound
	}
	subjects := bookSubjects[semester]
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out, nil
}

func IsBookSemester(semester string) bool {
	for _, s := range bookSemesters {
		if s == semester {
			return true
		}
	}
	return false
}
