package catalog

import "time"

// College is the root of the browse hierarchy. Rows are administrator-seeded
// and read-only to regular users.
type College struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

type Department struct {
	ID          string    `json:"id"`
	CollegeID   string    `json:"college_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}

type Semester struct {
	ID           string    `json:"id"`
	DepartmentID string    `json:"department_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

type Subject struct {
	ID          string    `json:"id"`
	SemesterID  string    `json:"semester_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"` // UTC
}
