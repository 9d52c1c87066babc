package catalog

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("catalog entry not found")

type (
	Repository interface {
		CreateCollege(ctx context.Context, col College) (College, error)
		QueryAllColleges(ctx context.Context) ([]College, error)
		GetCollegeByID(ctx context.Context, id string) (College, error)

		CreateDepartment(ctx context.Context, dep Department) (Department, error)
		QueryDepartmentsByCollegeID(ctx context.Context, collegeID string) ([]Department, error)
		GetDepartmentByID(ctx context.Context, id string) (Department, error)

		CreateSemester(ctx context.Context, sem Semester) (Semester, error)
		QuerySemestersByDepartmentID(ctx context.Context, departmentID string) ([]Semester, error)
		GetSemesterByID(ctx context.Context, id string) (Semester, error)

		CreateSubject(ctx context.Context, sub Subject) (Subject, error)
		QuerySubjectsBySemesterID(ctx context.Context, semesterID string) ([]Subject, error)
		GetSubjectByID(ctx context.Context, id string) (Subject, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// All catalog reads are public; no identity is taken.

func (svc *Service) ListColleges(ctx context.Context) ([]College, error) {
	return svc.repo.QueryAllColleges(ctx)
}

func (svc *Service) GetCollege(ctx context.Context, id string) (College, error) {
	return svc.repo.GetCollegeByID(ctx, id)
}

// ListDepartments returns a college's departments ordered by name. The
// parent must exist; a childless college yields an empty slice.
func (svc *Service) ListDepartments(ctx context.Context, collegeID string) ([]Department, error) {
	if _, err := svc.repo.GetCollegeByID(ctx, collegeID); err != nil {
		return nil, errors.Wrap(err, "resolving college")
	}
	return svc.repo.QueryDepartmentsByCollegeID(ctx, collegeID)
}

func (svc *Service) GetDepartment(ctx context.Context, id string) (Department, error) {
	return svc.repo.GetDepartmentByID(ctx, id)
}

func (svc *Service) ListSemesters(ctx context.Context, departmentID string) ([]Semester, error) {
	if _, err := svc.repo.GetDepartmentByID(ctx, departmentID); err != nil {
		return nil, errors.Wrap(err, "resolving department")
	}
	return svc.repo.QuerySemestersByDepartmentID(ctx, departmentID)
}

func (svc *Service) GetSemester(ctx context.Context, id string) (Semester, error) {
	return svc.repo.GetSemesterByID(ctx, id)
}

func (svc *Service) ListSubjects(ctx context.Context, semesterID string) ([]Subject, error) {
	if _, err := svc.repo.GetSemesterByID(ctx, semesterID); err != nil {
		return nil, errors.Wrap(err, "resolving semester")
	}
	return svc.repo.QuerySubjectsBySemesterID(ctx, semesterID)
}

func (svc *Service) GetSubject(ctx context.Context, id string) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}
