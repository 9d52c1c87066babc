package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/campushare/campushare/core/catalog"
)

type catalogRepository struct {
	db *catalogTables
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) CreateCollege(_ context.Context, col catalog.College) (catalog.College, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	col.ID = uuid.New().String()
	repo.db.colleges[col.ID] = &col
	return col, nil
}

func (repo *catalogRepository) QueryAllColleges(_ context.Context) ([]catalog.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	colleges := make([]catalog.College, 0, len(repo.db.colleges))
	for _, col := range repo.db.colleges {
		colleges = append(colleges, *col)
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

func (repo *catalogRepository) GetCollegeByID(_ context.Context, id string) (catalog.College, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if col, ok := repo.db.colleges[id]; ok {
		return *col, nil
	}
	return catalog.College{}, catalog.ErrNotFound
}

func (repo *catalogRepository) CreateDepartment(_ context.Context, dep catalog.Department) (catalog.Department, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	dep.ID = uuid.New().String()
	repo.db.departments[dep.ID] = &dep
	return dep, nil
}

func (repo *catalogRepository) QueryDepartmentsByCollegeID(_ context.Context, collegeID string) ([]catalog.Department, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	deps := make([]catalog.Department, 0)
	for _, dep := range repo.db.departments {
		if dep.CollegeID == collegeID {
			deps = append(deps, *dep)
		}
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps, nil
}

func (repo *catalogRepository) GetDepartmentByID(_ context.Context, id string) (catalog.Department, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if dep, ok := repo.db.departments[id]; ok {
		return *dep, nil
	}
	return catalog.Department{}, catalog.ErrNotFound
}

func (repo *catalogRepository) CreateSemester(_ context.Context, sem catalog.Semester) (catalog.Semester, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sem.ID = uuid.New().String()
	repo.db.semesters[sem.ID] = &sem
	return sem, nil
}

func (repo *catalogRepository) QuerySemestersByDepartmentID(_ context.Context, departmentID string) ([]catalog.Semester, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sems := make([]catalog.Semester, 0)
	for _, sem := range repo.db.semesters {
		if sem.DepartmentID == departmentID {
			sems = append(sems, *sem)
		}
	}
	sort.Slice(sems, func(i, j int) bool { return sems[i].Name < sems[j].Name })
	return sems, nil
}

func (repo *catalogRepository) GetSemesterByID(_ context.Context, id string) (catalog.Semester, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sem, ok := repo.db.semesters[id]; ok {
		return *sem, nil
	}
	return catalog.Semester{}, catalog.ErrNotFound
}

func (repo *catalogRepository) CreateSubject(_ context.Context, sub catalog.Subject) (catalog.Subject, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	sub.ID = uuid.New().String()
	repo.db.subjects[sub.ID] = &sub
	return sub, nil
}

func (repo *catalogRepository) QuerySubjectsBySemesterID(_ context.Context, semesterID string) ([]catalog.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	subs := make([]catalog.Subject, 0)
	for _, sub := range repo.db.subjects {
		if sub.SemesterID == semesterID {
			subs = append(subs, *sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Name < subs[j].Name })
	return subs, nil
}

func (repo *catalogRepository) GetSubjectByID(_ context.Context, id string) (catalog.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sub, ok := repo.db.subjects[id]; ok {
		return *sub, nil
	}
	return catalog.Subject{}, catalog.ErrNotFound
}
