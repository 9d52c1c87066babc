package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/campushare/campushare/core/catalog"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
)

func setup(t *testing.T) (*catalog.Service, catalog.Repository) {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	repo := dummydb.NewCatalogRepository(db)
	return catalog.NewService(repo), repo
}

func seedHierarchy(t *testing.T, repo catalog.Repository) (catalog.College, catalog.Department, catalog.Semester, catalog.Subject) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	col, err := repo.CreateCollege(ctx, catalog.College{Name: "Engineering", Code: "ENG", CreatedAt: now})
	if err != nil {
		t.Fatalf("CreateCollege() failed: %v", err)
	}
	dep, err := repo.CreateDepartment(ctx, catalog.Department{CollegeID: col.ID, Name: "Computer Science", CreatedAt: now})
	if err != nil {
		t.Fatalf("CreateDepartment() failed: %v", err)
	}
	sem, err := repo.CreateSemester(ctx, catalog.Semester{DepartmentID: dep.ID, Name: "Semester 1", CreatedAt: now})
	if err != nil {
		t.Fatalf("CreateSemester() failed: %v", err)
	}
	sub, err := repo.CreateSubject(ctx, catalog.Subject{SemesterID: sem.ID, Name: "Programming 101", CreatedAt: now})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return col, dep, sem, sub
}

func TestService_ListDepartments(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	col, dep, _, _ := seedHierarchy(t, repo)

	// a second college with its own department must not leak across
	col2, err := repo.CreateCollege(ctx, catalog.College{Name: "Science", Code: "SCI"})
	assert.NoError(t, err)
	_, err = repo.CreateDepartment(ctx, catalog.Department{CollegeID: col2.ID, Name: "Physics"})
	assert.NoError(t, err)

	deps, err := svc.ListDepartments(ctx, col.ID)
	assert.NoError(t, err)
	if assert.Len(t, deps, 1) {
		assert.Equal(t, dep.ID, deps[0].ID)
	}

	// unknown parent
	_, err = svc.ListDepartments(ctx, "nope")
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))
}

func TestService_ListSemesters(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	_, dep, sem, _ := seedHierarchy(t, repo)

	sems, err := svc.ListSemesters(ctx, dep.ID)
	assert.NoError(t, err)
	if assert.Len(t, sems, 1) {
		assert.Equal(t, sem.ID, sems[0].ID)
	}

	_, err = svc.ListSemesters(ctx, "nope")
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))
}

func TestService_ListSubjects(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	_, _, sem, sub := seedHierarchy(t, repo)

	subs, err := svc.ListSubjects(ctx, sem.ID)
	assert.NoError(t, err)
	if assert.Len(t, subs, 1) {
		assert.Equal(t, sub.ID, subs[0].ID)
	}

	_, err = svc.ListSubjects(ctx, "nope")
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))
}

func TestService_childlessParentIsEmptyNotError(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	col, err := repo.CreateCollege(ctx, catalog.College{Name: "Arts"})
	assert.NoError(t, err)

	deps, err := svc.ListDepartments(ctx, col.ID)
	assert.NoError(t, err)
	assert.Empty(t, deps)
}

func TestService_ListColleges(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	_, err := repo.CreateCollege(ctx, catalog.College{Name: "Science"})
	assert.NoError(t, err)
	_, err = repo.CreateCollege(ctx, catalog.College{Name: "Arts"})
	assert.NoError(t, err)

	colleges, err := svc.ListColleges(ctx)
	assert.NoError(t, err)
	if assert.Len(t, colleges, 2) {
		// ordered by name
		assert.Equal(t, "Arts", colleges[0].Name)
		assert.Equal(t, "Science", colleges[1].Name)
	}
}
