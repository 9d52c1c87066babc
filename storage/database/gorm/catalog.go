package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campushare/campushare/core/catalog"
)

type catalogRepository struct {
	db *gorm.DB
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *gorm.DB) *catalogRepository {
	return &catalogRepository{db: db}
}

// trapNoRowsErr maps gorm's "record not found" to catalog.ErrNotFound
func trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == gorm.ErrRecordNotFound {
		return catalog.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo catalogRepository) CreateCollege(ctx context.Context, col catalog.College) (catalog.College, error) {
	row := collegeRow{ID: uuid.New().String(), Name: col.Name, Code: col.Code, Description: col.Description, CreatedAt: col.CreatedAt}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.College{}, errors.Wrap(err, "inserting college")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) QueryAllColleges(ctx context.Context) ([]catalog.College, error) {
	var rows []collegeRow
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying colleges")
	}
	colleges := make([]catalog.College, 0, len(rows))
	for _, row := range rows {
		colleges = append(colleges, row.unmap())
	}
	return colleges, nil
}

func (repo catalogRepository) GetCollegeByID(ctx context.Context, id string) (catalog.College, error) {
	var row collegeRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return catalog.College{}, trapNoRowsErr(err, "getting college")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) CreateDepartment(ctx context.Context, dep catalog.Department) (catalog.Department, error) {
	row := departmentRow{ID: uuid.New().String(), CollegeID: dep.CollegeID, Name: dep.Name, Description: dep.Description, CreatedAt: dep.CreatedAt}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Department{}, errors.Wrap(err, "inserting department")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) QueryDepartmentsByCollegeID(ctx context.Context, collegeID string) ([]catalog.Department, error) {
	var rows []departmentRow
	if err := repo.db.WithContext(ctx).Where("college_id = ?", collegeID).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying departments")
	}
	deps := make([]catalog.Department, 0, len(rows))
	for _, row := range rows {
		deps = append(deps, row.unmap())
	}
	return deps, nil
}

func (repo catalogRepository) GetDepartmentByID(ctx context.Context, id string) (catalog.Department, error) {
	var row departmentRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return catalog.Department{}, trapNoRowsErr(err, "getting department")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) CreateSemester(ctx context.Context, sem catalog.Semester) (catalog.Semester, error) {
	row := semesterRow{ID: uuid.New().String(), DepartmentID: sem.DepartmentID, Name: sem.Name, Description: sem.Description, CreatedAt: sem.CreatedAt}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Semester{}, errors.Wrap(err, "inserting semester")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) QuerySemestersByDepartmentID(ctx context.Context, departmentID string) ([]catalog.Semester, error) {
	var rows []semesterRow
	if err := repo.db.WithContext(ctx).Where("department_id = ?", departmentID).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying semesters")
	}
	sems := make([]catalog.Semester, 0, len(rows))
	for _, row := range rows {
		sems = append(sems, row.unmap())
	}
	return sems, nil
}

func (repo catalogRepository) GetSemesterByID(ctx context.Context, id string) (catalog.Semester, error) {
	var row semesterRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return catalog.Semester{}, trapNoRowsErr(err, "getting semester")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) CreateSubject(ctx context.Context, sub catalog.Subject) (catalog.Subject, error) {
	row := subjectRow{ID: uuid.New().String(), SemesterID: sub.SemesterID, Name: sub.Name, Description: sub.Description, CreatedAt: sub.CreatedAt}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return catalog.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return row.unmap(), nil
}

func (repo catalogRepository) QuerySubjectsBySemesterID(ctx context.Context, semesterID string) ([]catalog.Subject, error) {
	var rows []subjectRow
	if err := repo.db.WithContext(ctx).Where("semester_id = ?", semesterID).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}
	subs := make([]catalog.Subject, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.unmap())
	}
	return subs, nil
}

func (repo catalogRepository) GetSubjectByID(ctx context.Context, id string) (catalog.Subject, error) {
	var row subjectRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return catalog.Subject{}, trapNoRowsErr(err, "getting subject")
	}
	return row.unmap(), nil
}
