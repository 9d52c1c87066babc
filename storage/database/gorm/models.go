// Package gormrepos implements the domain repositories on PostgreSQL via gorm.
package gormrepos

import (
	"time"

	"gorm.io/gorm"

	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
)

type collegeRow struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null;index"`
	Code        string
	Description string
	CreatedAt   time.Time
}

func (collegeRow) TableName() string { return "colleges" }

type departmentRow struct {
	ID          string `gorm:"primaryKey"`
	CollegeID   string `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	CreatedAt   time.Time
}

func (departmentRow) TableName() string { return "departments" }

type semesterRow struct {
	ID           string `gorm:"primaryKey"`
	DepartmentID string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Description  string
	CreatedAt    time.Time
}

func (semesterRow) TableName() string { return "semesters" }

type subjectRow struct {
	ID          string `gorm:"primaryKey"`
	SemesterID  string `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	CreatedAt   time.Time
}

func (subjectRow) TableName() string { return "subjects" }

type fileRow struct {
	ID           string `gorm:"primaryKey"`
	SubjectID    string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	OriginalName string `gorm:"not null"`
	FilePath     string `gorm:"not null"`
	FileSize     int64
	MimeType     string
	Description  string
	UploadedBy   string `gorm:"index"`
	CreatedAt    time.Time
}

func (fileRow) TableName() string { return "files" }

type bookFileRow struct {
	ID           string `gorm:"primaryKey"`
	Semester     string `gorm:"not null;index:idx_books_cell"`
	Subject      string `gorm:"not null;index:idx_books_cell"`
	Name         string `gorm:"not null"`
	OriginalName string
	FilePath     string
	FileSize     int64
	MimeType     string
	Description  string
	URL          string // legacy stored URL, older rows only
	CreatedAt    time.Time
}

func (bookFileRow) TableName() string { return "books_files" }

type favoriteRow struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"not null;uniqueIndex:uniq_favorite"`
	EntityType string `gorm:"not null;uniqueIndex:uniq_favorite"`
	EntityID   string `gorm:"not null;uniqueIndex:uniq_favorite"`
	CreatedAt  time.Time
}

func (favoriteRow) TableName() string { return "favorites" }

type fileReviewRow struct {
	ID         string `gorm:"primaryKey"`
	FileID     string `gorm:"not null;index"`
	UserID     string `gorm:"not null"`
	Rating     int    `gorm:"not null"`
	ReviewText string
	CreatedAt  time.Time
}

func (fileReviewRow) TableName() string { return "file_reviews" }

type fileReportRow struct {
	ID        string `gorm:"primaryKey"`
	FileID    string `gorm:"not null;index"`
	UserID    string // empty for anonymous reports
	Reason    string `gorm:"not null"`
	CreatedAt time.Time
}

func (fileReportRow) TableName() string { return "file_reports" }

type profileRow struct {
	ID        string `gorm:"primaryKey"` // auth user ID
	FullName  string
	Email     string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (profileRow) TableName() string { return "profiles" }

type adminRow struct {
	UserID    string `gorm:"primaryKey"`
	CreatedAt time.Time
}

func (adminRow) TableName() string { return "admins" }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&collegeRow{},
		&departmentRow{},
		&semesterRow{},
		&subjectRow{},
		&fileRow{},
		&bookFileRow{},
		&favoriteRow{},
		&fileReviewRow{},
		&fileReportRow{},
		&profileRow{},
		&adminRow{},
	)
}

// row <-> domain converters

func (r collegeRow) unmap() catalog.College {
	return catalog.College{ID: r.ID, Name: r.Name, Code: r.Code, Description: r.Description, CreatedAt: r.CreatedAt}
}

func (r departmentRow) unmap() catalog.Department {
	return catalog.Department{ID: r.ID, CollegeID: r.CollegeID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}

func (r semesterRow) unmap() catalog.Semester {
	return catalog.Semester{ID: r.ID, DepartmentID: r.DepartmentID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}

func (r subjectRow) unmap() catalog.Subject {
	return catalog.Subject{ID: r.ID, SemesterID: r.SemesterID, Name: r.Name, Description: r.Description, CreatedAt: r.CreatedAt}
}

func (r fileRow) unmap() file.File {
	return file.File{
		ID:           r.ID,
		SubjectID:    r.SubjectID,
		Name:         r.Name,
		OriginalName: r.OriginalName,
		Path:         r.FilePath,
		Size:         r.FileSize,
		MimeType:     r.MimeType,
		Description:  r.Description,
		UploadedBy:   r.UploadedBy,
		CreatedAt:    r.CreatedAt,
	}
}

func mapFile(f file.File) fileRow {
	return fileRow{
		ID:           f.ID,
		SubjectID:    f.SubjectID,
		Name:         f.Name,
		OriginalName: f.OriginalName,
		FilePath:     f.Path,
		FileSize:     f.Size,
		MimeType:     f.MimeType,
		Description:  f.Description,
		UploadedBy:   f.UploadedBy,
		CreatedAt:    f.CreatedAt,
	}
}

func (r bookFileRow) unmap() file.BookFile {
	return file.BookFile{
		ID:           r.ID,
		Semester:     r.Semester,
		Subject:      r.Subject,
		Name:         r.Name,
		OriginalName: r.OriginalName,
		Path:         r.FilePath,
		Size:         r.FileSize,
		MimeType:     r.MimeType,
		Description:  r.Description,
		LegacyURL:    r.URL,
		CreatedAt:    r.CreatedAt,
	}
}

func mapBookFile(bf file.BookFile) bookFileRow {
	return bookFileRow{
		ID:           bf.ID,
		Semester:     bf.Semester,
		Subject:      bf.Subject,
		Name:         bf.Name,
		OriginalName: bf.OriginalName,
		FilePath:     bf.Path,
		FileSize:     bf.Size,
		MimeType:     bf.MimeType,
		Description:  bf.Description,
		URL:          bf.LegacyURL,
		CreatedAt:    bf.CreatedAt,
	}
}

func (r favoriteRow) unmap() favorite.Favorite {
	return favorite.Favorite{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: favorite.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		CreatedAt:  r.CreatedAt,
	}
}

func (r fileReviewRow) unmap() review.FileReview {
	return review.FileReview{
		ID:        r.ID,
		FileID:    r.FileID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Text:      r.ReviewText,
		CreatedAt: r.CreatedAt,
	}
}

func (r fileReportRow) unmap() review.FileReport {
	return review.FileReport{
		ID:        r.ID,
		FileID:    r.FileID,
		UserID:    r.UserID,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}

func (r profileRow) unmap() profile.Profile {
	return profile.Profile{
		ID:        r.ID,
		FullName:  r.FullName,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
