package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campushare/campushare/core/file"
)

type fileRepository struct {
	db *gorm.DB
}

var _ file.Repository = (*fileRepository)(nil) // interface compliance check

func NewFileRepository(db *gorm.DB) *fileRepository {
	return &fileRepository{db: db}
}

func (repo fileRepository) trapNoRowsErr(err error, msg string) error {
	if errors.Cause(err) == gorm.ErrRecordNotFound {
		return file.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo fileRepository) CreateFile(ctx context.Context, f file.File) (file.File, error) {
	f.ID = uuid.New().String()
	row := mapFile(f)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return file.File{}, errors.Wrap(err, "inserting file")
	}
	return row.unmap(), nil
}

func (repo fileRepository) QueryFilesBySubjectID(ctx context.Context, subjectID string) ([]file.File, error) {
	var rows []fileRow
	err := repo.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying files")
	}
	return unmapFiles(rows), nil
}

func (repo fileRepository) GetFileByID(ctx context.Context, id string) (file.File, error) {
	var row fileRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return file.File{}, repo.trapNoRowsErr(err, "getting file")
	}
	return row.unmap(), nil
}

func (repo fileRepository) DeleteFile(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&fileRow{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "deleting file")
	}
	if res.RowsAffected == 0 {
		return file.ErrNotFound
	}
	return nil
}

func (repo fileRepository) SearchFiles(ctx context.Context, query string) ([]file.File, error) {
	var rows []fileRow
	pattern := "%" + query + "%"
	err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR original_name ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "searching files")
	}
	return unmapFiles(rows), nil
}

func (repo fileRepository) CreateBookFile(ctx context.Context, bf file.BookFile) (file.BookFile, error) {
	bf.ID = uuid.New().String()
	row := mapBookFile(bf)
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return file.BookFile{}, errors.Wrap(err, "inserting book file")
	}
	return row.unmap(), nil
}

func (repo fileRepository) QueryBookFiles(ctx context.Context, semester, subject string) ([]file.BookFile, error) {
	var rows []bookFileRow
	err := repo.db.WithContext(ctx).
		Where("semester = ? AND subject = ?", semester, subject).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying book files")
	}
	books := make([]file.BookFile, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.unmap())
	}
	return books, nil
}

func (repo fileRepository) GetBookFileByID(ctx context.Context, id string) (file.BookFile, error) {
	var row bookFileRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return file.BookFile{}, repo.trapNoRowsErr(err, "getting book file")
	}
	return row.unmap(), nil
}

func (repo fileRepository) DeleteBookFile(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).Delete(&bookFileRow{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "deleting book file")
	}
	if res.RowsAffected == 0 {
		return file.ErrNotFound
	}
	return nil
}

func unmapFiles(rows []fileRow) []file.File {
	files := make([]file.File, 0, len(rows))
	for _, row := range rows {
		files = append(files, row.unmap())
	}
	return files
}
