package dummydb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/campushare/campushare/core/file"
)

type fileRepository struct {
	db *fileTables
}

var _ file.Repository = (*fileRepository)(nil) // interface compliance check

func NewFileRepository(db *DB) file.Repository {
	return &fileRepository{db: db.file}
}

func (repo *fileRepository) CreateFile(_ context.Context, f file.File) (file.File, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	f.ID = uuid.New().String()
	repo.db.files[f.ID] = &f
	return f, nil
}

func (repo *fileRepository) QueryFilesBySubjectID(_ context.Context, subjectID string) ([]file.File, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	files := make([]file.File, 0)
	for _, f := range repo.db.files {
		if f.SubjectID == subjectID {
			files = append(files, *f)
		}
	}
	sortNewestFirst(files)
	return files, nil
}

func (repo *fileRepository) GetFileByID(_ context.Context, id string) (file.File, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if f, ok := repo.db.files[id]; ok {
		return *f, nil
	}
	return file.File{}, file.ErrNotFound
}

func (repo *fileRepository) DeleteFile(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.files[id]; !ok {
		return file.ErrNotFound
	}
	delete(repo.db.files, id)
	return nil
}

func (repo *fileRepository) SearchFiles(_ context.Context, query string) ([]file.File, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	q := strings.ToLower(query)
	files := make([]file.File, 0)
	for _, f := range repo.db.files {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(strings.ToLower(f.OriginalName), q) {
			files = append(files, *f)
		}
	}
	sortNewestFirst(files)
	return files, nil
}

func (repo *fileRepository) CreateBookFile(_ context.Context, bf file.BookFile) (file.BookFile, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	bf.ID = uuid.New().String()
	repo.db.books[bf.ID] = &bf
	return bf, nil
}

func (repo *fileRepository) QueryBookFiles(_ context.Context, semester, subject string) ([]file.BookFile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	books := make([]file.BookFile, 0)
	for _, bf := range repo.db.books {
		if bf.Semester == semester && bf.Subject == subject {
			books = append(books, *bf)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].CreatedAt.After(books[j].CreatedAt) })
	return books, nil
}

func (repo *fileRepository) GetBookFileByID(_ context.Context, id string) (file.BookFile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if bf, ok := repo.db.books[id]; ok {
		return *bf, nil
	}
	return file.BookFile{}, file.ErrNotFound
}

func (repo *fileRepository) DeleteBookFile(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.books[id]; !ok {
		return file.ErrNotFound
	}
	delete(repo.db.books, id)
	return nil
}

func sortNewestFirst(files []file.File) {
	sort.Slice(files, func(i, j int) bool { return files[i].CreatedAt.After(files[j].CreatedAt) })
}
