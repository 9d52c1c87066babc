package file

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/catalog"
)

var (
	ErrNotFound = errors.New("file not found")

	errFileTooLarge = "file size must be less than 50MB"
)

type (
	Repository interface {
		CreateFile(ctx context.Context, f File) (File, error)
		QueryFilesBySubjectID(ctx context.Context, subjectID string) ([]File, error)
		GetFileByID(ctx context.Context, id string) (File, error)
		DeleteFile(ctx context.Context, id string) error
		// SearchFiles does a case-insensitive substring match on
		// File.Name or File.OriginalName.
		SearchFiles(ctx context.Context, query string) ([]File, error)

		CreateBookFile(ctx context.Context, bf BookFile) (BookFile, error)
		QueryBookFiles(ctx context.Context, semester, subject string) ([]BookFile, error)
		GetBookFileByID(ctx context.Context, id string) (BookFile, error)
		DeleteBookFile(ctx context.Context, id string) error
	}

	// NameResolver maps user IDs to display names; IDs without a named
	// profile are simply absent from the result.
	NameResolver interface {
		Names(ctx context.Context, userIDs []string) (map[string]string, error)
	}

	Service struct {
		repo       Repository
		store      core.ObjectStorage
		catalogSvc *catalog.Service
		names      NameResolver
		log        core.Logger
	}
)

func NewService(repo Repository, store core.ObjectStorage, catalogSvc *catalog.Service, names NameResolver, log core.Logger) *Service {
	return &Service{
		repo:       repo,
		store:      store,
		catalogSvc: catalogSvc,
		names:      names,
		log:        log,
	}
}

// List returns a subject's files, newest first, each with a resolved public
// URL and the uploader's display name. The subject must exist.
func (svc *Service) List(ctx context.Context, subjectID string) ([]File, error) {
	if _, err := svc.catalogSvc.GetSubject(ctx, subjectID); err != nil {
		return nil, errors.Wrap(err, "resolving subject")
	}

	files, err := svc.repo.QueryFilesBySubjectID(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "querying files")
	}
	return svc.resolve(ctx, files)
}

// Upload stores the content in blob storage, then inserts the registry row.
/// The two writes are not atomic: a row-insert failure after a successful
// put leaves an orphaned object behind, which is logged and accepted.
func (svc *Service) Upload(ctx context.Context, actor core.Identity, nf NewFile, content io.Reader) (File, error) {
	if err := core.Allow(actor, core.ActionUploadFile); err != nil {
		return File{}, err
	}
	if err := nf.Validate(); err != nil {
		return File{}, err
	}
	if _, err := svc.catalogSvc.GetSubject(ctx, nf.SubjectID); err != nil {
		return File{}, errors.Wrap(err, "resolving subject")
	}

	path := nf.SubjectID + "/" + storageName(nf.OriginalName)
	if err := svc.store.Put(ctx, path, content, nf.Size, nf.MimeType); err != nil {
		return File{}, errors.Wrap(err, "writing object")
	}

	f := File{
		SubjectID:    nf.SubjectID,
		Name:         displayName(nf.OriginalName),
		OriginalName: nf.OriginalName,
		Path:         path,
		Size:         nf.Size,
		MimeType:     nf.MimeType,
		Description:  nf.Description,
		UploadedBy:   actor.UserID,
		CreatedAt:    time.Now().UTC(),
	}
	f, err := svc.repo.CreateFile(ctx, f)
	if err != nil {
		// no rollback; the object is now orphaned
		svc.log.Error("file row insert failed, object orphaned", err, map[string]interface{}{"path": path})
		return File{}, errors.Wrap(err, "inserting file row")
	}
	f.PublicURL = svc.store.PublicURL(f.Path)
	return f, nil
}

// Delete removes the storage object first, then the registry row. If the
// object removal fails the row is kept so the pointer is not lost; if the
// row removal fails the dangling row is logged and accepted.
func (svc *Service) Delete(ctx context.Context, actor core.Identity, id string) error {
	if err := core.Allow(actor, core.ActionDeleteFile); err != nil {
		return err
	}

	f, err := svc.repo.GetFileByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "resolving file")
	}
	if err = svc.store.Delete(ctx, f.Path); err != nil {
		return errors.Wrap(err, "removing object")
	}
	if err = svc.repo.DeleteFile(ctx, id); err != nil {
		svc.log.Error("file row delete failed, row dangling", err, map[string]interface{}{"id": id})
		return errors.Wrap(err, "deleting file row")
	}
	return nil
}

// Search matches the query against file names, case-insensitively. A blank
// query yields no results.
func (svc *Service) Search(ctx context.Context, query string) ([]File, error) {
	query = core.CleanString(query)
	if query == "" {
		return []File{}, nil
	}
	files, err := svc.repo.SearchFiles(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "searching files")
	}
	return svc.resolve(ctx, files)
}

func (svc *Service) Get(ctx context.Context, id string) (File, error) {
	f, err := svc.repo.GetFileByID(ctx, id)
	if err != nil {
		return File{}, err
	}
	f.PublicURL = svc.store.PublicURL(f.Path)
	return f, nil
}

// ListBooks returns the files of a books catalog cell, newest first.
func (svc *Service) ListBooks(ctx context.Context, semester, subject string) ([]BookFile, error) {
	if !catalog.IsBookSemester(semester) {
		return nil, errors.Wrap(catalog.ErrNotFound, "resolving book semester")
	}

	books, err := svc.repo.QueryBookFiles(ctx, semester, subject)
	if err != nil {
		return nil, errors.Wrap(err, "querying book files")
	}
	for i := range books {
		if books[i].Path != "" {
			books[i].PublicURL = svc.store.PublicURL(books[i].Path)
		} else {
			books[i].PublicURL = books[i].LegacyURL
		}
	}
	return books, nil
}

// UploadBook follows the same two-phase, no-rollback contract as Upload.
func (svc *Service) UploadBook(ctx context.Context, actor core.Identity, nbf NewBookFile, content io.Reader) (BookFile, error) {
	if err := core.Allow(actor, core.ActionUploadFile); err != nil {
		return BookFile{}, err
	}
	if err := nbf.Validate(); err != nil {
		return BookFile{}, err
	}
	if !catalog.IsBookSemester(nbf.Semester) {
		return BookFile{}, errors.Wrap(catalog.ErrNotFound, "resolving book semester")
	}

	path := fmt.Sprintf("books/%s/%s/%s", nbf.Semester, nbf.Subject, storageName(nbf.OriginalName))
	if err := svc.store.Put(ctx, path, content, nbf.Size, nbf.MimeType); err != nil {
		return BookFile{}, errors.Wrap(err, "writing object")
	}

	bf := BookFile{
		Semester:     nbf.Semester,
		Subject:      nbf.Subject,
		Name:         displayName(nbf.OriginalName),
		OriginalName: nbf.OriginalName,
		Path:         path,
		Size:         nbf.Size,
		MimeType:     nbf.MimeType,
		Description:  nbf.Description,
		CreatedAt:    time.Now().UTC(),
	}
	bf, err := svc.repo.CreateBookFile(ctx, bf)
	if err != nil {
		svc.log.Error("book file row insert failed, object orphaned", err, map[string]interface{}{"path": path})
		return BookFile{}, errors.Wrap(err, "inserting book file row")
	}
	bf.PublicURL = svc.store.PublicURL(bf.Path)
	return bf, nil
}

// DeleteBook mirrors Delete for the books catalog.
func (svc *Service) DeleteBook(ctx context.Context, actor core.Identity, id string) error {
	if err := core.Allow(actor, core.ActionDeleteFile); err != nil {
		return err
	}

	bf, err := svc.repo.GetBookFileByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "resolving book file")
	}
	if bf.Path != "" {
		if err = svc.store.Delete(ctx, bf.Path); err != nil {
			return errors.Wrap(err, "removing object")
		}
	}
	if err = svc.repo.DeleteBookFile(ctx, id); err != nil {
		svc.log.Error("book file row delete failed, row dangling", err, map[string]interface{}{"id": id})
		return errors.Wrap(err, "deleting book file row")
	}
	return nil
}

func (svc *Service) resolve(ctx context.Context, files []File) ([]File, error) {
	ids := make([]string, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if f.UploadedBy != "" && !seen[f.UploadedBy] {
			seen[f.UploadedBy] = true
			ids = append(ids, f.UploadedBy)
		}
	}

	var names map[string]string
	if len(ids) > 0 {
		var err error
		if names, err = svc.names.Names(ctx, ids); err != nil {
			return nil, errors.Wrap(err, "resolving uploader names")
		}
	}

	for i := range files {
		files[i].PublicURL = svc.store.PublicURL(files[i].Path)
		files[i].UploaderName = names[files[i].UploadedBy]
	}
	return files, nil
}

// storageName generates a collision-resistant object name: millisecond
// timestamp plus a random suffix, keeping the original extension so content
// types stay inferable.
func storageName(originalName string) string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), filepath.Ext(originalName))
}
