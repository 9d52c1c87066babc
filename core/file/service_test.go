package file_test

import (
	"context"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	logsvc "github.com/campushare/campushare/services/logger"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
	"github.com/campushare/campushare/storage/object"
)

var (
	authedUser = core.Identity{UserID: "user-1", Email: "user1@test.cd"}
	adminUser  = core.Identity{UserID: "admin-1", Email: "admin@test.cd", Admin: true}
)

type fixture struct {
	svc        *file.Service
	store      *object.DummyStorage
	repo       file.Repository
	subject    catalog.Subject
	profileSvc *profile.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}

	ctx := context.Background()
	catalogRepo := dummydb.NewCatalogRepository(db)
	col, err := catalogRepo.CreateCollege(ctx, catalog.College{Name: "Engineering"})
	if err != nil {
		t.Fatalf("CreateCollege() failed: %v", err)
	}
	dep, err := catalogRepo.CreateDepartment(ctx, catalog.Department{CollegeID: col.ID, Name: "CS"})
	if err != nil {
		t.Fatalf("CreateDepartment() failed: %v", err)
	}
	sem, err := catalogRepo.CreateSemester(ctx, catalog.Semester{DepartmentID: dep.ID, Name: "Semester 1"})
	if err != nil {
		t.Fatalf("CreateSemester() failed: %v", err)
	}
	sub, err := catalogRepo.CreateSubject(ctx, catalog.Subject{SemesterID: sem.ID, Name: "Programming"})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}

	store := object.NewDummyStorage()
	repo := dummydb.NewFileRepository(db)
	profileSvc := profile.NewService(dummydb.NewProfileRepository(db))
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags), core.Conf)
	logger.Enable(false)

	return &fixture{
		svc:        file.NewService(repo, store, catalog.NewService(catalogRepo), profileSvc, logger),
		store:      store,
		repo:       repo,
		subject:    sub,
		profileSvc: profileSvc,
	}
}

func newUpload(subjectID string) file.NewFile {
	return file.NewFile{
		SubjectID:    subjectID,
		OriginalName: "notes.pdf",
		Size:         1024,
		MimeType:     "application/pdf",
	}
}

func TestService_Upload(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	f, err := fx.svc.Upload(ctx, authedUser, newUpload(fx.subject.ID), strings.NewReader("content"))
	assert.NoError(t, err)
	assert.Equal(t, "notes", f.Name)
	assert.Equal(t, "notes.pdf", f.OriginalName)
	assert.Equal(t, authedUser.UserID, f.UploadedBy)
	assert.NotEmpty(t, f.PublicURL)
	assert.True(t, fx.store.Has(f.Path))
	assert.True(t, strings.HasPrefix(f.Path, fx.subject.ID+"/"))
}

func TestService_Upload_anonymous(t *testing.T) {
	fx := setup(t)

	_, err := fx.svc.Upload(context.Background(), core.Identity{}, newUpload(fx.subject.ID), strings.NewReader("content"))
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))
}

func TestService_Upload_tooLarge(t *testing.T) {
	fx := setup(t)

	nf := newUpload(fx.subject.ID)
	nf.Size = file.MaxUploadBytes + 1
	_, err := fx.svc.Upload(context.Background(), authedUser, nf, strings.NewReader("content"))

	var vErr *core.ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, "file_size", vErr.Fields[0].Field)
	}
	// the cap is enforced before any byte reaches the store
	assert.False(t, fx.store.Has(fx.subject.ID+"/"))
}

func TestService_Upload_unknownSubject(t *testing.T) {
	fx := setup(t)

	_, err := fx.svc.Upload(context.Background(), authedUser, newUpload("nope"), strings.NewReader("content"))
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))
}

func TestService_Upload_atCap(t *testing.T) {
	fx := setup(t)

	nf := newUpload(fx.subject.ID)
	nf.Size = file.MaxUploadBytes // exactly at the cap is accepted
	_, err := fx.svc.Upload(context.Background(), authedUser, nf, strings.NewReader("content"))
	assert.NoError(t, err)
}

func TestService_List(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	if _, err := fx.profileSvc.SetFullName(ctx, authedUser, "Jordan Lee"); err != nil {
		t.Fatalf("SetFullName() failed: %v", err)
	}

	first, err := fx.svc.Upload(ctx, authedUser, newUpload(fx.subject.ID), strings.NewReader("a"))
	assert.NoError(t, err)

	// the dummy repo orders by CreatedAt; nudge the second upload forward
	time.Sleep(2 * time.Millisecond)
	second, err := fx.svc.Upload(ctx, authedUser, newUpload(fx.subject.ID), strings.NewReader("b"))
	assert.NoError(t, err)

	files, err := fx.svc.List(ctx, fx.subject.ID)
	assert.NoError(t, err)
	if assert.Len(t, files, 2) {
		// newest first
		assert.Equal(t, second.ID, files[0].ID)
		assert.Equal(t, first.ID, files[1].ID)
		assert.Equal(t, "Jordan Lee", files[0].UploaderName)
		assert.NotEmpty(t, files[0].PublicURL)
	}

	_, err = fx.svc.List(ctx, "nope")
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))
}

func TestService_Delete(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	f, err := fx.svc.Upload(ctx, authedUser, newUpload(fx.subject.ID), strings.NewReader("content"))
	assert.NoError(t, err)

	// non-admin cannot delete
	err = fx.svc.Delete(ctx, authedUser, f.ID)
	assert.Equal(t, core.ErrPermissionDenied, errors.Cause(err))

	// anonymous cannot delete
	err = fx.svc.Delete(ctx, core.Identity{}, f.ID)
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))

	// admin can
	err = fx.svc.Delete(ctx, adminUser, f.ID)
	assert.NoError(t, err)
	assert.False(t, fx.store.Has(f.Path))
	_, err = fx.svc.Get(ctx, f.ID)
	assert.Equal(t, file.ErrNotFound, errors.Cause(err))
}

func TestService_Delete_storageFailureKeepsRow(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	f, err := fx.svc.Upload(ctx, authedUser, newUpload(fx.subject.ID), strings.NewReader("content"))
	assert.NoError(t, err)

	fx.store.DeleteErr = errors.New("storage down")
	err = fx.svc.Delete(ctx, adminUser, f.ID)
	assert.Error(t, err)

	// the registry row survives so the pointer is not lost
	_, err = fx.svc.Get(ctx, f.ID)
	assert.NoError(t, err)
}

func TestService_Search(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	nf := newUpload(fx.subject.ID)
	nf.OriginalName = "Thermodynamics Notes.pdf"
	_, err := fx.svc.Upload(ctx, authedUser, nf, strings.NewReader("content"))
	assert.NoError(t, err)

	files, err := fx.svc.Search(ctx, "thermo")
	assert.NoError(t, err)
	assert.Len(t, files, 1)

	files, err = fx.svc.Search(ctx, "nope")
	assert.NoError(t, err)
	assert.Empty(t, files)

	// blank query yields nothing rather than everything
	files, err = fx.svc.Search(ctx, "  ")
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestService_Books(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	nbf := file.NewBookFile{
		Semester:     "SEM-1",
		Subject:      "PHYSICS",
		OriginalName: "physics-textbook.pdf",
		Size:         2048,
		MimeType:     "application/pdf",
	}
	bf, err := fx.svc.UploadBook(ctx, authedUser, nbf, strings.NewReader("content"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(bf.Path, "books/SEM-1/PHYSICS/"))

	books, err := fx.svc.ListBooks(ctx, "SEM-1", "PHYSICS")
	assert.NoError(t, err)
	if assert.Len(t, books, 1) {
		assert.NotEmpty(t, books[0].PublicURL)
	}

	// unknown semester label
	_, err = fx.svc.ListBooks(ctx, "SEM-9", "PHYSICS")
	assert.Equal(t, catalog.ErrNotFound, errors.Cause(err))

	err = fx.svc.DeleteBook(ctx, adminUser, bf.ID)
	assert.NoError(t, err)
	assert.False(t, fx.store.Has(bf.Path))
}

func TestService_Books_legacyURLFallback(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	// older rows carry a stored URL and no path
	_, err := fx.repo.CreateBookFile(ctx, file.BookFile{
		Semester:  "SEM-2",
		Subject:   "CHEMISTRY",
		Name:      "chem-guide",
		LegacyURL: "https://old.cdn.example/chem-guide.pdf",
		CreatedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)

	books, err := fx.svc.ListBooks(ctx, "SEM-2", "CHEMISTRY")
	assert.NoError(t, err)
	if assert.Len(t, books, 1) {
		assert.Equal(t, "https://old.cdn.example/chem-guide.pdf", books[0].PublicURL)
	}
}
