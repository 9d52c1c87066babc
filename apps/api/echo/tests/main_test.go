package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	echoapi "github.com/campushare/campushare/apps/api/echo"
	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
	emailsvc "github.com/campushare/campushare/services/email"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
	"github.com/campushare/campushare/storage/object"
)

var (
	app   echoapi.Server
	db    *dummydb.DB
	store *object.DummyStorage

	catalogRepo catalog.Repository
	fileRepo    file.Repository
	profileSvc  *profile.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	core.Conf.Debug = false
	core.Conf.TestMode = true

	// set up dummy repos & services
	db, _ = dummydb.Open()
	store = object.NewDummyStorage()
	catalogRepo = dummydb.NewCatalogRepository(db)
	fileRepo = dummydb.NewFileRepository(db)
	profileSvc = profile.NewService(dummydb.NewProfileRepository(db))

	catalogSvc := catalog.NewService(catalogRepo)
	fileSvc := file.NewService(fileRepo, store, catalogSvc, profileSvc, noopLogger{})
	favoriteSvc := favorite.NewService(dummydb.NewFavoriteRepository(db))
	reviewSvc := review.NewService(dummydb.NewReviewRepository(db), profileSvc, emailsvc.NewConsoleServiceMock())

	// set up server
	app = echoapi.NewServer(
		&echoapi.Options{
			DisableReqLogs: true,
			CatalogSvc:     catalogSvc,
			FileSvc:        fileSvc,
			FavoriteSvc:    favoriteSvc,
			ReviewSvc:      reviewSvc,
			ProfileSvc:     profileSvc,
			Logger:         noopLogger{},
		},
	)

	os.Exit(m.Run())
}

type noopLogger struct{}

func (noopLogger) Enable(bool)                  {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Fatal(string, ...interface{}) {}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, ident core.Identity) string {
	t.Helper()

	claims := &echoapi.Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   ident.UserID,
			ExpiresAt: time.Now().Add(10 * time.Minute).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
		Email: ident.Email,
	}
	token, err := echoapi.GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marshallObj(t *testing.T, v interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func seedSubject(t *testing.T) catalog.Subject {
	t.Helper()
	ctx := context.Background()

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
	return sub
}
