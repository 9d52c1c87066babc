package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool

		CatalogSvc  *catalog.Service
		FileSvc     *file.Service
		FavoriteSvc *favorite.Service
		ReviewSvc   *review.Service
		ProfileSvc  *profile.Service

		Logger core.Logger

		// Shutdown is closed by the error handler when an unrecoverable
		// error is caught.
		Shutdown chan struct{}
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)
	optJWT := optionalJWT(jwt)

	registerCatalogAPI(v1, s.opts.CatalogSvc)
	registerFileAPI(v1, jwt, optJWT, s.opts.FileSvc, s.opts.ProfileSvc)
	registerFavoriteAPI(v1, jwt, s.opts.FavoriteSvc, s.opts.ProfileSvc)
	registerReviewAPI(v1, jwt, optJWT, s.opts.ReviewSvc, s.opts.ProfileSvc)
	registerProfileAPI(v1, jwt, s.opts.ProfileSvc, s.opts.FavoriteSvc)
}

func (s *server) signalShutdown() {
	if s.opts.Shutdown != nil {
		close(s.opts.Shutdown)
	}
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to CampuShare API!")
}
