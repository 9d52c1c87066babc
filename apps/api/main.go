package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	echoapi "github.com/campushare/campushare/apps/api/echo"
	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
	emailsvc "github.com/campushare/campushare/services/email"
	logsvc "github.com/campushare/campushare/services/logger"
	"github.com/campushare/campushare/storage/database"
	gormrepos "github.com/campushare/campushare/storage/database/gorm"
	"github.com/campushare/campushare/storage/object"
)

const shutdownTimeout = 20 * time.Second

func main() {
	// set up logger
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		core.Conf,
	)
	logger.Enable(!core.Conf.Debug)

	logger.Info(fmt.Sprintf("Application initializing : version %q", core.Conf.Build))
	defer logger.Info("Application stopped")

	// set up DB
	db, err := setUpDB()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// set up object storage
	store, err := object.NewMinioStorage(core.Conf.Storage)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up object storage: %v", err), err)
	}
	if err = store.EnsureBucket(context.Background()); err != nil {
		logger.Fatal(fmt.Sprintf("ensuring bucket: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	catalogSvc := catalog.NewService(gormrepos.NewCatalogRepository(db))
	profileSvc := profile.NewService(gormrepos.NewProfileRepository(db))
	fileSvc := file.NewService(gormrepos.NewFileRepository(db), store, catalogSvc, profileSvc, logger)
	favoriteSvc := favorite.NewService(gormrepos.NewFavoriteRepository(db))
	reviewSvc := review.NewService(gormrepos.NewReviewRepository(db), profileSvc, mailSvc)

	// start API server
	shutdown := make(chan struct{})
	server := echoapi.NewServer(
		&echoapi.Options{
			Addr:        core.Conf.Server.Addr,
			CatalogSvc:  catalogSvc,
			FileSvc:     fileSvc,
			FavoriteSvc: favoriteSvc,
			ReviewSvc:   reviewSvc,
			ProfileSvc:  profileSvc,
			Logger:      logger,
			Shutdown:    shutdown,
		},
	)

	go server.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info(fmt.Sprintf("%v: Start shutdown...", s))
	case <-shutdown:
		logger.Info("integrity issue: Start shutdown...")
	}

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Stop(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("could not stop server gracefully: %v", err), err)
	}
}

func setUpDB() (*gorm.DB, error) {
	db, err := database.Open(core.Conf)
	if err != nil {
		return nil, err
	}
	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
