package main

import (
	"log"
	"os"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/storage/database"
	gormrepos "github.com/campushare/campushare/storage/database/gorm"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := database.Open(core.Conf)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		db:          db,
		catalogRepo: gormrepos.NewCatalogRepository(db),
		profileSvc:  profile.NewService(gormrepos.NewProfileRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
