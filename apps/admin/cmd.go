package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"gorm.io/gorm"

	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/storage/database"
)

var (
	migrateFunc = database.Migrate // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db          *gorm.DB
	catalogRepo catalog.Repository
	profileSvc  *profile.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate                    - apply pending schema migrations")
	fmt.Println("  seedcatalog -file FILE     - load the catalog hierarchy from a JSON file")
	fmt.Println("  grantadmin -user USER_ID   - add a user to the admin set")
	fmt.Println("  revokeadmin -user USER_ID  - remove a user from the admin set")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seedcatalog", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "Path to the catalog JSON file.")

	grantCmd := flag.NewFlagSet("grantadmin", flag.ExitOnError)
	grantUser := grantCmd.String("user", "", "The user's ID at the authentication service.")

	revokeCmd := flag.NewFlagSet("revokeadmin", flag.ExitOnError)
	revokeUser := revokeCmd.String("user", "", "The user's ID at the authentication service.")

	ctx := context.Background()

	switch args[1] {
	case "migrate":
		return migrateFunc(cli.db)
	case "seedcatalog":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seedCatalog(ctx, *seedFile)
	case "grantadmin":
		if err := grantCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *grantUser == "" {
			grantCmd.Usage()
			return errHelp
		}
		return cli.profileSvc.GrantAdmin(ctx, *grantUser)
	case "revokeadmin":
		if err := revokeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *revokeUser == "" {
			revokeCmd.Usage()
			return errHelp
		}
		return cli.profileSvc.RevokeAdmin(ctx, *revokeUser)
	default:
		cli.printUsage()
		return errHelp
	}
}
