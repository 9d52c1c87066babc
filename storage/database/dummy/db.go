// Package dummydb provides in-memory repositories for tests.
package dummydb

import (
	"sync"

	"github.com/campushare/campushare/core/catalog"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
)

type (
	DB struct {
		catalog  *catalogTables
		file     *fileTables
		favorite *favoriteTable
		review   *reviewTables
		profile  *profileTables
	}

	catalogTables struct {
		sync.RWMutex
		colleges    map[string]*catalog.College
		departments map[string]*catalog.Department
		semesters   map[string]*catalog.Semester
		subjects    map[string]*catalog.Subject
	}

	fileTables struct {
		sync.RWMutex
		files map[string]*file.File
		books map[string]*file.BookFile
	}

	favoriteTable struct {
		sync.RWMutex
		table map[string]*favorite.Favorite
	}

	reviewTables struct {
		sync.RWMutex
		reviews map[string]*review.FileReview
		reports map[string]*review.FileReport
	}

	profileTables struct {
		sync.RWMutex
		profiles map[string]*profile.Profile
		admins   map[string]struct{}
	}
)

func Open() (*DB, error) {
	db := &DB{
		catalog: &catalogTables{
			colleges:    make(map[string]*catalog.College),
			departments: make(map[string]*catalog.Department),
			semesters:   make(map[string]*catalog.Semester),
			subjects:    make(map[string]*catalog.Subject),
		},
		file: &fileTables{
			files: make(map[string]*file.File),
			books: make(map[string]*file.BookFile),
		},
		favorite: &favoriteTable{table: make(map[string]*favorite.Favorite)},
		review: &reviewTables{
			reviews: make(map[string]*review.FileReview),
			reports: make(map[string]*review.FileReport),
		},
		profile: &profileTables{
			profiles: make(map[string]*profile.Profile),
			admins:   make(map[string]struct{}),
		},
	}
	return db, nil
}
