package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core/catalog"
)

// seed file shape: colleges nest departments nest semesters nest subjects.
type (
	seedSubject struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	seedSemester struct {
		Name        string        `json:"name"`
		Description string        `json:"description"`
		Subjects    []seedSubject `json:"subjects"`
	}

	seedDepartment struct {
		Name        string         `json:"name"`
		Description string         `json:"description"`
		Semesters   []seedSemester `json:"semesters"`
	}

	seedCollege struct {
		Name        string           `json:"name"`
		Code        string           `json:"code"`
		Description string           `json:"description"`
		Departments []seedDepartment `json:"departments"`
	}
)

func (cli *commandLine) seedCatalog(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading seed file")
	}

	var colleges []seedCollege
	if err = json.Unmarshal(data, &colleges); err != nil {
		return errors.Wrap(err, "parsing seed file")
	}

	now := time.Now().UTC()
	for _, sc := range colleges {
		col, err := cli.catalogRepo.CreateCollege(ctx, catalog.College{
			Name:        sc.Name,
			Code:        sc.Code,
			Description: sc.Description,
			CreatedAt:   now,
		})
		if err != nil {
			return errors.Wrap(err, "seeding college "+sc.Name)
		}

		for _, sd := range sc.Departments {
			dep, err := cli.catalogRepo.CreateDepartment(ctx, catalog.Department{
				CollegeID:   col.ID,
				Name:        sd.Name,
				Description: sd.Description,
				CreatedAt:   now,
			})
			if err != nil {
				return errors.Wrap(err, "seeding department "+sd.Name)
			}

			for _, ss := range sd.Semesters {
				sem, err := cli.catalogRepo.CreateSemester(ctx, catalog.Semester{
					DepartmentID: dep.ID,
					Name:         ss.Name,
					Description:  ss.Description,
					CreatedAt:    now,
				})
				if err != nil {
					return errors.Wrap(err, "seeding semester "+ss.Name)
				}

				for _, sub := range ss.Subjects {
					_, err := cli.catalogRepo.CreateSubject(ctx, catalog.Subject{
						SemesterID:  sem.ID,
						Name:        sub.Name,
						Description: sub.Description,
						CreatedAt:   now,
					})
					if err != nil {
						return errors.Wrap(err, "seeding subject "+sub.Name)
					}
				}
			}
		}
	}
	return nil
}
