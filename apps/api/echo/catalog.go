package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushare/campushare/core/catalog"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, svc *catalog.Service) {
	api := catalogApi{svc: svc}

	// all catalog reads are public
	cg := g.Group("/catalog")
	cg.GET("/colleges", api.queryColleges)
	cg.GET("/colleges/:id", api.retrieveCollege)
	cg.GET("/colleges/:id/departments", api.queryDepartments)
	cg.GET("/departments/:id", api.retrieveDepartment)
	cg.GET("/departments/:id/semesters", api.querySemesters)
	cg.GET("/semesters/:id", api.retrieveSemester)
	cg.GET("/semesters/:id/subjects", api.querySubjects)
	cg.GET("/subjects/:id", api.retrieveSubject)

	// fixed books catalog
	cg.GET("/books/semesters", api.queryBookSemesters)
	cg.GET("/books/semesters/:semester/subjects", api.queryBookSubjects)
}

func (api *catalogApi) queryColleges(ctx echo.Context) error {
	colleges, err := api.svc.ListColleges(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, colleges)
}

func (api *catalogApi) retrieveCollege(ctx echo.Context) error {
	col, err := api.svc.GetCollege(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, col)
}

func (api *catalogApi) queryDepartments(ctx echo.Context) error {
	deps, err := api.svc.ListDepartments(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, deps)
}

func (api *catalogApi) retrieveDepartment(ctx echo.Context) error {
	dep, err := api.svc.GetDepartment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dep)
}

func (api *catalogApi) querySemesters(ctx echo.Context) error {
	sems, err := api.svc.ListSemesters(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sems)
}

func (api *catalogApi) retrieveSemester(ctx echo.Context) error {
	sem, err := api.svc.GetSemester(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sem)
}

func (api *catalogApi) querySubjects(ctx echo.Context) error {
	subs, err := api.svc.ListSubjects(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *catalogApi) retrieveSubject(ctx echo.Context) error {
	sub, err := api.svc.GetSubject(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sub)
}

func (api *catalogApi) queryBookSemesters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, catalog.BookSemesters())
}

func (api *catalogApi) queryBookSubjects(ctx echo.Context) error {
	subjects, err := catalog.BookSubjects(ctx.Param("semester"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, subjects)
}
