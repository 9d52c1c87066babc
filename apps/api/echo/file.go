package echoapi

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core/file"
	"github.com/campushare/campushare/core/profile"
)

type fileApi struct {
	svc        *file.Service
	profileSvc *profile.Service
}

func registerFileAPI(g *echo.Group, jwt, optJWT echo.MiddlewareFunc, svc *file.Service, profileSvc *profile.Service) {
	api := fileApi{svc: svc, profileSvc: profileSvc}

	// public reads
	g.GET("/subjects/:id/files", api.query)
	g.GET("/files/search", api.search)
	g.GET("/files/:id", api.retrieve)
	g.GET("/books/:semester/:subject/files", api.queryBooks)

	// authed writes; delete is admin-gated in the service
	g.POST("/subjects/:id/files", api.upload, jwt)
	g.DELETE("/files/:id", api.destroy, jwt)
	g.POST("/books/:semester/:subject/files", api.uploadBook, jwt)
	g.DELETE("/books/files/:id", api.destroyBook, jwt)
}

func (api *fileApi) query(ctx echo.Context) error {
	files, err := api.svc.List(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, files)
}

func (api *fileApi) search(ctx echo.Context) error {
	files, err := api.svc.Search(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, files)
}

func (api *fileApi) retrieve(ctx echo.Context) error {
	f, err := api.svc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *fileApi) upload(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	content, header, err := formFile(ctx)
	if err != nil {
		return err
	}
	defer content.Close()

	nf := file.NewFile{
		SubjectID:    ctx.Param("id"),
		OriginalName: header.Filename,
		Size:         header.Size,
		MimeType:     header.Header.Get(echo.HeaderContentType),
		Description:  ctx.FormValue("description"),
	}
	f, err := api.svc.Upload(ctx.Request().Context(), ident, nf, content)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, f)
}

func (api *fileApi) destroy(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), ident, ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *fileApi) queryBooks(ctx echo.Context) error {
	books, err := api.svc.ListBooks(ctx.Request().Context(), ctx.Param("semester"), ctx.Param("subject"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, books)
}

func (api *fileApi) uploadBook(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	content, header, err := formFile(ctx)
	if err != nil {
		return err
	}
	defer content.Close()

	nbf := file.NewBookFile{
		Semester:     ctx.Param("semester"),
		Subject:      ctx.Param("subject"),
		OriginalName: header.Filename,
		Size:         header.Size,
		MimeType:     header.Header.Get(echo.HeaderContentType),
		Description:  ctx.FormValue("description"),
	}
	bf, err := api.svc.UploadBook(ctx.Request().Context(), ident, nbf, content)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, bf)
}

func (api *fileApi) destroyBook(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}
	if err = api.svc.DeleteBook(ctx.Request().Context(), ident, ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func formFile(ctx echo.Context) (multipart.File, *multipart.FileHeader, error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "missing form file")
	}
	content, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "opening form file")
	}
	return content, header, nil
}
