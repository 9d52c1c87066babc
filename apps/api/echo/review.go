package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
)

type reviewApi struct {
	svc        *review.Service
	profileSvc *profile.Service
}

func registerReviewAPI(g *echo.Group, jwt, optJWT echo.MiddlewareFunc, svc *review.Service, profileSvc *profile.Service) {
	api := reviewApi{svc: svc, profileSvc: profileSvc}

	g.GET("/files/:id/reviews", api.queryReviews)
	g.POST("/files/:id/reviews", api.createReview, jwt)

	// reports accept anonymous submissions
	g.POST("/files/:id/reports", api.createReport, optJWT)
	g.GET("/files/:id/reports", api.queryReports, jwt)
}

func (api *reviewApi) queryReviews(ctx echo.Context) error {
	reviews, err := api.svc.ListReviews(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reviews)
}

func (api *reviewApi) createReview(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	var data review.NewReview
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReview")
	}
	data.FileID = ctx.Param("id")

	rev, err := api.svc.SubmitReview(ctx.Request().Context(), ident, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rev)
}

func (api *reviewApi) createReport(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	var data review.NewReport
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReport")
	}
	data.FileID = ctx.Param("id")

	rep, err := api.svc.SubmitReport(ctx.Request().Context(), ident, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, rep)
}

func (api *reviewApi) queryReports(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}
	reports, err := api.svc.ListReports(ctx.Request().Context(), ident, ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, reports)
}
