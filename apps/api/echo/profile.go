package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/profile"
)

type profileApi struct {
	svc         *profile.Service
	favoriteSvc *favorite.Service
}

type meResponse struct {
	UserID    string                                      `json:"user_id"`
	Email     string                                      `json:"email"`
	Admin     bool                                        `json:"admin"`
	Profile   profile.Profile                             `json:"profile"`
	Favorites map[favorite.EntityType][]favorite.Favorite `json:"favorites"`
}

type setNameRequest struct {
	FullName string `json:"full_name"`
}

func registerProfileAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *profile.Service, favoriteSvc *favorite.Service) {
	api := profileApi{svc: svc, favoriteSvc: favoriteSvc}

	mg := g.Group("/me", jwt)
	mg.GET("", api.retrieve)
	mg.PUT("", api.update)
}

// retrieve assembles the dashboard payload: identity, profile, bookmarks.
func (api *profileApi) retrieve(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.svc)
	if err != nil {
		return err
	}
	if !ident.Authenticated() {
		return core.ErrAuthRequired
	}

	reqCtx := ctx.Request().Context()
	p, err := api.svc.EnsureProfile(reqCtx, ident)
	if err != nil {
		return err
	}
	favs, err := api.favoriteSvc.ListForUser(reqCtx, ident)
	if err != nil {
		return err
	}

	grouped := make(map[favorite.EntityType][]favorite.Favorite)
	for _, fav := range favs {
		grouped[fav.EntityType] = append(grouped[fav.EntityType], fav)
	}

	return ctx.JSON(http.StatusOK, meResponse{
		UserID:    ident.UserID,
		Email:     ident.Email,
		Admin:     ident.Admin,
		Profile:   p,
		Favorites: grouped,
	})
}

func (api *profileApi) update(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.svc)
	if err != nil {
		return err
	}

	var data setNameRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to setNameRequest")
	}

	p, err := api.svc.SetFullName(ctx.Request().Context(), ident, data.FullName)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, p)
}
