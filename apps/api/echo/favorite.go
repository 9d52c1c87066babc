package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campushare/campushare/core/favorite"
	"github.com/campushare/campushare/core/profile"
)

type favoriteApi struct {
	svc        *favorite.Service
	profileSvc *profile.Service
}

type toggleRequest struct {
	EntityType favorite.EntityType `json:"entity_type"`
	EntityID   string              `json:"entity_id"`
}

type favoriteStatus struct {
	Favorite bool `json:"favorite"`
}

func registerFavoriteAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *favorite.Service, profileSvc *profile.Service) {
	api := favoriteApi{svc: svc, profileSvc: profileSvc}

	fg := g.Group("/favorites", jwt)
	fg.GET("", api.query)
	fg.POST("/toggle", api.toggle)
	fg.GET("/status", api.status)
}

func (api *favoriteApi) query(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}
	favs, err := api.svc.ListForUser(ctx.Request().Context(), ident)
	if err != nil {
		return err
	}

	// grouped by entity type, for the profile page
	grouped := make(map[favorite.EntityType][]favorite.Favorite)
	for _, fav := range favs {
		grouped[fav.EntityType] = append(grouped[fav.EntityType], fav)
	}
	return ctx.JSON(http.StatusOK, grouped)
}

func (api *favoriteApi) toggle(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	var data toggleRequest
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to toggleRequest")
	}

	state, err := api.svc.Toggle(ctx.Request().Context(), ident, data.EntityType, data.EntityID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, favoriteStatus{Favorite: state})
}

func (api *favoriteApi) status(ctx echo.Context) error {
	ident, err := getContextIdentity(ctx, api.profileSvc)
	if err != nil {
		return err
	}

	state, err := api.svc.IsFavorite(
		ctx.Request().Context(),
		ident,
		favorite.EntityType(ctx.QueryParam("entity_type")),
		ctx.QueryParam("entity_id"),
	)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, favoriteStatus{Favorite: state})
}
