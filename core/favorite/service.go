package favorite

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
)

var (
	ErrNotFound = errors.New("favorite not found")

	errBadEntityType = "unknown entity type"
)

type (
	Repository interface {
		GetFavorite(ctx context.Context, userID string, entityType EntityType, entityID string) (Favorite, error)
		CreateFavorite(ctx context.Context, fav Favorite) (Favorite, error)
		DeleteFavorite(ctx context.Context, userID string, entityType EntityType, entityID string) error
		QueryFavoritesByUserID(ctx context.Context, userID string) ([]Favorite, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IsFavorite reports whether the actor has bookmarked the entity.
// Anonymous callers always get false, so browse-only paths stay simple.
func (svc *Service) IsFavorite(ctx context.Context, actor core.Identity, entityType EntityType, entityID string) (bool, error) {
	if !actor.Authenticated() {
		return false, nil
	}
	if !entityType.Valid() {
		return false, core.NewValidationError(nil, core.FieldError{Field: "entity_type", Error: errBadEntityType})
	}

	if _, err := svc.repo.GetFavorite(ctx, actor.UserID, entityType, entityID); err != nil {
		if errors.Cause(err) == ErrNotFound {
			return false, nil
		}
		return false, errors.Wrap(err, "getting favorite")
	}
	return true, nil
}

// Toggle flips the bookmark and returns the new state. Implemented as
// delete-if-exists-else-insert; concurrent toggles of the same row resolve
// last-write-wins at the store, no stronger guarantee is provided.
// An anonymous toggle is a no-op returning false rather than an error.
func (svc *Service) Toggle(ctx context.Context, actor core.Identity, entityType EntityType, entityID string) (bool, error) {
	if err := core.Allow(actor, core.ActionToggleFavorite); err != nil {
		if errors.Cause(err) == core.ErrAuthRequired {
			return false, nil
		}
		return false, err
	}
	if !entityType.Valid() {
		return false, core.NewValidationError(nil, core.FieldError{Field: "entity_type", Error: errBadEntityType})
	}

	_, err := svc.repo.GetFavorite(ctx, actor.UserID, entityType, entityID)
	switch errors.Cause(err) {
	case nil:
		if err = svc.repo.DeleteFavorite(ctx, actor.UserID, entityType, entityID); err != nil {
			return true, errors.Wrap(err, "deleting favorite")
		}
		return false, nil
	case ErrNotFound:
		fav := Favorite{
			UserID:     actor.UserID,
			EntityType: entityType,
			EntityID:   entityID,
			CreatedAt:  time.Now().UTC(),
		}
		if _, err = svc.repo.CreateFavorite(ctx, fav); err != nil {
			return false, errors.Wrap(err, "creating favorite")
		}
		return true, nil
	default:
		return false, errors.Wrap(err, "getting favorite")
	}
}

// ListForUser returns the actor's bookmarks, for the profile page.
func (svc *Service) ListForUser(ctx context.Context, actor core.Identity) ([]Favorite, error) {
	if !actor.Authenticated() {
		return []Favorite{}, nil
	}
	favs, err := svc.repo.QueryFavoritesByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "querying favorites")
	}
	return favs, nil
}
