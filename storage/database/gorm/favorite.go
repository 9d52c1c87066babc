package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campushare/campushare/core/favorite"
)

type favoriteRepository struct {
	db *gorm.DB
}

var _ favorite.Repository = (*favoriteRepository)(nil) // interface compliance check

func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db: db}
}

func (repo favoriteRepository) GetFavorite(ctx context.Context, userID string, entityType favorite.EntityType, entityID string) (favorite.Favorite, error) {
	var row favoriteRow
	err := repo.db.WithContext(ctx).
		First(&row, "user_id = ? AND entity_type = ? AND entity_id = ?", userID, string(entityType), entityID).
		Error
	if err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return favorite.Favorite{}, favorite.ErrNotFound
		}
		return favorite.Favorite{}, errors.Wrap(err, "getting favorite")
	}
	return row.unmap(), nil
}

func (repo favoriteRepository) CreateFavorite(ctx context.Context, fav favorite.Favorite) (favorite.Favorite, error) {
	row := favoriteRow{
		ID:         uuid.New().String(),
		UserID:     fav.UserID,
		EntityType: string(fav.EntityType),
		EntityID:   fav.EntityID,
		CreatedAt:  fav.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return favorite.Favorite{}, errors.Wrap(err, "inserting favorite")
	}
	return row.unmap(), nil
}

func (repo favoriteRepository) DeleteFavorite(ctx context.Context, userID string, entityType favorite.EntityType, entityID string) error {
	res := repo.db.WithContext(ctx).
		Delete(&favoriteRow{}, "user_id = ? AND entity_type = ? AND entity_id = ?", userID, string(entityType), entityID)
	if res.Error != nil {
		return errors.Wrap(res.Error, "deleting favorite")
	}
	if res.RowsAffected == 0 {
		return favorite.ErrNotFound
	}
	return nil
}

func (repo favoriteRepository) QueryFavoritesByUserID(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	var rows []favoriteRow
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying favorites")
	}
	favs := make([]favorite.Favorite, 0, len(rows))
	for _, row := range rows {
		favs = append(favs, row.unmap())
	}
	return favs, nil
}
