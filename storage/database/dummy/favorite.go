package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/campushare/campushare/core/favorite"
)

type favoriteRepository struct {
	db *favoriteTable
}

var _ favorite.Repository = (*favoriteRepository)(nil) // interface compliance check

func NewFavoriteRepository(db *DB) favorite.Repository {
	return &favoriteRepository{db: db.favorite}
}

func favKey(userID string, entityType favorite.EntityType, entityID string) string {
	return userID + "/" + string(entityType) + "/" + entityID
}

func (repo *favoriteRepository) GetFavorite(_ context.Context, userID string, entityType favorite.EntityType, entityID string) (favorite.Favorite, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if fav, ok := repo.db.table[favKey(userID, entityType, entityID)]; ok {
		return *fav, nil
	}
	return favorite.Favorite{}, favorite.ErrNotFound
}

func (repo *favoriteRepository) CreateFavorite(_ context.Context, fav favorite.Favorite) (favorite.Favorite, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	fav.ID = uuid.New().String()
	repo.db.table[favKey(fav.UserID, fav.EntityType, fav.EntityID)] = &fav
	return fav, nil
}

func (repo *favoriteRepository) DeleteFavorite(_ context.Context, userID string, entityType favorite.EntityType, entityID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := favKey(userID, entityType, entityID)
	if _, ok := repo.db.table[key]; !ok {
		return favorite.ErrNotFound
	}
	delete(repo.db.table, key)
	return nil
}

func (repo *favoriteRepository) QueryFavoritesByUserID(_ context.Context, userID string) ([]favorite.Favorite, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	favs := make([]favorite.Favorite, 0)
	for _, fav := range repo.db.table {
		if fav.UserID == userID {
			favs = append(favs, *fav)
		}
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].CreatedAt.After(favs[j].CreatedAt) })
	return favs, nil
}
