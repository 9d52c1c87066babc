package dummydb

import (
	"context"

	"github.com/campushare/campushare/core/profile"
)

type profileRepository struct {
	db *profileTables
}

var _ profile.Repository = (*profileRepository)(nil) // interface compliance check

func NewProfileRepository(db *DB) profile.Repository {
	return &profileRepository{db: db.profile}
}

func (repo *profileRepository) CreateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.profiles[p.ID] = &p
	return p, nil
}

func (repo *profileRepository) GetProfileByUserID(_ context.Context, userID string) (profile.Profile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if p, ok := repo.db.profiles[userID]; ok {
		return *p, nil
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (repo *profileRepository) QueryProfilesByUserIDs(_ context.Context, userIDs []string) ([]profile.Profile, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	profiles := make([]profile.Profile, 0, len(userIDs))
	for _, id := range userIDs {
		if p, ok := repo.db.profiles[id]; ok {
			profiles = append(profiles, *p)
		}
	}
	return profiles, nil
}

func (repo *profileRepository) UpdateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.profiles[p.ID]; !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	repo.db.profiles[p.ID] = &p
	return p, nil
}

func (repo *profileRepository) IsAdmin(_ context.Context, userID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	_, ok := repo.db.admins[userID]
	return ok, nil
}

func (repo *profileRepository) CreateAdmin(_ context.Context, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.admins[userID] = struct{}{}
	return nil
}

func (repo *profileRepository) DeleteAdmin(_ context.Context, userID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	delete(repo.db.admins, userID)
	return nil
}
