package gormrepos

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushare/campushare/core/profile"
)

type profileRepository struct {
	db *gorm.DB
}

var _ profile.Repository = (*profileRepository)(nil) // interface compliance check

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (repo profileRepository) CreateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	// profile rows are keyed by the auth user ID, not a generated one
	row := profileRow{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return profile.Profile{}, errors.Wrap(err, "inserting profile")
	}
	return row.unmap(), nil
}

func (repo profileRepository) GetProfileByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	var row profileRow
	if err := repo.db.WithContext(ctx).First(&row, "id = ?", userID).Error; err != nil {
		if errors.Cause(err) == gorm.ErrRecordNotFound {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, errors.Wrap(err, "getting profile")
	}
	return row.unmap(), nil
}

func (repo profileRepository) QueryProfilesByUserIDs(ctx context.Context, userIDs []string) ([]profile.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []profileRow
	if err := repo.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "querying profiles")
	}
	profiles := make([]profile.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.unmap())
	}
	return profiles, nil
}

func (repo profileRepository) UpdateProfile(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	row := profileRow{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	res := repo.db.WithContext(ctx).Model(&profileRow{}).Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"full_name":  row.FullName,
			"email":      row.Email,
			"updated_at": row.UpdatedAt,
		})
	if res.Error != nil {
		return profile.Profile{}, errors.Wrap(res.Error, "updating profile")
	}
	if res.RowsAffected == 0 {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (repo profileRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&adminRow{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "counting admin rows")
	}
	return count > 0, nil
}

func (repo profileRepository) CreateAdmin(ctx context.Context, userID string) error {
	row := adminRow{UserID: userID}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}). // grant is idempotent
		Create(&row).Error
	return errors.Wrap(err, "inserting admin")
}

func (repo profileRepository) DeleteAdmin(ctx context.Context, userID string) error {
	err := repo.db.WithContext(ctx).Delete(&adminRow{}, "user_id = ?", userID).Error
	return errors.Wrap(err, "deleting admin")
}
