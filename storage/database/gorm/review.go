package gormrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/campushare/campushare/core/review"
)

type reviewRepository struct {
	db *gorm.DB
}

var _ review.Repository = (*reviewRepository)(nil) // interface compliance check

func NewReviewRepository(db *gorm.DB) *reviewRepository {
	return &reviewRepository{db: db}
}

func (repo reviewRepository) CreateReview(ctx context.Context, rev review.FileReview) (review.FileReview, error) {
	row := fileReviewRow{
		ID:         uuid.New().String(),
		FileID:     rev.FileID,
		UserID:     rev.UserID,
		Rating:     rev.Rating,
		ReviewText: rev.Text,
		CreatedAt:  rev.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return review.FileReview{}, errors.Wrap(err, "inserting review")
	}
	return row.unmap(), nil
}

func (repo reviewRepository) QueryReviewsByFileID(ctx context.Context, fileID string) ([]review.FileReview, error) {
	var rows []fileReviewRow
	err := repo.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying reviews")
	}
	revs := make([]review.FileReview, 0, len(rows))
	for _, row := range rows {
		revs = append(revs, row.unmap())
	}
	return revs, nil
}

func (repo reviewRepository) CreateReport(ctx context.Context, rep review.FileReport) (review.FileReport, error) {
	row := fileReportRow{
		ID:        uuid.New().String(),
		FileID:    rep.FileID,
		UserID:    rep.UserID,
		Reason:    rep.Reason,
		CreatedAt: rep.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return review.FileReport{}, errors.Wrap(err, "inserting report")
	}
	return row.unmap(), nil
}

func (repo reviewRepository) QueryReportsByFileID(ctx context.Context, fileID string) ([]review.FileReport, error) {
	var rows []fileReportRow
	err := repo.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "querying reports")
	}
	reps := make([]review.FileReport, 0, len(rows))
	for _, row := range rows {
		reps = append(reps, row.unmap())
	}
	return reps, nil
}
