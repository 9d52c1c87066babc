package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/campushare/campushare/core/review"
)

type reviewRepository struct {
	db *reviewTables
}

var _ review.Repository = (*reviewRepository)(nil) // interface compliance check

func NewReviewRepository(db *DB) review.Repository {
	return &reviewRepository{db: db.review}
}

func (repo *reviewRepository) CreateReview(_ context.Context, rev review.FileReview) (review.FileReview, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rev.ID = uuid.New().String()
	repo.db.reviews[rev.ID] = &rev
	return rev, nil
}

func (repo *reviewRepository) QueryReviewsByFileID(_ context.Context, fileID string) ([]review.FileReview, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	revs := make([]review.FileReview, 0)
	for _, rev := range repo.db.reviews {
		if rev.FileID == fileID {
			revs = append(revs, *rev)
		}
	}
	sort.Slice(revs, func(i, j int) bool { return revs[i].CreatedAt.After(revs[j].CreatedAt) })
	return revs, nil
}

func (repo *reviewRepository) CreateReport(_ context.Context, rep review.FileReport) (review.FileReport, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	rep.ID = uuid.New().String()
	repo.db.reports[rep.ID] = &rep
	return rep, nil
}

func (repo *reviewRepository) QueryReportsByFileID(_ context.Context, fileID string) ([]review.FileReport, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	reps := make([]review.FileReport, 0)
	for _, rep := range repo.db.reports {
		if rep.FileID == fileID {
			reps = append(reps, *rep)
		}
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].CreatedAt.After(reps[j].CreatedAt) })
	return reps, nil
}
