package review

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/profile"
)

const anonymousName = "Anonymous"

var errNoDisplayName = "please set your username in your profile before reviewing"

type (
	Repository interface {
		CreateReview(ctx context.Context, rev FileReview) (FileReview, error)
		QueryReviewsByFileID(ctx context.Context, fileID string) ([]FileReview, error)
		CreateReport(ctx context.Context, rep FileReport) (FileReport, error)
		QueryReportsByFileID(ctx context.Context, fileID string) ([]FileReport, error)
	}

	Service struct {
		repo       Repository
		profileSvc *profile.Service
		mailSvc    core.EmailService
	}
)

func NewService(repo Repository, profileSvc *profile.Service, mailSvc core.EmailService) *Service {
	return &Service{
		repo:       repo,
		profileSvc: profileSvc,
		mailSvc:    mailSvc,
	}
}

// SubmitReview appends a rating row. The caller must be authenticated and
// must have a display name set on their profile.
func (svc *Service) SubmitReview(ctx context.Context, actor core.Identity, nr NewReview) (FileReview, error) {
	if err := core.Allow(actor, core.ActionSubmitReview); err != nil {
		return FileReview{}, err
	}
	if err := nr.Validate(); err != nil {
		return FileReview{}, err
	}

	p, err := svc.profileSvc.EnsureProfile(ctx, actor)
	if err != nil {
		return FileReview{}, errors.Wrap(err, "resolving profile")
	}
	if !p.HasName() {
		return FileReview{}, core.NewPreconditionFailedError(errNoDisplayName)
	}

	rev := FileReview{
		FileID:    nr.FileID,
		UserID:    actor.UserID,
		Rating:    nr.Rating,
		Text:      nr.Text,
		CreatedAt: time.Now().UTC(),
	}
	rev, err = svc.repo.CreateReview(ctx, rev)
	if err != nil {
		return FileReview{}, errors.Wrap(err, "inserting review")
	}
	rev.ReviewerName = p.FullName
	return rev, nil
}

// ListReviews returns a file's reviews, newest first, each with the
// reviewer's display name or "Anonymous" when none can be resolved.
func (svc *Service) ListReviews(ctx context.Context, fileID string) ([]FileReview, error) {
	reviews, err := svc.repo.QueryReviewsByFileID(ctx, fileID)
	if err != nil {
		return nil, errors.Wrap(err, "querying reviews")
	}

	ids := make([]string, 0, len(reviews))
	seen := make(map[string]bool, len(reviews))
	for _, rev := range reviews {
		if rev.UserID != "" && !seen[rev.UserID] {
			seen[rev.UserID] = true
			ids = append(ids, rev.UserID)
		}
	}
	names, err := svc.profileSvc.Names(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "resolving reviewer names")
	}

	for i := range reviews {
		if name, ok := names[reviews[i].UserID]; ok {
			reviews[i].ReviewerName = name
		} else {
			reviews[i].ReviewerName = anonymousName
		}
	}
	return reviews, nil
}

// SubmitReport appends a report row; anonymous callers are welcome.
// Moderators configured in ReportRecipients are notified by email.
func (svc *Service) SubmitReport(ctx context.Context, actor core.Identity, nr NewReport) (FileReport, error) {
	if err := core.Allow(actor, core.ActionSubmitReport); err != nil {
		return FileReport{}, err
	}
	if err := nr.Validate(); err != nil {
		return FileReport{}, err
	}

	rep := FileReport{
		FileID:    nr.FileID,
		UserID:    actor.UserID, // empty for anonymous
		Reason:    nr.Reason,
		CreatedAt: time.Now().UTC(),
	}
	rep, err := svc.repo.CreateReport(ctx, rep)
	if err != nil {
		return FileReport{}, errors.Wrap(err, "inserting report")
	}

	if len(core.Conf.ReportRecipients) > 0 {
		reporter := rep.UserID
		if reporter == "" {
			reporter = "anonymous"
		}
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      core.Conf.ReportRecipients,
			Subject: "File reported: " + rep.FileID,
			Body: fmt.Sprintf(
				"File %s was reported by %s.\r\n\r\nReason: %s\r\n",
				rep.FileID, reporter, rep.Reason,
			),
		})
	}
	return rep, nil
}

// ListReports is an operator read; there is no resolution workflow.
func (svc *Service) ListReports(ctx context.Context, actor core.Identity, fileID string) ([]FileReport, error) {
	if !actor.Authenticated() {
		return nil, core.ErrAuthRequired
	}
	if !actor.Admin {
		return nil, core.ErrPermissionDenied
	}
	return svc.repo.QueryReportsByFileID(ctx, fileID)
}
