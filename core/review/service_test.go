package review_test

import (
	"context"
	"net/mail"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/profile"
	"github.com/campushare/campushare/core/review"
	emailsvc "github.com/campushare/campushare/services/email"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
)

var (
	authedUser = core.Identity{UserID: "user-1", Email: "user1@test.cd"}
	adminUser  = core.Identity{UserID: "admin-1", Email: "admin@test.cd", Admin: true}
	moderator  = mail.Address{Address: "mods@test.cd"}
)

type fixture struct {
	svc        *review.Service
	profileSvc *profile.Service
	repo       review.Repository
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	profileSvc := profile.NewService(dummydb.NewProfileRepository(db))
	repo := dummydb.NewReviewRepository(db)
	svc := review.NewService(repo, profileSvc, emailsvc.NewConsoleServiceMock())
	return &fixture{svc: svc, profileSvc: profileSvc, repo: repo}
}

func newReview(rating int) review.NewReview {
	return review.NewReview{FileID: "file-1", Rating: rating, Text: "solid notes"}
}

func TestService_SubmitReview(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	if _, err := fx.profileSvc.SetFullName(ctx, authedUser, "Jordan Lee"); err != nil {
		t.Fatalf("SetFullName() failed: %v", err)
	}

	rev, err := fx.svc.SubmitReview(ctx, authedUser, newReview(4))
	assert.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)
	assert.Equal(t, "Jordan Lee", rev.ReviewerName)

	// append-only: the same user may review the same file again
	_, err = fx.svc.SubmitReview(ctx, authedUser, newReview(2))
	assert.NoError(t, err)

	reviews, err := fx.svc.ListReviews(ctx, "file-1")
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestService_SubmitReview_ratingBounds(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	if _, err := fx.profileSvc.SetFullName(ctx, authedUser, "Jordan Lee"); err != nil {
		t.Fatalf("SetFullName() failed: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.svc.SubmitReview(ctx, authedUser, newReview(rating))
		assert.Error(t, err, "rating %d must be rejected", rating)
	}
	for _, rating := range []int{1, 5} {
		_, err := fx.svc.SubmitReview(ctx, authedUser, newReview(rating))
		assert.NoError(t, err, "rating %d must be accepted", rating)
	}
}

func TestService_SubmitReview_requiresName(t *testing.T) {
	fx := setup(t)

	// profile exists after first sight but has no display name yet
	_, err := fx.svc.SubmitReview(context.Background(), authedUser, newReview(5))
	var pErr *core.PreconditionFailedError
	assert.ErrorAs(t, err, &pErr)
}

func TestService_SubmitReview_anonymous(t *testing.T) {
	fx := setup(t)

	_, err := fx.svc.SubmitReview(context.Background(), core.Identity{}, newReview(5))
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))
}

func TestService_ListReviews_anonymousFallback(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	// a review whose author never set a display name (row inserted before
	// the name precondition existed)
	_, err := fx.repo.CreateReview(ctx, review.FileReview{
		FileID:    "file-1",
		UserID:    "ghost-user",
		Rating:    3,
		CreatedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)

	reviews, err := fx.svc.ListReviews(ctx, "file-1")
	assert.NoError(t, err)
	if assert.Len(t, reviews, 1) {
		assert.Equal(t, "Anonymous", reviews[0].ReviewerName)
	}
}

func TestService_SubmitReport(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	emailsvc.ClearSentMessages()

	// anonymous reports are permitted
	rep, err := fx.svc.SubmitReport(ctx, core.Identity{}, review.NewReport{FileID: "file-1", Reason: "wrong file"})
	assert.NoError(t, err)
	assert.Empty(t, rep.UserID)

	// authenticated reports carry the reporter
	rep, err = fx.svc.SubmitReport(ctx, authedUser, review.NewReport{FileID: "file-1", Reason: "corrupt"})
	assert.NoError(t, err)
	assert.Equal(t, authedUser.UserID, rep.UserID)

	// blank reason is rejected
	_, err = fx.svc.SubmitReport(ctx, authedUser, review.NewReport{FileID: "file-1", Reason: "  "})
	assert.Error(t, err)
}

func TestService_SubmitReport_notifiesModerators(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()
	emailsvc.ClearSentMessages()

	core.Conf.ReportRecipients = []mail.Address{moderator}
	defer func() { core.Conf.ReportRecipients = nil }()

	_, err := fx.svc.SubmitReport(ctx, core.Identity{}, review.NewReport{FileID: "file-9", Reason: "incomplete"})
	assert.NoError(t, err)

	if assert.Len(t, emailsvc.SentMessages, 1) {
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, moderator, msg.To[0])
		assert.Contains(t, msg.Subject, "file-9")
		assert.Contains(t, msg.Body, "anonymous")
	}
}

func TestService_ListReports(t *testing.T) {
	fx := setup(t)
	ctx := context.Background()

	if _, err := fx.svc.SubmitReport(ctx, core.Identity{}, review.NewReport{FileID: "file-1", Reason: "wrong"}); err != nil {
		t.Fatalf("SubmitReport() failed: %v", err)
	}

	// operator read is admin-gated
	_, err := fx.svc.ListReports(ctx, core.Identity{}, "file-1")
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))

	_, err = fx.svc.ListReports(ctx, authedUser, "file-1")
	assert.Equal(t, core.ErrPermissionDenied, errors.Cause(err))

	reports, err := fx.svc.ListReports(ctx, adminUser, "file-1")
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
}
