package profile_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/profile"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
)

var authedUser = core.Identity{UserID: "user-1", Email: "User1@Test.CD"}

func setup(t *testing.T) *profile.Service {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return profile.NewService(dummydb.NewProfileRepository(db))
}

func TestService_EnsureProfile(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	// first sight creates the row, email lowercased
	p, err := svc.EnsureProfile(ctx, authedUser)
	assert.NoError(t, err)
	assert.Equal(t, authedUser.UserID, p.ID)
	assert.Equal(t, "user1@test.cd", p.Email)
	assert.False(t, p.HasName())

	// second sight returns the same row
	again, err := svc.EnsureProfile(ctx, authedUser)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
	assert.Equal(t, p.CreatedAt, again.CreatedAt)

	// anonymous callers have no profile
	_, err = svc.EnsureProfile(ctx, core.Identity{})
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))
}

func TestService_SetFullName(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	p, err := svc.SetFullName(ctx, authedUser, "  Jordan Lee  ")
	assert.NoError(t, err)
	assert.Equal(t, "Jordan Lee", p.FullName)
	assert.True(t, p.HasName())

	// blank name is rejected
	_, err = svc.SetFullName(ctx, authedUser, "   ")
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)

	// anonymous cannot set a name
	_, err = svc.SetFullName(ctx, core.Identity{}, "Jordan Lee")
	assert.Equal(t, core.ErrAuthRequired, errors.Cause(err))
}

func TestService_Names(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	if _, err := svc.SetFullName(ctx, authedUser, "Jordan Lee"); err != nil {
		t.Fatalf("SetFullName() failed: %v", err)
	}
	// a profile without a name is excluded from the result
	nameless := core.Identity{UserID: "user-2", Email: "user2@test.cd"}
	if _, err := svc.EnsureProfile(ctx, nameless); err != nil {
		t.Fatalf("EnsureProfile() failed: %v", err)
	}

	names, err := svc.Names(ctx, []string{authedUser.UserID, nameless.UserID, "missing"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{authedUser.UserID: "Jordan Lee"}, names)

	names, err = svc.Names(ctx, nil)
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestService_adminMembership(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	isAdmin, err := svc.IsAdmin(ctx, authedUser.UserID)
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	assert.NoError(t, svc.GrantAdmin(ctx, authedUser.UserID))
	assert.NoError(t, svc.GrantAdmin(ctx, authedUser.UserID)) // idempotent

	isAdmin, err = svc.IsAdmin(ctx, authedUser.UserID)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	assert.NoError(t, svc.RevokeAdmin(ctx, authedUser.UserID))
	isAdmin, err = svc.IsAdmin(ctx, authedUser.UserID)
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	// the anonymous ID is never an admin
	isAdmin, err = svc.IsAdmin(ctx, "")
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}
