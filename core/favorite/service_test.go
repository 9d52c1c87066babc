package favorite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushare/campushare/core"
	"github.com/campushare/campushare/core/favorite"
	dummydb "github.com/campushare/campushare/storage/database/dummy"
)

var authedUser = core.Identity{UserID: "user-1", Email: "user1@test.cd"}

func setup(t *testing.T) *favorite.Service {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return favorite.NewService(dummydb.NewFavoriteRepository(db))
}

func TestService_Toggle(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	// off -> on
	state, err := svc.Toggle(ctx, authedUser, favorite.EntitySubject, "sub-1")
	assert.NoError(t, err)
	assert.True(t, state)

	isFav, err := svc.IsFavorite(ctx, authedUser, favorite.EntitySubject, "sub-1")
	assert.NoError(t, err)
	assert.True(t, isFav)

	// on -> off
	state, err = svc.Toggle(ctx, authedUser, favorite.EntitySubject, "sub-1")
	assert.NoError(t, err)
	assert.False(t, state)

	isFav, err = svc.IsFavorite(ctx, authedUser, favorite.EntitySubject, "sub-1")
	assert.NoError(t, err)
	assert.False(t, isFav)
}

func TestService_Toggle_anonymousIsNoop(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	state, err := svc.Toggle(ctx, core.Identity{}, favorite.EntityFile, "file-1")
	assert.NoError(t, err)
	assert.False(t, state)

	// nothing was written
	favs, err := svc.ListForUser(ctx, authedUser)
	assert.NoError(t, err)
	assert.Empty(t, favs)
}

func TestService_Toggle_badEntityType(t *testing.T) {
	svc := setup(t)

	_, err := svc.Toggle(context.Background(), authedUser, favorite.EntityType("course"), "x")
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestService_IsFavorite_anonymous(t *testing.T) {
	svc := setup(t)

	isFav, err := svc.IsFavorite(context.Background(), core.Identity{}, favorite.EntityFile, "file-1")
	assert.NoError(t, err)
	assert.False(t, isFav)
}

func TestService_perEntityIndependence(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	// same ID under different entity types are distinct bookmarks
	_, err := svc.Toggle(ctx, authedUser, favorite.EntitySubject, "x-1")
	assert.NoError(t, err)
	_, err = svc.Toggle(ctx, authedUser, favorite.EntityFile, "x-1")
	assert.NoError(t, err)

	favs, err := svc.ListForUser(ctx, authedUser)
	assert.NoError(t, err)
	assert.Len(t, favs, 2)

	// another user's ledger is untouched
	other := core.Identity{UserID: "user-2"}
	favs, err = svc.ListForUser(ctx, other)
	assert.NoError(t, err)
	assert.Empty(t, favs)
}
