package service

import (
	"context"
	"testing"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	me       = &model.BuddyProfile{ID: "me", Email: "me@example.com"}
	alice    = &model.BuddyProfile{ID: "alice", Email: "alice@example.com"}
	bob      = &model.BuddyProfile{ID: "bob", Email: "bob@example.com"}
	signedIn = gateway.StaticSession{Session: gateway.Session{AccessToken: "t", UserID: "me"}}
)

func TestListBuddiesSplitsAndPicksCounterparty(t *testing.T) {
	store := &fakeBuddyStore{rows: []model.BuddyRelationship{
		{ID: "1", RequesterID: "alice", AddresseeID: "me", Status: model.BuddyPending, RequesterProfile: alice, AddresseeProfile: me},
		{ID: "2", RequesterID: "me", AddresseeID: "bob", Status: model.BuddyPending, RequesterProfile: me, AddresseeProfile: bob},
		{ID: "3", RequesterID: "me", AddresseeID: "alice", Status: model.BuddyAccepted, RequesterProfile: me, AddresseeProfile: alice},
		{ID: "4", RequesterID: "bob", AddresseeID: "me", Status: model.BuddyAccepted, RequesterProfile: bob, AddresseeProfile: me},
		{ID: "5", RequesterID: "bob", AddresseeID: "me", Status: model.BuddyDeclined, RequesterProfile: bob, AddresseeProfile: me},
	}}
	svc := NewBuddyService(store, signedIn)

	res, err := svc.ListBuddies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "me", store.listedFor)
	assert.Equal(t, SourcePrimary, res.Source)

	require.Len(t, res.Data.Requests, 1)
	assert.Equal(t, "1", res.Data.Requests[0].ID)
	assert.Equal(t, alice, res.Data.Requests[0].Profile)

	require.Len(t, res.Data.Friends, 2)
	assert.Equal(t, alice, res.Data.Friends[0].Profile)
	assert.Equal(t, bob, res.Data.Friends[1].Profile)
}

func TestListBuddiesFailureIsEmpty(t *testing.T) {
	svc := NewBuddyService(&fakeBuddyStore{listErr: errRemote}, signedIn)

	res, err := svc.ListBuddies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, res.Source)
	assert.NotNil(t, res.Data.Requests)
	assert.NotNil(t, res.Data.Friends)
	assert.Empty(t, res.Data.Requests)
	assert.Empty(t, res.Data.Friends)
}

func TestListBuddiesRequiresUser(t *testing.T) {
	store := &fakeBuddyStore{}
	svc := NewBuddyService(store, gateway.StaticSession{})

	_, err := svc.ListBuddies(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnauthenticated)
	assert.Empty(t, store.listedFor)
}

func TestListBuddiesMisconfigured(t *testing.T) {
	svc := NewBuddyService(&fakeBuddyStore{listErr: gateway.Misconfigured("SUPABASE_URL")}, signedIn)
	_, err := svc.ListBuddies(context.Background())
	require.ErrorIs(t, err, gateway.ErrMisconfigured)
}

func TestRequestBuddyNotSupported(t *testing.T) {
	svc := NewBuddyService(&fakeBuddyStore{}, signedIn)
	require.ErrorIs(t, svc.RequestBuddy(context.Background(), "friend@example.com"), ErrNotSupported)
	require.ErrorIs(t, svc.RequestBuddy(context.Background(), " "), model.ErrValidation)

	anon := NewBuddyService(&fakeBuddyStore{}, nil)
	require.ErrorIs(t, anon.RequestBuddy(context.Background(), "friend@example.com"), gateway.ErrUnauthenticated)
}

func TestRespondToRequest(t *testing.T) {
	store := &fakeBuddyStore{}
	svc := NewBuddyService(store, signedIn)

	require.NoError(t, svc.RespondToRequest(context.Background(), "1", model.BuddyAccepted))
	require.NoError(t, svc.RespondToRequest(context.Background(), "2", model.BuddyDeclined))
	assert.Equal(t, map[string]model.BuddyStatus{"1": model.BuddyAccepted, "2": model.BuddyDeclined}, store.updated)

	require.ErrorIs(t, svc.RespondToRequest(context.Background(), "3", model.BuddyPending), model.ErrValidation)
	require.ErrorIs(t, svc.RespondToRequest(context.Background(), "", model.BuddyAccepted), model.ErrValidation)
	assert.Len(t, store.updated, 2)
	assert.Equal(t, []string{"me", "me"}, store.actingAs)
}

func TestMutationsRequireUser(t *testing.T) {
	store := &fakeBuddyStore{}
	for _, sessions := range []gateway.SessionProvider{nil, gateway.ContextSessions{}, gateway.StaticSession{}} {
		svc := NewBuddyService(store, sessions)
		require.ErrorIs(t, svc.RespondToRequest(context.Background(), "someone-elses-row", model.BuddyAccepted), gateway.ErrUnauthenticated)
		require.ErrorIs(t, svc.RemoveBuddy(context.Background(), "someone-elses-row"), gateway.ErrUnauthenticated)
	}
	assert.Empty(t, store.actingAs)
	assert.Empty(t, store.updated)
	assert.Empty(t, store.deleted)
}

func TestMutationsPropagateErrors(t *testing.T) {
	store := &fakeBuddyStore{updateErr: errRemote, deleteErr: gateway.ErrUnauthenticated}
	svc := NewBuddyService(store, signedIn)

	require.ErrorIs(t, svc.RespondToRequest(context.Background(), "1", model.BuddyAccepted), gateway.ErrRemoteFailure)
	require.ErrorIs(t, svc.RemoveBuddy(context.Background(), "1"), gateway.ErrUnauthenticated)
}

func TestRemoveBuddy(t *testing.T) {
	store := &fakeBuddyStore{}
	require.NoError(t, NewBuddyService(store, signedIn).RemoveBuddy(context.Background(), "9"))
	assert.Equal(t, []string{"9"}, store.deleted)
	assert.Equal(t, []string{"me"}, store.actingAs)
}

func TestBuddyLocations(t *testing.T) {
	locations, err := NewBuddyService(&fakeBuddyStore{}, signedIn).BuddyLocations(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)

	_, err = NewBuddyService(&fakeBuddyStore{}, gateway.ContextSessions{}).BuddyLocations(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnauthenticated)
}
