package service

import (
	"context"
	"sync"
	"time"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
)

var errRemote = &gateway.RemoteError{Op: "test", StatusCode: 503, Message: "unavailable"}

type fakeFeedbackStore struct {
	mu        sync.Mutex
	insertErr error
	listErr   error
	records   []model.FeedbackRecord
	queries   []model.FeedbackQuery
	inserted  []model.FeedbackInput
}

func (f *fakeFeedbackStore) InsertFeedback(_ context.Context, in model.FeedbackInput, createdAt time.Time) (*model.FeedbackRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, in)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	record := in.Record("srv-1", createdAt)
	return &record, nil
}

func (f *fakeFeedbackStore) ListFeedback(_ context.Context, q model.FeedbackQuery) ([]model.FeedbackRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

type fakeEventSource struct {
	events    []model.Event
	detail    *model.EventDetail
	listErr   error
	detailErr error
}

func (f *fakeEventSource) ListEvents(context.Context) ([]model.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventSource) GetEventData(context.Context, string) (*model.EventDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

type fakeBuddyStore struct {
	rows      []model.BuddyRelationship
	listErr   error
	updateErr error
	deleteErr error
	listedFor string
	actingAs  []string
	updated   map[string]model.BuddyStatus
	deleted   []string
}

func (f *fakeBuddyStore) ListBuddies(_ context.Context, userID string) ([]model.BuddyRelationship, error) {
	f.listedFor = userID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeBuddyStore) UpdateBuddyStatus(_ context.Context, userID, id string, status model.BuddyStatus) error {
	f.actingAs = append(f.actingAs, userID)
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = make(map[string]model.BuddyStatus)
	}
	f.updated[id] = status
	return nil
}

func (f *fakeBuddyStore) DeleteBuddy(_ context.Context, userID, id string) error {
	f.actingAs = append(f.actingAs, userID)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}
