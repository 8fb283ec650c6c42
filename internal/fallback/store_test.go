package fallback

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/eventnav/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsDatasets(t *testing.T) {
	s := New()

	assert.Len(t, s.Feedback(), 3)
	assert.Len(t, s.Events(), 2)
	require.Len(t, s.POIs(), 6)
	assert.Equal(t, "Registration Desk", s.POIs()[0].Name)
	assert.Equal(t, "Restrooms", s.POIs()[5].Name)
}

func TestStoresAreIsolated(t *testing.T) {
	a, b := New(), New()
	a.AppendFeedback(model.FeedbackRecord{ID: "x", TargetType: model.TargetEvent, TargetID: "event1"})

	assert.Len(t, a.Feedback(), 4)
	assert.Len(t, b.Feedback(), 3)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	got := s.Feedback()
	got[0].Rating = 1
	pois := s.POIs()
	pois[0].Name = "changed"

	assert.Equal(t, 5, s.Feedback()[0].Rating)
	assert.Equal(t, "Registration Desk", s.POIs()[0].Name)
}

func TestFeedbackForKeepsInsertionOrder(t *testing.T) {
	s := New()
	older := model.FeedbackRecord{ID: "late-insert-old-ts", TargetType: model.TargetEvent, TargetID: "event1", Timestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	s.AppendFeedback(older)
	s.AppendFeedback(model.FeedbackRecord{ID: "other", TargetType: model.TargetVenue, TargetID: "event1"})

	got := s.FeedbackFor(model.TargetEvent, "event1")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "late-insert-old-ts", got[1].ID)

	assert.Empty(t, s.FeedbackFor(model.TargetPOI, "missing"))
	assert.NotNil(t, s.FeedbackFor(model.TargetPOI, "missing"))
}

func TestConcurrentAppends(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AppendFeedback(model.FeedbackRecord{ID: fmt.Sprintf("c-%d", i), TargetType: model.TargetPOI, TargetID: "poi9"})
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Feedback(), 53)
	assert.Len(t, s.FeedbackFor(model.TargetPOI, "poi9"), 50)
}
