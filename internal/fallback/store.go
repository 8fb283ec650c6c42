// 원격 호출 실패 시 대신 반환하는 메모리 데이터셋
//
// 프로세스당 한 번 생성해 서비스에 주입한다 (테스트는 각자 새로 생성).
//   - feedback: 시드 3건 + 로컬 제출분 (append만 발생, mutex로 직렬화)
//   - events, pois: 고정 시드, 변경 없음
// 원격 데이터와 합치지 않으며 재시작 시 사라진다.

package fallback

import (
	"sync"
	"time"

	"github.com/eventnav/backend/internal/model"
)

type Store struct {
	mu       sync.RWMutex
	feedback []model.FeedbackRecord
	events   []model.EventSummary
	pois     []model.POI
}

func New() *Store {
	return &Store{
		feedback: seedFeedback(),
		events:   seedEvents(),
		pois:     seedPOIs(),
	}
}

// AppendFeedback - 유일한 변경 연산
func (s *Store) AppendFeedback(record model.FeedbackRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, record)
}

// Feedback - 삽입 순서 그대로 복사본 반환
func (s *Store) Feedback() []model.FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FeedbackRecord, len(s.feedback))
	copy(out, s.feedback)
	return out
}

// FeedbackFor - targetType/targetID 완전 일치, 삽입 순서 유지
func (s *Store) FeedbackFor(targetType model.TargetType, targetID string) []model.FeedbackRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FeedbackRecord, 0)
	for _, f := range s.feedback {
		if f.TargetType == targetType && f.TargetID == targetID {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) Events() []model.EventSummary {
	out := make([]model.EventSummary, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) POIs() []model.POI {
	out := make([]model.POI, len(s.pois))
	copy(out, s.pois)
	return out
}

func seedFeedback() []model.FeedbackRecord {
	return []model.FeedbackRecord{
		{
			ID:         "1",
			TargetType: model.TargetEvent,
			TargetID:   "event1",
			TargetName: "Tech Conference 2024",
			Rating:     5,
			Comment:    "Amazing event! Great speakers and excellent organization.",
			Category:   model.CategoryGeneral,
			Timestamp:  time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			TargetType: model.TargetVenue,
			TargetID:   "venue1",
			TargetName: "Convention Center",
			Rating:     4,
			Comment:    "Good facilities but could use better signage for navigation.",
			Category:   model.CategoryNavigation,
			Timestamp:  time.Date(2024, time.January, 15, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			TargetType: model.TargetPOI,
			TargetID:   "poi1",
			TargetName: "Main Auditorium",
			Rating:     3,
			Comment:    "Sound quality could be improved. Hard to hear from the back.",
			Category:   model.CategoryFacilities,
			Timestamp:  time.Date(2024, time.January, 15, 16, 45, 0, 0, time.UTC),
		},
	}
}

func seedEvents() []model.EventSummary {
	return []model.EventSummary{
		{ID: "1", Name: "Tech Conference 2024", Location: "Convention Center", Date: "Jan 15", Status: model.EventActive, POIs: 12},
		{ID: "2", Name: "Music Festival", Location: "City Park", Date: "Feb 10", Status: model.EventActive, POIs: 8},
	}
}

func seedPOIs() []model.POI {
	return []model.POI{
		{ID: "1", Name: "Registration Desk", Type: model.POIService, X: 100, Y: 150, Description: "Check-in and badge pickup"},
		{ID: "2", Name: "Coffee Station", Type: model.POIFood, X: 200, Y: 100, Description: "Free coffee and snacks"},
		{ID: "3", Name: "Main Stage", Type: model.POIVenue, X: 300, Y: 200, Description: "Main presentation area"},
		{ID: "4", Name: "Exhibition Hall", Type: model.POIVenue, X: 400, Y: 180, Description: "Vendor booths and demos"},
		{ID: "5", Name: "Networking Lounge", Type: model.POISocial, X: 150, Y: 250, Description: "Casual meeting space"},
		{ID: "6", Name: "Restrooms", Type: model.POIService, X: 50, Y: 200, Description: "Public facilities"},
	}
}
