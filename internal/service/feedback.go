package service

import (
	"context"
	"log"
	"slices"
	"time"

	"github.com/eventnav/backend/internal/fallback"
	"github.com/eventnav/backend/internal/model"
	"github.com/google/uuid"
)

const (
	feedbackComponent  = "FeedbackService"
	defaultRecentLimit = 10
)

// FeedbackStore - 원격 피드백 저장소 (Supabase REST 또는 Postgres 직접 연결)
type FeedbackStore interface {
	InsertFeedback(ctx context.Context, in model.FeedbackInput, createdAt time.Time) (*model.FeedbackRecord, error)
	ListFeedback(ctx context.Context, q model.FeedbackQuery) ([]model.FeedbackRecord, error)
}

type FeedbackService struct {
	store    FeedbackStore
	fallback *fallback.Store
	now      func() time.Time
	newID    func() string
}

func NewFeedbackService(store FeedbackStore, fb *fallback.Store) *FeedbackService {
	return &FeedbackService{
		store:    store,
		fallback: fb,
		now:      time.Now,
		newID:    newLocalID,
	}
}

// Submit - 원격 저장 실패 시 로컬에 저장하고 성공으로 처리. 입력 검증은 호출자 책임
func (s *FeedbackService) Submit(ctx context.Context, in model.FeedbackInput) (Result[model.FeedbackRecord], error) {
	createdAt := s.now().UTC()

	record, err := s.store.InsertFeedback(ctx, in, createdAt)
	if err == nil {
		return primary(*record), nil
	}
	if !canFallback(err) {
		return Result[model.FeedbackRecord]{}, err
	}

	local := in.Record(s.newID(), createdAt)
	s.fallback.AppendFeedback(local)
	recordFallback(feedbackComponent, "Submit", err)
	return fromFallback(local, err), nil
}

// FetchForTarget - 대상별 피드백, 최신순
func (s *FeedbackService) FetchForTarget(ctx context.Context, targetType model.TargetType, targetID string) (Result[[]model.FeedbackRecord], error) {
	records, err := s.store.ListFeedback(ctx, model.FeedbackQuery{TargetType: targetType, TargetID: targetID})
	if err == nil {
		return primary(records), nil
	}
	if !canFallback(err) {
		return Result[[]model.FeedbackRecord]{}, err
	}

	recordFallback(feedbackComponent, "FetchForTarget", err)
	return fromFallback(s.fallback.FeedbackFor(targetType, targetID), err), nil
}

func (s *FeedbackService) FetchAll(ctx context.Context) (Result[[]model.FeedbackRecord], error) {
	records, err := s.store.ListFeedback(ctx, model.FeedbackQuery{})
	if err == nil {
		return primary(records), nil
	}
	if !canFallback(err) {
		return Result[[]model.FeedbackRecord]{}, err
	}

	recordFallback(feedbackComponent, "FetchAll", err)
	return fromFallback(s.fallback.Feedback(), err), nil
}

// FetchRecent - limit <= 0 이면 10. 최신순 정렬(동률은 기존 순서) 후 limit개
func (s *FeedbackService) FetchRecent(ctx context.Context, limit int) (Result[[]model.FeedbackRecord], error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	records, err := s.store.ListFeedback(ctx, model.FeedbackQuery{Limit: limit})
	if err == nil {
		return primary(newestFirst(records, limit)), nil
	}
	if !canFallback(err) {
		return Result[[]model.FeedbackRecord]{}, err
	}

	recordFallback(feedbackComponent, "FetchRecent", err)
	return fromFallback(newestFirst(s.fallback.Feedback(), limit), err), nil
}

func newestFirst(records []model.FeedbackRecord, limit int) []model.FeedbackRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b model.FeedbackRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Stats - FetchForTarget 결과(원격 또는 fallback)로 집계
func (s *FeedbackService) Stats(ctx context.Context, targetType model.TargetType, targetID string) (Result[model.FeedbackStats], error) {
	res, err := s.FetchForTarget(ctx, targetType, targetID)
	if err != nil {
		return Result[model.FeedbackStats]{}, err
	}
	return Result[model.FeedbackStats]{
		Data:   ComputeStats(res.Data),
		Source: res.Source,
		Cause:  res.Cause,
	}, nil
}

// 로컬 저장분 id (시간순 정렬 가능한 UUIDv7)
func newLocalID() string {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("[%s] Failed to generate v7 id, using v4: %v", feedbackComponent, err)
		return uuid.NewString()
	}
	return id.String()
}
