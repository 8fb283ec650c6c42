package service

import (
	"context"
	"strings"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
)

const buddyComponent = "BuddyService"

// BuddyStore - buddies 테이블 원격 저장소
type BuddyStore interface {
	ListBuddies(ctx context.Context, userID string) ([]model.BuddyRelationship, error)
	// 받은 요청(addressee = userID)만 변경
	UpdateBuddyStatus(ctx context.Context, userID, relationshipID string, status model.BuddyStatus) error
	// 본인이 한쪽 당사자인 관계만 삭제
	DeleteBuddy(ctx context.Context, userID, relationshipID string) error
}

type BuddyService struct {
	store    BuddyStore
	sessions gateway.SessionProvider
}

func NewBuddyService(store BuddyStore, sessions gateway.SessionProvider) *BuddyService {
	return &BuddyService{store: store, sessions: sessions}
}

// ListBuddies - 조회 실패 시 빈 목록 (가짜 친구 데이터는 만들지 않음)
func (s *BuddyService) ListBuddies(ctx context.Context) (Result[model.BuddyList], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return Result[model.BuddyList]{}, err
	}

	rows, err := s.store.ListBuddies(ctx, user.ID)
	if err != nil {
		if !canFallback(err) {
			return Result[model.BuddyList]{}, err
		}
		recordFallback(buddyComponent, "ListBuddies", err)
		return fromFallback(emptyBuddyList(), err), nil
	}

	return primary(splitBuddies(user.ID, rows)), nil
}

// RequestBuddy - 이메일로 사용자를 찾는 흐름이 아직 없음
func (s *BuddyService) RequestBuddy(ctx context.Context, email string) error {
	if _, err := s.currentUser(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(email) == "" {
		return &model.ValidationError{Field: "email", Rule: "required"}
	}
	return ErrNotSupported
}

func (s *BuddyService) RespondToRequest(ctx context.Context, relationshipID string, status model.BuddyStatus) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if relationshipID == "" {
		return &model.ValidationError{Field: "id", Rule: "required"}
	}
	if status != model.BuddyAccepted && status != model.BuddyDeclined {
		return &model.ValidationError{Field: "status", Rule: "oneof"}
	}
	return s.store.UpdateBuddyStatus(ctx, user.ID, relationshipID, status)
}

func (s *BuddyService) RemoveBuddy(ctx context.Context, relationshipID string) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if relationshipID == "" {
		return &model.ValidationError{Field: "id", Rule: "required"}
	}
	return s.store.DeleteBuddy(ctx, user.ID, relationshipID)
}

// BuddyLocations - 위치 공유 미지원. 로그인 여부만 확인하고 빈 목록
func (s *BuddyService) BuddyLocations(ctx context.Context) ([]model.BuddyLocation, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}
	return []model.BuddyLocation{}, nil
}

func (s *BuddyService) currentUser(ctx context.Context) (*gateway.User, error) {
	if s.sessions == nil {
		return nil, gateway.ErrUnauthenticated
	}
	user, ok := s.sessions.CurrentUser(ctx)
	if !ok {
		return nil, gateway.ErrUnauthenticated
	}
	return user, nil
}

// requests: 내가 받은 pending 요청, friends: accepted (방향 무관)
func splitBuddies(userID string, rows []model.BuddyRelationship) model.BuddyList {
	list := emptyBuddyList()
	for _, row := range rows {
		row.Profile = counterparty(userID, row)
		switch {
		case row.Status == model.BuddyPending && row.AddresseeID == userID:
			list.Requests = append(list.Requests, row)
		case row.Status == model.BuddyAccepted:
			list.Friends = append(list.Friends, row)
		}
	}
	return list
}

func counterparty(userID string, row model.BuddyRelationship) *model.BuddyProfile {
	if row.RequesterID == userID {
		return row.AddresseeProfile
	}
	return row.RequesterProfile
}

func emptyBuddyList() model.BuddyList {
	return model.BuddyList{
		Requests: []model.BuddyRelationship{},
		Friends:  []model.BuddyRelationship{},
	}
}
