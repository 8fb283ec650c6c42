package model

import "time"

type BuddyStatus string

const (
	BuddyPending  BuddyStatus = "pending"
	BuddyAccepted BuddyStatus = "accepted"
	BuddyDeclined BuddyStatus = "declined"
)

// BuddyProfile - 상대방 프로필 요약 (비정규화)
type BuddyProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// BuddyRelationship - buddies 테이블 한 행.
// (requester, addressee) 쌍 당 한 행이라고 가정하지만 여기서 강제하지 않음
type BuddyRelationship struct {
	ID          string        `json:"id"`
	RequesterID string        `json:"requester_id"`
	AddresseeID string        `json:"addressee_id"`
	Status      BuddyStatus   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	Profile     *BuddyProfile `json:"profiles,omitempty"`

	// 조회 시 양쪽 프로필을 모두 받아온 뒤 Profile을 상대방으로 정리
	RequesterProfile *BuddyProfile `json:"-"`
	AddresseeProfile *BuddyProfile `json:"-"`
}

// BuddyList - 받은 요청(pending)과 친구(accepted)
type BuddyList struct {
	Requests []BuddyRelationship `json:"requests"`
	Friends  []BuddyRelationship `json:"friends"`
}

type BuddyLocation struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateBuddyRequest struct {
	Status BuddyStatus `json:"status" binding:"required"`
}

type AddBuddyRequest struct {
	Email string `json:"email" binding:"required"`
}
