package model

import "time"

// TargetType - 피드백 대상 종류
type TargetType string

const (
	TargetEvent TargetType = "event"
	TargetVenue TargetType = "venue"
	TargetPOI   TargetType = "poi"
)

// 피드백 카테고리 라벨 (저장소는 값만 보관하고 검증하지 않음)
const (
	CategoryGeneral       = "general"
	CategoryNavigation    = "navigation"
	CategoryAccessibility = "accessibility"
	CategoryFacilities    = "facilities"
	CategoryStaff         = "staff"
	CategoryCleanliness   = "cleanliness"
	CategorySafety        = "safety"
)

// FeedbackInput - id/timestamp가 없는 제출 요청
type FeedbackInput struct {
	TargetType TargetType `json:"targetType" validate:"required,oneof=event venue poi"`
	TargetID   string     `json:"targetId" validate:"required"`
	TargetName string     `json:"targetName" validate:"required"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	Comment    string     `json:"comment" validate:"trimmed_min=10,max=500"`
	Category   string     `json:"category" validate:"required,oneof=general navigation accessibility facilities staff cleanliness safety"`
}

// FeedbackRecord - 저장된 피드백 (생성 후 변경 없음)
type FeedbackRecord struct {
	ID         string     `json:"id"`
	TargetType TargetType `json:"targetType"`
	TargetID   string     `json:"targetId"`
	TargetName string     `json:"targetName"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	Category   string     `json:"category"`
	Timestamp  time.Time  `json:"timestamp"`
}

// FeedbackStats - 대상별 평점 집계 결과
type FeedbackStats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalCount         int         `json:"totalCount"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// FeedbackQuery - 조회 조건 (빈 값은 필터 없음, Limit 0은 제한 없음)
type FeedbackQuery struct {
	TargetType TargetType
	TargetID   string
	Limit      int
}

func (in FeedbackInput) Record(id string, ts time.Time) FeedbackRecord {
	return FeedbackRecord{
		ID:         id,
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		TargetName: in.TargetName,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Category:   in.Category,
		Timestamp:  ts,
	}
}
