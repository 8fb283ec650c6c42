package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/eventnav/backend/internal/model"
)

// flexID - id 컬럼이 bigint(숫자)일 수도, uuid(문자열)일 수도 있음
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id: %s", string(data))
	}
	*f = flexID(n.String())
	return nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

// flexTime - timestamptz / timestamp 문자열 모두 허용 (timezone 없으면 UTC)
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = flexTime(time.Time{})
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime(t)
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp: %s", s)
}

// feedback 테이블 행
type feedbackRow struct {
	ID         flexID           `json:"id"`
	TargetType model.TargetType `json:"target_type"`
	TargetID   string           `json:"target_id"`
	TargetName string           `json:"target_name"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment"`
	Category   string           `json:"category"`
	CreatedAt  flexTime         `json:"created_at"`
}

type feedbackInsert struct {
	TargetType model.TargetType `json:"target_type"`
	TargetID   string           `json:"target_id"`
	TargetName string           `json:"target_name"`
	Rating     int              `json:"rating"`
	Comment    string           `json:"comment"`
	Category   string           `json:"category"`
	CreatedAt  string           `json:"created_at"`
}

func (r feedbackRow) toModel() model.FeedbackRecord {
	return model.FeedbackRecord{
		ID:         string(r.ID),
		TargetType: r.TargetType,
		TargetID:   r.TargetID,
		TargetName: r.TargetName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Category:   r.Category,
		Timestamp:  time.Time(r.CreatedAt),
	}
}

// buddies 테이블 행 (profiles: addressee 프로필, requester: requester 프로필)
type buddyRow struct {
	ID          flexID              `json:"id"`
	RequesterID string              `json:"requester_id"`
	AddresseeID string              `json:"addressee_id"`
	Status      model.BuddyStatus   `json:"status"`
	CreatedAt   flexTime            `json:"created_at"`
	Addressee   *model.BuddyProfile `json:"profiles"`
	Requester   *model.BuddyProfile `json:"requester"`
}

func (r buddyRow) toModel() model.BuddyRelationship {
	return model.BuddyRelationship{
		ID:               string(r.ID),
		RequesterID:      r.RequesterID,
		AddresseeID:      r.AddresseeID,
		Status:           r.Status,
		CreatedAt:        time.Time(r.CreatedAt),
		RequesterProfile: r.Requester,
		AddresseeProfile: r.Addressee,
	}
}
