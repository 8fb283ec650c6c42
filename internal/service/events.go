package service

import (
	"context"
	"log"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/fallback"
	"github.com/eventnav/backend/internal/model"
)

const (
	eventComponent        = "EventService"
	summaryDateLayout     = "Jan 2"
	defaultPOIDescription = "No description available"
)

// 날짜 문자열 형식. timezone이 없는 형식은 설정된 지역 시간으로 해석
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// EventSource - DPM functions 엔드포인트
type EventSource interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventData(ctx context.Context, eventID string) (*model.EventDetail, error)
}

type EventService struct {
	source   EventSource
	fallback *fallback.Store
	loc      *time.Location
	now      func() time.Time
}

func NewEventService(source EventSource, fb *fallback.Store, cfg config.EventsConfig) *EventService {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		log.Printf("[%s] Unknown time zone %q, using UTC: %v", eventComponent, cfg.TimeZone, err)
		loc = time.UTC
	}
	return &EventService{
		source:   source,
		fallback: fb,
		loc:      loc,
		now:      time.Now,
	}
}

// ListEvents - 목록 화면용 요약. 상태는 호출 시점 기준으로 매번 계산
func (s *EventService) ListEvents(ctx context.Context) (Result[[]model.EventSummary], error) {
	events, err := s.source.ListEvents(ctx)
	if err != nil {
		if !canFallback(err) {
			return Result[[]model.EventSummary]{}, err
		}
		recordFallback(eventComponent, "ListEvents", err)
		return fromFallback(s.fallback.Events(), err), nil
	}

	now := s.now()
	summaries := make([]model.EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, s.summarize(e, now))
	}
	return primary(summaries), nil
}

// GetEventDetail - 내비게이션 상세는 대체 데이터가 없으므로 에러를 그대로 반환
func (s *EventService) GetEventDetail(ctx context.Context, eventID string) (*model.EventDetail, error) {
	return s.source.GetEventData(ctx, eventID)
}

// ListPOIs - 실패하거나 POI가 비어 있으면 기본 POI 6개
func (s *EventService) ListPOIs(ctx context.Context, eventID string) (Result[[]model.POI], error) {
	detail, err := s.source.GetEventData(ctx, eventID)
	if err != nil {
		if !canFallback(err) {
			return Result[[]model.POI]{}, err
		}
		recordFallback(eventComponent, "ListPOIs", err)
		return fromFallback(s.fallback.POIs(), err), nil
	}
	if len(detail.POIs) == 0 {
		recordFallback(eventComponent, "ListPOIs", nil)
		return fromFallback(s.fallback.POIs(), nil), nil
	}

	pois := make([]model.POI, 0, len(detail.POIs))
	for _, p := range detail.POIs {
		pois = append(pois, toPOI(p))
	}
	return primary(pois), nil
}

func (s *EventService) summarize(e model.Event, now time.Time) model.EventSummary {
	start, hasStart := s.parseDate(e.StartDate)
	end, hasEnd := s.parseDate(e.EndDate)

	date := e.StartDate
	if hasStart {
		date = start.In(s.loc).Format(summaryDateLayout)
	}

	return model.EventSummary{
		ID:       e.ID,
		Name:     e.Name,
		Location: e.VenueName,
		Date:     date,
		Status:   eventStatus(now, start, hasStart, end, hasEnd),
		POIs:     e.POIsCount,
	}
}

func (s *EventService) parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, value, s.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// 시작 전 Upcoming, 종료 후 Past, 그 외 Active (종료 시각 포함). 파싱 불가한 날짜는 열린 경계
func eventStatus(now, start time.Time, hasStart bool, end time.Time, hasEnd bool) model.EventStatus {
	switch {
	case hasStart && now.Before(start):
		return model.EventUpcoming
	case hasEnd && now.After(end):
		return model.EventPast
	default:
		return model.EventActive
	}
}

func toPOI(p model.EventPOI) model.POI {
	poi := model.POI{
		ID:          p.ID,
		Name:        p.Name,
		Type:        model.POIVenue,
		X:           p.X,
		Y:           p.Y,
		Description: defaultPOIDescription,
		Icon:        p.Icon,
	}
	if p.Type != nil && *p.Type != "" {
		poi.Type = *p.Type
	}
	if p.Description != nil && *p.Description != "" {
		poi.Description = *p.Description
	}
	return poi
}
