// DPM(이벤트 데이터 관리) functions 엔드포인트와 HTTP 통신하는 클라이언트
//
// 환경변수:
//   - DPM_FUNCTIONS_URL: functions base URL (예: https://<project>.supabase.co/functions/v1)
//
// 엔드포인트:
//   - GET /get-events          -> {"events": [...]}
//   - GET /get-event-data/{id} -> 이벤트 상세 (POI, 평면도, 내비게이션 노드)
//   - 실패 응답                 -> {"error": "..."}

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
)

// DPMClient 구조체 정의
type DPMClient struct {
	baseURL    string
	sessions   gateway.SessionProvider
	httpClient *http.Client
}

type eventsResponse struct {
	Events []model.Event `json:"events"`
}

// DPMClient 객체 생성
func NewDPMClient(cfg config.DPMConfig, gw config.GatewayConfig, sessions gateway.SessionProvider) *DPMClient {
	return &DPMClient{
		baseURL:    cfg.FunctionsURL,
		sessions:   sessions,
		httpClient: newHTTPClient(gw.Timeout),
	}
}

// DPM 설정 여부 체크
func (c *DPMClient) IsConfigured() bool {
	return c.baseURL != ""
}

// GET /get-events 이벤트 목록 조회
func (c *DPMClient) ListEvents(ctx context.Context) ([]model.Event, error) {
	var resp eventsResponse
	if err := c.get(ctx, "dpm.ListEvents", "/get-events", &resp); err != nil {
		return nil, err
	}
	if resp.Events == nil {
		return []model.Event{}, nil
	}
	return resp.Events, nil
}

// GET /get-event-data/{id} 이벤트 상세 조회
func (c *DPMClient) GetEventData(ctx context.Context, eventID string) (*model.EventDetail, error) {
	var detail model.EventDetail
	if err := c.get(ctx, "dpm.GetEventData", "/get-event-data/"+url.PathEscape(eventID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// 설정 -> 세션 -> 요청 순서로 검사
func (c *DPMClient) get(ctx context.Context, op, path string, out any) error {
	if !c.IsConfigured() {
		return gateway.Misconfigured("DPM_FUNCTIONS_URL")
	}

	session, err := gateway.RequireSession(ctx, c.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)

	return do(c.httpClient, op, req, out)
}
