// Supabase(PostgREST) 테이블 API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - SUPABASE_URL: 프로젝트 URL (예: https://<project>.supabase.co)
//   - SUPABASE_ANON_KEY: anon key (apikey 헤더)
//
// 사용하는 테이블:
//   - feedback: 피드백 저장/조회 (created_at 내림차순)
//   - buddies: 친구 관계 조회/상태 변경/삭제
//
// 인증은 요청 세션의 access token을 Bearer로 전달 (RLS 적용)

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
)

const buddySelect = "*,profiles:addressee_id(id,email,name,avatar_url),requester:requester_id(id,email,name,avatar_url)"

// SupabaseClient 구조체 정의
type SupabaseClient struct {
	baseURL    string
	anonKey    string
	sessions   gateway.SessionProvider
	httpClient *http.Client
}

// SupabaseClient 객체 생성
func NewSupabaseClient(cfg config.SupabaseConfig, gw config.GatewayConfig, sessions gateway.SessionProvider) *SupabaseClient {
	return &SupabaseClient{
		baseURL:    cfg.URL,
		anonKey:    cfg.AnonKey,
		sessions:   sessions,
		httpClient: newHTTPClient(gw.Timeout),
	}
}

// URL과 anon key가 모두 설정되어 있는지 체크
func (c *SupabaseClient) IsConfigured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// POST /rest/v1/feedback (return=representation)
func (c *SupabaseClient) InsertFeedback(ctx context.Context, in model.FeedbackInput, createdAt time.Time) (*model.FeedbackRecord, error) {
	payload, err := json.Marshal([]feedbackInsert{{
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		TargetName: in.TargetName,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Category:   in.Category,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339Nano),
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feedback: %w", err)
	}

	var rows []feedbackRow
	if err := c.send(ctx, "supabase.InsertFeedback", http.MethodPost, "feedback", nil, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &gateway.RemoteError{Op: "supabase.InsertFeedback", Message: "insert returned no rows"}
	}
	record := rows[0].toModel()
	return &record, nil
}

// GET /rest/v1/feedback?target_type=eq.X&target_id=eq.Y&order=created_at.desc&limit=N
func (c *SupabaseClient) ListFeedback(ctx context.Context, q model.FeedbackQuery) ([]model.FeedbackRecord, error) {
	params := feedbackParams(q)

	var rows []feedbackRow
	if err := c.send(ctx, "supabase.ListFeedback", http.MethodGet, "feedback", params, nil, &rows); err != nil {
		return nil, err
	}

	records := make([]model.FeedbackRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toModel())
	}
	return records, nil
}

// GET /rest/v1/buddies?or=(requester_id.eq.U,addressee_id.eq.U)
func (c *SupabaseClient) ListBuddies(ctx context.Context, userID string) ([]model.BuddyRelationship, error) {
	params := url.Values{}
	params.Set("select", buddySelect)
	params.Set("or", fmt.Sprintf("(requester_id.eq.%s,addressee_id.eq.%s)", userID, userID))

	var rows []buddyRow
	if err := c.send(ctx, "supabase.ListBuddies", http.MethodGet, "buddies", params, nil, &rows); err != nil {
		return nil, err
	}

	buddies := make([]model.BuddyRelationship, 0, len(rows))
	for _, row := range rows {
		buddies = append(buddies, row.toModel())
	}
	return buddies, nil
}

// PATCH /rest/v1/buddies?id=eq.X&addressee_id=eq.U (받은 요청만)
func (c *SupabaseClient) UpdateBuddyStatus(ctx context.Context, userID, relationshipID string, status model.BuddyStatus) error {
	payload, err := json.Marshal(map[string]model.BuddyStatus{"status": status})
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	params := url.Values{}
	params.Set("id", "eq."+relationshipID)
	params.Set("addressee_id", "eq."+userID)
	return c.mutateBuddy(ctx, "supabase.UpdateBuddyStatus", http.MethodPatch, params, payload)
}

// DELETE /rest/v1/buddies?id=eq.X&or=(requester_id.eq.U,addressee_id.eq.U)
func (c *SupabaseClient) DeleteBuddy(ctx context.Context, userID, relationshipID string) error {
	params := url.Values{}
	params.Set("id", "eq."+relationshipID)
	params.Set("or", fmt.Sprintf("(requester_id.eq.%s,addressee_id.eq.%s)", userID, userID))
	return c.mutateBuddy(ctx, "supabase.DeleteBuddy", http.MethodDelete, params, nil)
}

// 변경된 행을 돌려받아 0행이면 ErrNotFound
func (c *SupabaseClient) mutateBuddy(ctx context.Context, op, method string, params url.Values, payload []byte) error {
	params.Set("select", "id")
	var rows []json.RawMessage
	if err := c.send(ctx, op, method, "buddies", params, payload, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s: %w", op, gateway.ErrNotFound)
	}
	return nil
}

func feedbackParams(q model.FeedbackQuery) url.Values {
	params := url.Values{}
	params.Set("select", "*")
	if q.TargetType != "" {
		params.Set("target_type", "eq."+string(q.TargetType))
	}
	if q.TargetID != "" {
		params.Set("target_id", "eq."+q.TargetID)
	}
	params.Set("order", "created_at.desc")
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// Supabase REST 호출 (설정 -> 세션 -> 요청 순서)
func (c *SupabaseClient) send(ctx context.Context, op, method, table string, params url.Values, payload []byte, out any) error {
	if !c.IsConfigured() {
		return gateway.Misconfigured("SUPABASE_URL/SUPABASE_ANON_KEY")
	}

	session, err := gateway.RequireSession(ctx, c.sessions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	endpoint := c.baseURL + "/rest/v1/" + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+session.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if out != nil && method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	return do(c.httpClient, op, req, out)
}
