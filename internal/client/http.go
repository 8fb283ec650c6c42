package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eventnav/backend/internal/gateway"
)

const defaultTimeout = 15 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// remoteErrorBody - DPM은 {error}, PostgREST는 {message, code, details, hint}
type remoteErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// 요청 1회 전송 후 2xx면 out에 디코딩. 재시도 없음
func do(httpClient *http.Client, op string, req *http.Request, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return &gateway.RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &gateway.RemoteError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseRemoteError(op, resp.StatusCode, body)
	}

	if out == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &gateway.RemoteError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

// 에러 바디 파싱 실패 시 상태 코드만 담은 일반 RemoteError
func parseRemoteError(op string, status int, body []byte) error {
	var parsed remoteErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &gateway.RemoteError{Op: op, StatusCode: status}
	}
	msg := parsed.Error
	if msg == "" {
		msg = parsed.Message
	}
	return &gateway.RemoteError{Op: op, StatusCode: status, Message: msg}
}
