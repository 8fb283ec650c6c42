// 원격 호출(Supabase, DPM, Postgres) 공통 에러 분류
//
//   - ErrMisconfigured: 엔드포인트 설정 누락 (배포 오류, 항상 호출자에게 전달)
//   - ErrUnauthenticated: 세션 없음 (네트워크 I/O 전에 실패)
//   - ErrRemoteFailure: 전송 실패 또는 2xx가 아닌 응답 (*RemoteError)
//   - ErrNotFound: 변경 대상 행 없음 (본인 소유가 아닌 행 포함)

package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrMisconfigured   = errors.New("gateway misconfigured")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrRemoteFailure   = errors.New("remote failure")
	ErrNotFound        = errors.New("not found")
)

// RemoteError - 원격 호출 실패. StatusCode 0은 전송 단계 실패
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: remote returned status %d: %s", e.Op, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: remote returned status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteFailure
}

func Misconfigured(what string) error {
	return fmt.Errorf("%w: %s is not configured", ErrMisconfigured, what)
}
