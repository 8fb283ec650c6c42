package service

import (
	"errors"
	"log"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrNotSupported - 아직 구현되지 않은 연산 (buddy 요청)
var ErrNotSupported = errors.New("operation not supported")

// Source - 결과가 어디서 왔는지
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Result - 데이터와 출처. Cause는 fallback으로 대체된 원격 에러 (primary면 nil)
type Result[T any] struct {
	Data   T
	Source Source
	Cause  error
}

func (r Result[T]) FromFallback() bool {
	return r.Source == SourceFallback
}

func primary[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourcePrimary}
}

func fromFallback[T any](data T, cause error) Result[T] {
	return Result[T]{Data: data, Source: SourceFallback, Cause: cause}
}

var fallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "eventnav_fallback_total",
	Help: "Remote calls replaced by fallback data, by component and operation.",
}, []string{"component", "operation"})

// canFallback - 설정 오류는 배포 문제이므로 대체하지 않고 그대로 반환
func canFallback(err error) bool {
	return !errors.Is(err, gateway.ErrMisconfigured)
}

func recordFallback(component, operation string, err error) {
	fallbackTotal.WithLabelValues(component, operation).Inc()
	if err != nil {
		log.Printf("[%s] %s failed, using fallback data: %v", component, operation, err)
		return
	}
	log.Printf("[%s] %s returned no data, using fallback data", component, operation)
}
