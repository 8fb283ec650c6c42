package handler

import (
	"errors"
	"net/http"

	"github.com/eventnav/backend/internal/gateway"
	"github.com/eventnav/backend/internal/model"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// 서비스 에러 -> HTTP 상태 코드
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, gateway.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, gateway.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotSupported):
		return http.StatusNotImplemented
	case errors.Is(err, gateway.ErrRemoteFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(c *gin.Context, err error) {
	c.JSON(statusFor(err), model.ErrorResponse{Error: err.Error()})
}

func writeData[T any](c *gin.Context, status int, res service.Result[T]) {
	c.JSON(status, model.DataResponse{Data: res.Data, Source: string(res.Source)})
}
