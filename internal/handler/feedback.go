package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/eventnav/backend/internal/model"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	svc *service.FeedbackService
}

func NewFeedbackHandler(svc *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body model.FeedbackInput true "Feedback payload"
// @Success 201 {object} model.DataResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var in model.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := in.Validate(); err != nil {
		writeServiceError(c, err)
		return
	}

	res, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusCreated, res)
}

// GetFeedbackForTarget godoc
// @Summary List feedback for a target
// @Tags feedback
// @Produce json
// @Param target_type query string true "event | venue | poi"
// @Param target_id query string true "Target ID"
// @Success 200 {object} model.DataResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/feedback [get]
func (h *FeedbackHandler) GetFeedbackForTarget(c *gin.Context) {
	targetType, targetID, ok := targetParams(c)
	if !ok {
		return
	}

	res, err := h.svc.FetchForTarget(c.Request.Context(), targetType, targetID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

// GetAllFeedback godoc
// @Summary List all feedback
// @Tags feedback
// @Produce json
// @Success 200 {object} model.DataResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/feedback/all [get]
func (h *FeedbackHandler) GetAllFeedback(c *gin.Context) {
	res, err := h.svc.FetchAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

// GetRecentFeedback godoc
// @Summary List recent feedback, newest first
// @Description limit 미지정 또는 0 이하는 서비스 기본값(10)
// @Tags feedback
// @Produce json
// @Param limit query int false "Max items"
// @Success 200 {object} model.DataResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/feedback/recent [get]
func (h *FeedbackHandler) GetRecentFeedback(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	res, err := h.svc.FetchRecent(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

// GetFeedbackStats godoc
// @Summary Rating statistics for a target
// @Tags feedback
// @Produce json
// @Param target_type query string true "event | venue | poi"
// @Param target_id query string true "Target ID"
// @Success 200 {object} model.DataResponse
// @Router /api/v1/feedback/stats [get]
func (h *FeedbackHandler) GetFeedbackStats(c *gin.Context) {
	targetType, targetID, ok := targetParams(c)
	if !ok {
		return
	}

	res, err := h.svc.Stats(c.Request.Context(), targetType, targetID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

func targetParams(c *gin.Context) (model.TargetType, string, bool) {
	targetType := model.TargetType(strings.ToLower(strings.TrimSpace(c.Query("target_type"))))
	targetID := strings.TrimSpace(c.Query("target_id"))

	switch targetType {
	case model.TargetEvent, model.TargetVenue, model.TargetPOI:
	default:
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid target_type"})
		return "", "", false
	}
	if targetID == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "target_id is required"})
		return "", "", false
	}
	return targetType, targetID, true
}
