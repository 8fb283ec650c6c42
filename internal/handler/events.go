package handler

import (
	"net/http"

	"github.com/eventnav/backend/internal/model"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ListEvents godoc
// @Summary List event summaries
// @Tags events
// @Produce json
// @Success 200 {object} model.DataResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	res, err := h.svc.ListEvents(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

// GetEventDetail godoc
// @Summary Get event navigation detail
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.DataResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEventDetail(c *gin.Context) {
	detail, err := h.svc.GetEventDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DataResponse{Data: detail, Source: string(service.SourcePrimary)})
}

// ListPOIs godoc
// @Summary List POIs of an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.DataResponse
// @Router /api/v1/events/{id}/pois [get]
func (h *EventHandler) ListPOIs(c *gin.Context) {
	res, err := h.svc.ListPOIs(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}
