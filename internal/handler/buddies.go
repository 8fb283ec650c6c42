package handler

import (
	"net/http"

	"github.com/eventnav/backend/internal/model"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type BuddyHandler struct {
	svc *service.BuddyService
}

func NewBuddyHandler(svc *service.BuddyService) *BuddyHandler {
	return &BuddyHandler{svc: svc}
}

// ListBuddies godoc
// @Summary List buddy requests and friends
// @Tags buddies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DataResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/buddies [get]
func (h *BuddyHandler) ListBuddies(c *gin.Context) {
	res, err := h.svc.ListBuddies(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeData(c, http.StatusOK, res)
}

// RequestBuddy godoc
// @Summary Send a buddy request by email
// @Tags buddies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddBuddyRequest true "Buddy email"
// @Success 201 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 501 {object} model.ErrorResponse
// @Router /api/v1/buddies [post]
func (h *BuddyHandler) RequestBuddy(c *gin.Context) {
	var req model.AddBuddyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.svc.RequestBuddy(c.Request.Context(), req.Email); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.StatusResponse{Status: "ok"})
}

// RespondToRequest godoc
// @Summary Accept or decline a buddy request
// @Tags buddies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Relationship ID"
// @Param request body model.UpdateBuddyRequest true "accepted | declined"
// @Success 200 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/buddies/{id} [patch]
func (h *BuddyHandler) RespondToRequest(c *gin.Context) {
	var req model.UpdateBuddyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body"})
		return
	}
	if err := h.svc.RespondToRequest(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// RemoveBuddy godoc
// @Summary Remove a buddy relationship
// @Tags buddies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Relationship ID"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/buddies/{id} [delete]
func (h *BuddyHandler) RemoveBuddy(c *gin.Context) {
	if err := h.svc.RemoveBuddy(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "ok"})
}

// BuddyLocations godoc
// @Summary Buddy locations (always empty, sharing is not available)
// @Tags buddies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DataResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/buddies/locations [get]
func (h *BuddyHandler) BuddyLocations(c *gin.Context) {
	locations, err := h.svc.BuddyLocations(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DataResponse{Data: locations, Source: string(service.SourcePrimary)})
}
