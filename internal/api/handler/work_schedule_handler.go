package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salon-agenda/internal/dto"
	"salon-agenda/internal/service"
	"salon-agenda/pkg/response"
)

// WorkScheduleHandler serves the weekly work-window endpoints.
type WorkScheduleHandler struct {
	scheduleSvc service.WorkScheduleService
}

// NewWorkScheduleHandler creates a WorkScheduleHandler.
func NewWorkScheduleHandler(scheduleSvc service.WorkScheduleService) *WorkScheduleHandler {
	return &WorkScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create adds a weekly window.
// POST /api/v1/work-schedules
func (h *WorkScheduleHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateWorkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "invalid request body")
		return
	}

	ws, err := h.scheduleSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.Created(c, ws)
}

// Get returns one weekly window.
// GET /api/v1/work-schedules/:id
func (h *WorkScheduleHandler) Get(c *gin.Context) {
	ws, err := h.scheduleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, ws)
}

// Update patches a weekly window.
// PUT /api/v1/work-schedules/:id
func (h *WorkScheduleHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateWorkScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 14001, "invalid request body")
		return
	}

	ws, err := h.scheduleSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, ws)
}

// Delete removes a weekly window.
// DELETE /api/v1/work-schedules/:id
func (h *WorkScheduleHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *WorkScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 14002, "work schedule not found")
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 12002, "professional not found")
	case errors.Is(err, service.ErrInvalidTimeWindow),
		errors.Is(err, service.ErrInvalidLunchWindow),
		errors.Is(err, service.ErrHalfLunchWindow):
		response.BadRequest(c, 14003, err.Error())
	default:
		response.InternalError(c)
	}
}
